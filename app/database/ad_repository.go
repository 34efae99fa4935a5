package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/adscomb/adscomb/app/ads"
)

// AdRepositoryImpl handles database operations for archived ads
type AdRepositoryImpl struct {
	db *DB
}

var _ AdRepository = (*AdRepositoryImpl)(nil)

// NewAdRepository creates a new ad repository
func NewAdRepository(db *DB) *AdRepositoryImpl {
	return &AdRepositoryImpl{db: db}
}

// InsertAds stores the canonical records for one run. Targeting groups are
// stored as JSON text columns.
func (r *AdRepositoryImpl) InsertAds(runID int64, records []ads.Ad) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO ads (
			run_id, ad_id, ad_title, ad_type, ad_video_url, ad_video_cover,
			ad_start_date, ad_end_date, advertiser_id, advertiser_name,
			ad_impressions, advertiser_paid_for_by, ad_total_regions,
			ad_estimated_audience, targeting_by_location, targeting_by_age,
			targeting_by_gender
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ad := range records {
		locations, err := json.Marshal(ad.TargetingByLocation)
		if err != nil {
			return fmt.Errorf("failed to serialize locations: %w", err)
		}
		age, err := json.Marshal(ad.TargetingByAge)
		if err != nil {
			return fmt.Errorf("failed to serialize age targeting: %w", err)
		}
		gender, err := json.Marshal(ad.TargetingByGender)
		if err != nil {
			return fmt.Errorf("failed to serialize gender targeting: %w", err)
		}

		if _, err := stmt.Exec(
			runID, ad.AdID, ad.AdTitle, ad.AdType, ad.AdVideoURL, ad.AdVideoCover,
			nullableInt64(ad.AdStartDate), nullableInt64(ad.AdEndDate),
			ad.AdvertiserID, ad.AdvertiserName, ad.AdImpressions,
			ad.AdvertiserPaidForBy, ad.AdTotalRegions, ad.AdEstimatedAudience,
			string(locations), string(age), string(gender),
		); err != nil {
			return fmt.Errorf("failed to insert ad: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// GetAdsByRun returns the canonical records archived for one run, in
// insertion order
func (r *AdRepositoryImpl) GetAdsByRun(runID int64) ([]ads.Ad, error) {
	rows, err := r.db.Query(`
		SELECT ad_id, ad_title, ad_type, ad_video_url, ad_video_cover,
			ad_start_date, ad_end_date, advertiser_id, advertiser_name,
			ad_impressions, advertiser_paid_for_by, ad_total_regions,
			ad_estimated_audience, targeting_by_location, targeting_by_age,
			targeting_by_gender
		FROM ads WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ads: %w", err)
	}
	defer rows.Close()

	records := make([]ads.Ad, 0)
	for rows.Next() {
		var ad ads.Ad
		var startDate, endDate sql.NullInt64
		var locations, age, gender string

		if err := rows.Scan(&ad.AdID, &ad.AdTitle, &ad.AdType, &ad.AdVideoURL,
			&ad.AdVideoCover, &startDate, &endDate, &ad.AdvertiserID,
			&ad.AdvertiserName, &ad.AdImpressions, &ad.AdvertiserPaidForBy,
			&ad.AdTotalRegions, &ad.AdEstimatedAudience,
			&locations, &age, &gender); err != nil {
			return nil, fmt.Errorf("failed to scan ad: %w", err)
		}

		if startDate.Valid {
			ad.AdStartDate = &startDate.Int64
		}
		if endDate.Valid {
			ad.AdEndDate = &endDate.Int64
		}

		if err := json.Unmarshal([]byte(locations), &ad.TargetingByLocation); err != nil {
			return nil, fmt.Errorf("failed to parse locations: %w", err)
		}
		if err := json.Unmarshal([]byte(age), &ad.TargetingByAge); err != nil {
			return nil, fmt.Errorf("failed to parse age targeting: %w", err)
		}
		if err := json.Unmarshal([]byte(gender), &ad.TargetingByGender); err != nil {
			return nil, fmt.Errorf("failed to parse gender targeting: %w", err)
		}

		records = append(records, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ads: %w", err)
	}

	return records, nil
}

// GetAdCount returns the total number of archived ads
func (r *AdRepositoryImpl) GetAdCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM ads`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ads: %w", err)
	}
	return count, nil
}

func nullableInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
