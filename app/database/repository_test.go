package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/adscomb/adscomb/app/ads"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestRunRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db)

	started := time.Date(2023, 10, 15, 12, 0, 0, 0, time.UTC)
	id, err := repo.CreateRun(Run{
		Query:          "shoes",
		Region:         "GB",
		PagesRequested: 3,
		PagesFetched:   2,
		AdCount:        5,
		StartedAt:      started,
		FinishedAt:     started.Add(10 * time.Second),
	})
	if err != nil {
		t.Fatalf("Failed to create run: %v", err)
	}

	run, err := repo.GetRun(id)
	if err != nil {
		t.Fatalf("Failed to get run: %v", err)
	}
	if run == nil {
		t.Fatal("Expected the run to exist")
	}
	if run.Query != "shoes" || run.Region != "GB" {
		t.Errorf("Unexpected run: %+v", run)
	}
	if run.PagesFetched != 2 || run.AdCount != 5 {
		t.Errorf("Unexpected counters: %+v", run)
	}

	missing, err := repo.GetRun(id + 100)
	if err != nil {
		t.Fatalf("Expected no error for a missing run, got: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for a missing run")
	}

	count, err := repo.GetRunCount()
	if err != nil {
		t.Fatalf("Failed to count runs: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 run, got: %d", count)
	}

	runs, err := repo.GetRuns(10)
	if err != nil {
		t.Fatalf("Failed to list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run listed, got: %d", len(runs))
	}
}

func TestAdRepository(t *testing.T) {
	db := openTestDB(t)
	runRepo := NewRunRepository(db)
	adRepo := NewAdRepository(db)

	now := time.Now().UTC()
	runID, err := runRepo.CreateRun(Run{
		Query: "shoes", Region: "GB", PagesRequested: 1, PagesFetched: 1,
		AdCount: 2, StartedAt: now, FinishedAt: now,
	})
	if err != nil {
		t.Fatalf("Failed to create run: %v", err)
	}

	start := int64(1697373296000)
	records := []ads.Ad{
		{
			AdID:           "1",
			AdTitle:        "First",
			AdStartDate:    &start,
			AdTotalRegions: 1,
			TargetingByLocation: []ads.TargetingLocation{
				{Region: "GB", Impressions: "5K"},
			},
			TargetingByAge:    []ads.TargetingAge{},
			TargetingByGender: []ads.TargetingGender{},
		},
		{
			AdID:                "2",
			AdTitle:             "Second",
			TargetingByLocation: []ads.TargetingLocation{},
			TargetingByAge:      []ads.TargetingAge{},
			TargetingByGender:   []ads.TargetingGender{},
		},
	}

	if err := adRepo.InsertAds(runID, records); err != nil {
		t.Fatalf("Failed to insert ads: %v", err)
	}

	stored, err := adRepo.GetAdsByRun(runID)
	if err != nil {
		t.Fatalf("Failed to get ads: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("Expected 2 ads, got: %d", len(stored))
	}

	if stored[0].AdID != "1" || stored[1].AdID != "2" {
		t.Errorf("Expected insertion order, got: %+v", stored)
	}
	if stored[0].AdStartDate == nil || *stored[0].AdStartDate != start {
		t.Errorf("Unexpected start date: %v", stored[0].AdStartDate)
	}
	if stored[1].AdStartDate != nil {
		t.Error("Expected nil start date for the second ad")
	}
	if len(stored[0].TargetingByLocation) != 1 || stored[0].TargetingByLocation[0].Region != "GB" {
		t.Errorf("Unexpected targeting: %+v", stored[0].TargetingByLocation)
	}
	if stored[1].TargetingByLocation == nil {
		t.Error("Expected empty non-nil targeting slices")
	}

	count, err := adRepo.GetAdCount()
	if err != nil {
		t.Fatalf("Failed to count ads: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 ads counted, got: %d", count)
	}
}
