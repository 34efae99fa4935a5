package ads

import (
	"fmt"
)

// Normalizer maps raw ad records onto the canonical Ad schema. It is
// best-effort: unexpected shapes degrade to defaults instead of failing.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize converts one raw ad record into a canonical Ad. The canonical
// alias always comes first in each lookup, so normalizing an
// already-canonical record yields the same record.
func (n *Normalizer) Normalize(raw RawAd) (Ad, error) {
	if raw == nil {
		return Ad{}, fmt.Errorf("nil raw ad record")
	}

	targeting := NormalizeTargeting(n.targetingSource(raw))

	ad := Ad{
		AdID:                EnsureString(n.pick(raw, "adId", "ad_id", "id")),
		AdTitle:             EnsureString(n.pick(raw, "adTitle", "title", "ad_title")),
		AdType:              EnsureString(n.pick(raw, "adType", "type", "ad_type")),
		AdVideoURL:          EnsureString(n.pick(raw, "adVideoUrl", "video_url", "creative_url")),
		AdVideoCover:        EnsureString(n.pick(raw, "adVideoCover", "thumbnail_url", "cover_url")),
		AdStartDate:         ParseTimestampMS(n.pick(raw, "adStartDate", "start_time", "startDate")),
		AdEndDate:           ParseTimestampMS(n.pick(raw, "adEndDate", "end_time", "endDate")),
		AdvertiserID:        EnsureString(n.pick(raw, "advertiserId", "advertiser_id", "account_id")),
		AdvertiserName:      EnsureString(n.pick(raw, "advertiserName", "advertiser_name", "account_name")),
		AdImpressions:       EnsureString(n.pick(raw, "adImpressions", "impressions", "impression_range")),
		AdvertiserPaidForBy: EnsureString(n.pick(raw, "advertiserPaidForBy", "paid_for_by")),
		AdEstimatedAudience: EnsureString(n.pick(raw, "adEstimatedAudience", "estimated_audience")),
		TargetingByLocation: targeting.Locations,
		TargetingByAge:      targeting.Age,
		TargetingByGender:   targeting.Gender,
	}

	if v := n.pick(raw, "adTotalRegions", "total_regions"); v != nil {
		ad.AdTotalRegions = EnsureInt(v, 0)
	} else {
		ad.AdTotalRegions = len(targeting.Locations)
	}

	return ad, nil
}

// targetingSource finds the raw targeting sub-map. Already-canonical records
// carry the groups at the top level instead of under "targeting".
func (n *Normalizer) targetingSource(raw RawAd) map[string]any {
	if sub, ok := raw["targeting"].(map[string]any); ok {
		return sub
	}
	return map[string]any{
		"locations": raw["targetingByLocation"],
		"age":       raw["targetingByAge"],
		"gender":    raw["targetingByGender"],
	}
}

// pick returns the first non-empty value among the alias keys, mirroring the
// source API's habit of renaming fields between deployments.
func (n *Normalizer) pick(raw RawAd, aliases ...string) any {
	for _, key := range aliases {
		if v, ok := raw[key]; ok && truthy(v) {
			return v
		}
	}
	return nil
}
