package ads

// RawAd is a single un-normalized ad record as received from the source API.
// Keys and nesting vary per deployment; it never leaves the normalizer.
type RawAd map[string]any

// Ad is the canonical record every raw ad is normalized into. All fields are
// always present; only the two date fields may be null.
type Ad struct {
	AdID                string              `json:"adId"`
	AdTitle             string              `json:"adTitle"`
	AdType              string              `json:"adType"`
	AdVideoURL          string              `json:"adVideoUrl"`
	AdVideoCover        string              `json:"adVideoCover"`
	AdStartDate         *int64              `json:"adStartDate"`
	AdEndDate           *int64              `json:"adEndDate"`
	AdvertiserID        string              `json:"advertiserId"`
	AdvertiserName      string              `json:"advertiserName"`
	AdImpressions       string              `json:"adImpressions"`
	AdvertiserPaidForBy string              `json:"advertiserPaidForBy"`
	AdTotalRegions      int                 `json:"adTotalRegions"`
	AdEstimatedAudience string              `json:"adEstimatedAudience"`
	TargetingByLocation []TargetingLocation `json:"targetingByLocation"`
	TargetingByAge      []TargetingAge      `json:"targetingByAge"`
	TargetingByGender   []TargetingGender   `json:"targetingByGender"`
}

// FieldNames lists the canonical top-level field names in schema order.
var FieldNames = []string{
	"adId", "adTitle", "adType", "adVideoUrl", "adVideoCover",
	"adStartDate", "adEndDate",
	"advertiserId", "advertiserName", "adImpressions",
	"advertiserPaidForBy", "adTotalRegions", "adEstimatedAudience",
	"targetingByLocation", "targetingByAge", "targetingByGender",
}

// Targeting groups audience segmentation by location, age band, and gender.
type Targeting struct {
	Locations []TargetingLocation
	Age       []TargetingAge
	Gender    []TargetingGender
}

type TargetingLocation struct {
	Region      string `json:"region"`
	Impressions string `json:"impressions"`
}

type TargetingAge struct {
	Region    string `json:"region"`
	Age13To17 bool   `json:"13-17"`
	Age18To24 bool   `json:"18-24"`
	Age25To34 bool   `json:"25-34"`
	Age35To44 bool   `json:"35-44"`
	Age45To54 bool   `json:"45-54"`
	Age55Plus bool   `json:"55+"`
}

type TargetingGender struct {
	Region  string `json:"region"`
	Female  bool   `json:"female"`
	Male    bool   `json:"male"`
	Unknown bool   `json:"unknown"`
}
