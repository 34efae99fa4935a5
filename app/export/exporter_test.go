package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/adscomb/adscomb/app/ads"
)

func sampleAds() []ads.Ad {
	start := int64(1697373296000)

	return []ads.Ad{
		{
			AdID:           "1",
			AdTitle:        "Sneaker Sale — 50% off",
			AdType:         "video",
			AdStartDate:    &start,
			AdvertiserID:   "987",
			AdvertiserName: "Shoes Ltd",
			AdImpressions:  "10K-50K",
			AdTotalRegions: 1,
			TargetingByLocation: []ads.TargetingLocation{
				{Region: "GB", Impressions: "5K"},
			},
			TargetingByAge: []ads.TargetingAge{
				{Region: "GB", Age18To24: true},
			},
			TargetingByGender: []ads.TargetingGender{
				{Region: "GB", Female: true},
			},
		},
		{
			AdID:                "2",
			AdTitle:             "Plain ad",
			TargetingByLocation: []ads.TargetingLocation{},
			TargetingByAge:      []ads.TargetingAge{},
			TargetingByGender:   []ads.TargetingGender{},
		},
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ads.json")
	records := sampleAds()

	if err := Export(records, "json", dest); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}

	var parsed []ads.Ad
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Exported JSON does not parse: %v", err)
	}

	if !reflect.DeepEqual(records, parsed) {
		t.Errorf("Round-trip mismatch:\nwant: %+v\ngot:  %+v", records, parsed)
	}

	// Non-ASCII characters must pass through unescaped.
	if !strings.Contains(string(data), "—") {
		t.Error("Expected non-ASCII characters to pass through unescaped")
	}
}

func TestExportCSV(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ads.csv")

	if err := Export(sampleAds(), "csv", dest); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	f, err := os.Open(dest)
	if err != nil {
		t.Fatalf("Failed to open exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Exported CSV does not parse: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got: %d", len(rows))
	}

	header := rows[0]
	if !sort.StringsAreSorted(header) {
		t.Errorf("Expected lexicographically sorted header, got: %v", header)
	}
	if len(header) != len(ads.FieldNames) {
		t.Errorf("Expected %d columns, got: %d", len(ads.FieldNames), len(header))
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	if got := rows[1][cols["adId"]]; got != "1" {
		t.Errorf("Expected adId '1', got: %q", got)
	}
	if got := rows[1][cols["adStartDate"]]; got != "1697373296000" {
		t.Errorf("Expected epoch-ms start date, got: %q", got)
	}
	// Missing dates render as empty cells.
	if got := rows[2][cols["adStartDate"]]; got != "" {
		t.Errorf("Expected empty cell for nil date, got: %q", got)
	}

	// Nested targeting cells hold embedded JSON text.
	var locations []ads.TargetingLocation
	if err := json.Unmarshal([]byte(rows[1][cols["targetingByLocation"]]), &locations); err != nil {
		t.Fatalf("Targeting cell is not valid JSON: %v", err)
	}
	if len(locations) != 1 || locations[0].Region != "GB" {
		t.Errorf("Unexpected targeting cell content: %+v", locations)
	}
}

func TestExportCSVEmpty(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "empty.csv")

	if err := Export([]ads.Ad{}, "csv", dest); err != nil {
		t.Fatalf("Expected no error for zero records, got: %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatalf("Expected the file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected an empty file, got %d bytes", info.Size())
	}
}

func TestExportXML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ads.xml")

	if err := Export(sampleAds(), "xml", dest); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "<?xml") {
		t.Error("Expected an XML declaration")
	}
	if !strings.Contains(content, "<ads>") || !strings.Contains(content, "</ads>") {
		t.Error("Expected an <ads> root element")
	}
	if strings.Count(content, "<ad>") != 2 {
		t.Errorf("Expected 2 <ad> elements, got: %d", strings.Count(content, "<ad>"))
	}
	if !strings.Contains(content, "<adId>1</adId>") {
		t.Error("Expected scalar fields as child elements")
	}
	if !strings.Contains(content, "<adStartDate>1697373296000</adStartDate>") {
		t.Error("Expected epoch-ms date text")
	}
	if !strings.Contains(content, "<targetingByLocation>") {
		t.Error("Expected targeting group elements")
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ads.yaml")

	if err := Export(sampleAds(), "yaml", dest); err == nil {
		t.Fatal("Expected an error for an unsupported format")
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("Expected no file to be created for an unsupported format")
	}
}

func TestExportCreatesParentDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "deeper", "ads.json")

	if err := Export(sampleAds(), "json", dest); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := os.Stat(dest); err != nil {
		t.Errorf("Expected the file to exist: %v", err)
	}
}

func TestExportOverwrites(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "ads.json")

	if err := Export(sampleAds(), "json", dest); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := Export([]ads.Ad{}, "json", dest); err != nil {
		t.Fatalf("Expected no error on overwrite, got: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read exported file: %v", err)
	}

	var parsed []ads.Ad
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Exported JSON does not parse: %v", err)
	}
	if len(parsed) != 0 {
		t.Errorf("Expected prior content to be replaced, got %d records", len(parsed))
	}
}
