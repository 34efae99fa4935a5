package cfg

type Cfg struct {
	// Scrape parameters
	BaseURL string
	Query   string
	Region  string
	Pages   int

	// Export parameters
	Format    string
	Output    string
	OutputDir string

	// Source profiles
	SourcesDir string
	Source     string

	// HTTP behavior
	SleepMS    int
	TimeoutSec int
	UserAgent  string

	// Archive and serve mode
	DBPath string
	Serve  bool
	Port   string

	// Application metadata
	Debug   bool
	Version string
}
