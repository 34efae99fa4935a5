package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Scrape parameters
	BaseURL string `long:"base-url" env:"BASE_URL" description:"Ad library API endpoint URL (required unless a source profile is used)"`
	Query   string `long:"query" env:"QUERY" description:"Search query for ads (advertiser name, domain, keyword)"`
	Region  string `long:"region" env:"REGION" default:"GB" description:"Region / country code to filter ads (e.g. GB, US)"`
	Pages   int    `long:"pages" env:"PAGES" default:"1" description:"Number of pages to scrape"`

	// Export parameters
	Format    string `long:"format" env:"FORMAT" default:"json" choice:"json" choice:"csv" choice:"xml" description:"Output format for exported ads"`
	Output    string `long:"output" env:"OUTPUT" description:"Output file path (generated under output-dir when omitted)"`
	OutputDir string `long:"output-dir" env:"OUTPUT_DIR" default:"data" description:"Directory for generated output files"`

	// Source profiles
	SourcesDir string `long:"sources-dir" env:"SOURCES_DIR" default:"./sources" description:"Directory containing source profile files"`
	Source     string `long:"source" env:"SOURCE" description:"Name of the source profile to use"`

	// HTTP behavior
	SleepMS    int    `long:"sleep-ms" env:"SLEEP_MS" default:"500" description:"Pause between page requests in milliseconds"`
	TimeoutSec int    `long:"timeout" env:"TIMEOUT" default:"10" description:"Per-request timeout in seconds"`
	UserAgent  string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests (browser-style default)"`

	// Archive and serve mode
	DBPath string `long:"db-path" env:"DB_PATH" default:"adscomb.db" description:"SQLite archive path (empty disables archiving)"`
	Serve  bool   `long:"serve" env:"SERVE" description:"Serve the archive over HTTP instead of scraping"`
	Port   string `long:"port" env:"PORT" default:"8080" description:"HTTP server port for serve mode"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		BaseURL:    raw.BaseURL,
		Query:      raw.Query,
		Region:     raw.Region,
		Pages:      raw.Pages,
		Format:     raw.Format,
		Output:     raw.Output,
		OutputDir:  raw.OutputDir,
		SourcesDir: raw.SourcesDir,
		Source:     raw.Source,
		SleepMS:    raw.SleepMS,
		TimeoutSec: raw.TimeoutSec,
		UserAgent:  raw.UserAgent,
		DBPath:     raw.DBPath,
		Serve:      raw.Serve,
		Port:       raw.Port,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	return cfg, nil
}
