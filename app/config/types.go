package config

// SourceConfig describes one ad-library deployment
type SourceConfig struct {
	Name     string         // Derived from filename (without extension)
	URL      string         `yaml:"url"`
	Settings SourceSettings `yaml:"settings"`
}

// SourceSettings contains per-source scrape settings
type SourceSettings struct {
	Region    string `yaml:"region"`
	Pages     int    `yaml:"pages"`
	SleepMS   int    `yaml:"sleep_ms"`
	Timeout   int    `yaml:"timeout"` // seconds
	UserAgent string `yaml:"user_agent"`
}
