package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of source profiles
type Loader struct {
	sourcesDir string
}

// NewLoader creates a new source profile loader
func NewLoader(sourcesDir string) *Loader {
	return &Loader{sourcesDir: sourcesDir}
}

// LoadAll loads all YAML source profiles from the sources directory,
// keyed by profile name
func (l *Loader) LoadAll() (map[string]*SourceConfig, error) {
	configs := make(map[string]*SourceConfig)

	// Check if sources directory exists
	if _, err := os.Stat(l.sourcesDir); os.IsNotExist(err) {
		return configs, nil // Return empty map if directory doesn't exist
	}

	files, err := filepath.Glob(filepath.Join(l.sourcesDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}

	// Also check for .yml extension
	ymlFiles, err := filepath.Glob(filepath.Join(l.sourcesDir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		config, err := l.loadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}

		if err := l.validate(config); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", file, err)
		}

		configs[config.Name] = config
		slog.Debug("Loaded source profile", "name", config.Name, "file", file)
	}

	return configs, nil
}

// loadFile loads a single YAML source profile
func (l *Loader) loadFile(path string) (*SourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config SourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := filepath.Base(path)
	config.Name = strings.TrimSuffix(base, filepath.Ext(base))

	l.setDefaults(&config)

	return &config, nil
}

// setDefaults applies default values to a source profile
func (l *Loader) setDefaults(config *SourceConfig) {
	if config.Settings.Region == "" {
		config.Settings.Region = "GB"
	}
	if config.Settings.Pages == 0 {
		config.Settings.Pages = 1
	}
	if config.Settings.SleepMS == 0 {
		config.Settings.SleepMS = 500
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 10 // seconds
	}
}

// validate validates a source profile
func (l *Loader) validate(config *SourceConfig) error {
	if config.URL == "" {
		return fmt.Errorf("source URL is required")
	}
	if config.Settings.Pages < 0 {
		return fmt.Errorf("pages must be non-negative")
	}
	if config.Settings.SleepMS < 0 {
		return fmt.Errorf("sleep must be non-negative")
	}
	if config.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	return nil
}
