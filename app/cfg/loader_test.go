package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		BaseURL:    "https://ads.example.com/library",
		Query:      "shoes",
		Region:     "GB",
		Pages:      3,
		Format:     "csv",
		Output:     "out/ads.csv",
		OutputDir:  "data",
		SourcesDir: "./sources",
		Source:     "tiktok",
		SleepMS:    500,
		TimeoutSec: 10,
		UserAgent:  "Test Agent",
		DBPath:     "test.db",
		Port:       "8080",
		Debug:      true,
		Version:    "test-version",
	}

	if cfg.BaseURL != "https://ads.example.com/library" {
		t.Errorf("Expected base URL 'https://ads.example.com/library', got '%s'", cfg.BaseURL)
	}
	if cfg.Query != "shoes" {
		t.Errorf("Expected query 'shoes', got '%s'", cfg.Query)
	}
	if cfg.Region != "GB" {
		t.Errorf("Expected region 'GB', got '%s'", cfg.Region)
	}
	if cfg.Pages != 3 {
		t.Errorf("Expected pages 3, got %d", cfg.Pages)
	}
	if cfg.Format != "csv" {
		t.Errorf("Expected format 'csv', got '%s'", cfg.Format)
	}
	if cfg.SleepMS != 500 {
		t.Errorf("Expected sleep 500, got %d", cfg.SleepMS)
	}
	if cfg.TimeoutSec != 10 {
		t.Errorf("Expected timeout 10, got %d", cfg.TimeoutSec)
	}
	if cfg.DBPath != "test.db" {
		t.Errorf("Expected DB path 'test.db', got '%s'", cfg.DBPath)
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}
