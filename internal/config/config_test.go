package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.SiteName != "fp" {
		t.Errorf("expected default site_name %q, got %q", "fp", cfg.SiteName)
	}
	if cfg.HighlightStyle != "github" {
		t.Errorf("expected default highlight_style %q, got %q", "github", cfg.HighlightStyle)
	}
	if !cfg.Metrics {
		t.Error("metrics should be enabled by default")
	}
	if cfg.SessionTTLDuration() != 30*time.Minute {
		t.Errorf("expected default session ttl 30m, got %v", cfg.SessionTTLDuration())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.fpdocs.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.SiteName = "fp docs"
	original.HighlightStyle = "monokai"
	original.AllowAllOrigins = true
	original.Metrics = false
	original.SessionTTL = "2h"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.HighlightStyle != original.HighlightStyle {
		t.Errorf("highlight_style: got %q, want %q", loaded.HighlightStyle, original.HighlightStyle)
	}
	if loaded.AllowAllOrigins != original.AllowAllOrigins {
		t.Errorf("allow_all_origins: got %v, want %v", loaded.AllowAllOrigins, original.AllowAllOrigins)
	}
	if loaded.Metrics != original.Metrics {
		t.Errorf("metrics: got %v, want %v", loaded.Metrics, original.Metrics)
	}
	if loaded.SessionTTLDuration() != 2*time.Hour {
		t.Errorf("session_ttl: got %v, want 2h", loaded.SessionTTLDuration())
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FPDOCS_SITE_NAME", "override")
	t.Setenv("FPDOCS_PORT", "3000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SiteName != "override" {
		t.Errorf("env override failed: got %q, want %q", loaded.SiteName, "override")
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got port %d, want 3000", loaded.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero port", func(c *Config) { c.Port = 0 }, false},
		{"port too large", func(c *Config) { c.Port = 70000 }, false},
		{"empty site name", func(c *Config) { c.SiteName = "  " }, false},
		{"empty style", func(c *Config) { c.HighlightStyle = "" }, false},
		{"unknown style", func(c *Config) { c.HighlightStyle = "no-such-style" }, false},
		{"negative pending cap", func(c *Config) { c.MaxPendingSessions = -1 }, false},
		{"bad ttl", func(c *Config) { c.SessionTTL = "soon" }, false},
		{"negative interval", func(c *Config) { c.SweepInterval = "-1m" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWizardStylesAreKnown(t *testing.T) {
	for _, style := range HighlightStyles {
		cfg := DefaultConfig()
		cfg.HighlightStyle = style
		if err := cfg.Validate(); err != nil {
			t.Errorf("style %q: %v", style, err)
		}
	}
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SessionTTL = "garbage"
	cfg.SweepInterval = "0s"
	if cfg.SessionTTLDuration() != 30*time.Minute {
		t.Errorf("ttl fallback = %v", cfg.SessionTTLDuration())
	}
	if cfg.SweepIntervalDuration() != time.Minute {
		t.Errorf("interval fallback = %v", cfg.SweepIntervalDuration())
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"8080", true},
		{"1", true},
		{"0", false},
		{"65536", false},
		{"http", false},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err == nil) != tt.ok {
			t.Errorf("validatePort(%q) = %v, want ok=%v", tt.input, err, tt.ok)
		}
	}
}
