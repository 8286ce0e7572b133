package config

import "time"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".fpdocs.yml"

// HighlightStyles are the chroma styles offered by the init wizard.
var HighlightStyles = []string{"github", "monokai", "dracula", "solarized-light", "nord"}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		SiteName:       "fp",
		HighlightStyle: "github",
		Metrics:        true,
		SessionTTL:     "30m",
		SweepInterval:  "1m",

		MaxPendingSessions: 1000,
	}
}

// SessionTTLDuration returns SessionTTL parsed, or 30 minutes when it is
// unset or invalid.
func (c *Config) SessionTTLDuration() time.Duration {
	return parseDuration(c.SessionTTL, 30*time.Minute)
}

// SweepIntervalDuration returns SweepInterval parsed, or one minute when it
// is unset or invalid.
func (c *Config) SweepIntervalDuration() time.Duration {
	return parseDuration(c.SweepInterval, time.Minute)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
