package config

// Config is the top-level fpdocs configuration, corresponding to .fpdocs.yml.
type Config struct {
	Port            int    `yaml:"port" koanf:"port"`
	SiteName        string `yaml:"site_name" koanf:"site_name"`
	HighlightStyle  string `yaml:"highlight_style" koanf:"highlight_style"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Metrics         bool   `yaml:"metrics" koanf:"metrics"`
	// SessionTTL and SweepInterval are Go durations ("30m", "1m").
	SessionTTL    string `yaml:"session_ttl" koanf:"session_ttl"`
	SweepInterval string `yaml:"sweep_interval" koanf:"sweep_interval"`
	// MaxPendingSessions caps sessions opened by a page load that never
	// attached a socket. Zero uses the built-in limit.
	MaxPendingSessions int `yaml:"max_pending_sessions" koanf:"max_pending_sessions"`
}
