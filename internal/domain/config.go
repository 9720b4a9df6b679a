package domain

import "time"

// Config represents the unitcalc configuration loaded from unitcalc.yaml.
type Config struct {
	Display  DisplayConfig
	Defaults DefaultsConfig
	Server   ServerConfig
}

type DisplayConfig struct {
	Precision int
}

type DefaultsConfig struct {
	Category string
	From     string
	To       string
}

type ServerConfig struct {
	Addr        string
	MaxSessions int
	// SessionTTL is how long an HTTP session may sit unused before it is dropped.
	SessionTTL time.Duration
	// ClientTimeout bounds each call made with --server.
	ClientTimeout time.Duration
}

// DefaultConfig provides sane defaults if unitcalc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{Precision: 6},
		Defaults: DefaultsConfig{
			Category: "Length",
		},
		Server: ServerConfig{
			Addr:          ":8080",
			MaxSessions:   1000,
			SessionTTL:    30 * time.Minute,
			ClientTimeout: 10 * time.Second,
		},
	}
}
