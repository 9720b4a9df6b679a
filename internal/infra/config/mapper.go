package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

const maxPrecision = 17

// Map applies parsed values on top of domain.DefaultConfig and validates them.
func Map(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if y.Display.Precision != nil {
		p := *y.Display.Precision
		if p < 0 || p > maxPrecision {
			return cfg, invalidField(path, "display.precision", fmt.Sprintf("must be between 0 and %d", maxPrecision))
		}
		cfg.Display.Precision = p
	}

	if c := strings.TrimSpace(y.Defaults.Category); c != "" {
		cfg.Defaults.Category = c
	}
	cfg.Defaults.From = strings.TrimSpace(y.Defaults.From)
	cfg.Defaults.To = strings.TrimSpace(y.Defaults.To)

	if a := strings.TrimSpace(y.Server.Addr); a != "" {
		cfg.Server.Addr = a
	}
	if y.Server.MaxSessions != nil {
		if *y.Server.MaxSessions <= 0 {
			return cfg, invalidField(path, "server.max_sessions", "must be positive")
		}
		cfg.Server.MaxSessions = *y.Server.MaxSessions
	}
	if d, err := positiveDuration(path, "server.session_ttl", y.Server.SessionTTL); err != nil {
		return cfg, err
	} else if d > 0 {
		cfg.Server.SessionTTL = d
	}
	if d, err := positiveDuration(path, "server.client_timeout", y.Server.ClientTimeout); err != nil {
		return cfg, err
	} else if d > 0 {
		cfg.Server.ClientTimeout = d
	}

	return cfg, nil
}

// positiveDuration parses a Go duration such as "30m". Blank means unset.
func positiveDuration(path, field, raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, invalidField(path, field, fmt.Sprintf("%q is not a duration", raw))
	}
	if d <= 0 {
		return 0, invalidField(path, field, "must be positive")
	}
	return d, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
