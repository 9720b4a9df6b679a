package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

func TestLoad_FullFile(t *testing.T) {
	cfg, err := Load("testdata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Display.Precision != 3 {
		t.Fatalf("expected precision 3, got %d", cfg.Display.Precision)
	}
	if cfg.Defaults.Category != "Temperature" || cfg.Defaults.From != "celsius" || cfg.Defaults.To != "fahrenheit" {
		t.Fatalf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" || cfg.Server.MaxSessions != 50 ||
		cfg.Server.SessionTTL != 5*time.Minute || cfg.Server.ClientTimeout != 2*time.Second {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_AppliesDefaultsToPartialFile(t *testing.T) {
	root := t.TempDir()
	content := []byte("unitcalc:\n  display:\n    precision: 2\n")
	if err := os.WriteFile(filepath.Join(root, FileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Display.Precision != 2 {
		t.Fatalf("expected precision 2, got %d", cfg.Display.Precision)
	}
	if cfg.Defaults.Category != "Length" {
		t.Fatalf("expected default category Length, got %q", cfg.Defaults.Category)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Server.Addr)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	path := filepath.Join("testdata", "invalid.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	_, err = Parse(path, b)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}
