package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the config root.
const FileName = "unitcalc.yaml"

// Load reads unitcalc.yaml from root and applies it on top of the defaults.
// A missing file is not an error: defaults are returned.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return Parse(path, b)
}

// Parse decodes YAML bytes; path is used for error context only.
func Parse(path string, b []byte) (domain.Config, error) {
	var y YAMLFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return Map(path, y.Unitcalc)
}
