package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/infra/apiclient"
	"github.com/aalvaropc/unitcalc/internal/infra/config"
	"github.com/aalvaropc/unitcalc/internal/infra/configfinder"
	"github.com/aalvaropc/unitcalc/internal/infra/logger"
	"github.com/aalvaropc/unitcalc/internal/registry"
	"github.com/aalvaropc/unitcalc/internal/usecase"
)

type calcCtx struct {
	root string
	// found reports whether unitcalc.yaml exists in root.
	found bool
	cfg   domain.Config

	registry *registry.Registry
	conv     *usecase.Converter
}

// dial connects to a `unitcalc serve` instance with the client settings from unitcalc.yaml.
func (cc *calcCtx) dial(server string) (*apiclient.Client, error) {
	return apiclient.New(server, apiclient.FromConfig(cc.cfg.Server)...)
}

func loadContext(dirFlag string) (*calcCtx, error) {
	root, found, err := resolveConfigRoot(dirFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	reg := registry.Builtin()
	return &calcCtx{
		root:     root,
		found:    found,
		cfg:      cfg,
		registry: reg,
		conv:     usecase.NewConverter(reg),
	}, nil
}

// resolveConfigRoot returns an explicit --dir as-is, otherwise the nearest
// directory above the working directory holding unitcalc.yaml. Without one the
// working directory is used and the defaults apply.
func resolveConfigRoot(dirFlag string) (string, bool, error) {
	d := strings.TrimSpace(dirFlag)
	if d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return "", false, fmt.Errorf("invalid config directory: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, config.FileName)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	root := configfinder.ResolveRoot(configfinder.NewFinder(), wd)
	return root, fileExists(filepath.Join(root, config.FileName)), nil
}

// setupCommandLogging logs one-shot commands to the config root's log file,
// but only where a unitcalc.yaml exists or --debug was given, so running a
// quick conversion never litters an arbitrary directory.
func setupCommandLogging(cc *calcCtx, debug bool) func() {
	if !cc.found && !debug {
		return func() {}
	}
	cleanup, err := logger.Setup(logger.Config{Root: cc.root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

// resolveCategory falls back to the configured default category.
func resolveCategory(cc *calcCtx, flag string) string {
	if c := strings.TrimSpace(flag); c != "" {
		return c
	}
	return cc.cfg.Defaults.Category
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
