package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/ports"
)

// Finder locates the directory holding unitcalc.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "unitcalc.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: "unitcalc.yaml"}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidInput,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// ResolveRoot returns the config root above startDir, or startDir itself when
// no unitcalc.yaml exists anywhere above it.
func ResolveRoot(l ports.ConfigLocator, startDir string) string {
	if root, err := l.FindRoot(startDir); err == nil && root != "" {
		return root
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return startDir
	}
	return abs
}
