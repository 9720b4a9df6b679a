package ports

// ConfigLocator finds the directory holding unitcalc.yaml starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
