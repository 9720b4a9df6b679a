package ports

type ConfigInitializer interface {
	Init(root string, force bool) error
}
