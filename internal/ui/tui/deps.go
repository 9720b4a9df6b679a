package tui

import (
	"log/slog"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/ports"
	"github.com/aalvaropc/unitcalc/internal/registry"
	"github.com/aalvaropc/unitcalc/internal/usecase"
)

type Deps struct {
	Registry  *registry.Registry
	Converter *usecase.Converter

	Config      domain.Config
	ConfigRoot  string
	Initializer ports.ConfigInitializer

	Logger *slog.Logger
	Debug  bool
}
