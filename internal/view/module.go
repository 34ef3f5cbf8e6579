package view

import (
	"go.uber.org/fx"

	"github.com/fourline/orderfront/internal/config"
)

// Module provides the per-session view state registry.
var Module = fx.Provide(func(cfg *config.Config) *Registry {
	return NewRegistry(cfg.SessionTTL)
})
