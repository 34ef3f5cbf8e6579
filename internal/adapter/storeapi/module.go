package storeapi

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/fourline/orderfront/internal/config"
)

// Module exposes the store API client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.StoreAPIAddress, p.Config.ClientTimeout, p.Logger)
}
