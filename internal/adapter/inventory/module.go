package inventory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/config"
)

// Module exposes inventory client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.InventoryAddress, p.Logger)
}
