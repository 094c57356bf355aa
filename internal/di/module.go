package di

import (
	"go.uber.org/fx"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/adapter/events"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/adapter/inventory"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/app"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/cache"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/config"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/logger"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/pkg/auth"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/handlers"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/server/http/router"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/storage/postgres"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		inventory.Module,
		cache.Module,
		events.Module,
		usecase.Module,
		fx.Provide(
			func(client inventory.Client) usecase.InventoryProvider { return client },
			func(c *cache.IncidenceCache) usecase.IncidenceCache { return c },
			func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
