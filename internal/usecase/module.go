package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/config"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewPaymentUseCase,
	newOrderUseCase,
	newReconcileUseCase,
)

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	Config *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Config.OrderTTL, p.Config.SweepBatch)
}

type reconcileParams struct {
	fx.In

	Products  repository.ProductRepository
	Stock     repository.StockLedger
	Inventory InventoryProvider
	Cache     IncidenceCache
	Logger    *slog.Logger
}

func newReconcileUseCase(p reconcileParams) *ReconcileUseCase {
	return NewReconcileUseCase(p.Products, p.Stock, p.Inventory, p.Cache, p.Logger)
}
