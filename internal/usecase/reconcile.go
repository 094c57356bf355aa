package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// InventoryProvider fetches availability from the remote authoritative
// inventory in one batched call.
type InventoryProvider interface {
	FetchAvailability(ctx context.Context, productIDs []int64) (map[int64]int, error)
}

// IncidenceCache stores the computed incidence list for a short TTL so the
// remote system is not hit on every request.
type IncidenceCache interface {
	Get(ctx context.Context) ([]model.Incidence, bool)
	Set(ctx context.Context, incidences []model.Incidence)
}

// ReconcileUseCase detects and corrects oversell incidences: products whose
// local available count exceeds the remote authoritative inventory.
type ReconcileUseCase struct {
	products  repository.ProductRepository
	stock     repository.StockLedger
	inventory InventoryProvider
	cache     IncidenceCache
	logger    *slog.Logger
}

// NewReconcileUseCase constructs ReconcileUseCase.
func NewReconcileUseCase(products repository.ProductRepository, stock repository.StockLedger, inventory InventoryProvider, cache IncidenceCache, logger *slog.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{products: products, stock: stock, inventory: inventory, cache: cache, logger: logger}
}

// FindIncidences compares local available counts of active in-stock products
// against the remote inventory and returns positive mismatches sorted by
// difference, largest first. A remote fetch failure yields an empty list for
// this run; it is never surfaced as an error.
func (u *ReconcileUseCase) FindIncidences(ctx context.Context) ([]model.Incidence, error) {
	if cached, ok := u.cache.Get(ctx); ok {
		return cached, nil
	}

	products, err := u.products.ListReconcilable(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	remote, err := u.inventory.FetchAvailability(ctx, ids)
	if err != nil {
		u.logger.Warn("remote availability fetch failed, skipping reconciliation", slog.String("error", err.Error()))
		return nil, nil
	}

	var incidences []model.Incidence
	for _, p := range products {
		remoteAvailable, ok := remote[p.ID]
		if !ok {
			continue
		}
		if diff := p.Available - remoteAvailable; diff > 0 {
			incidences = append(incidences, model.Incidence{
				ProductID:       p.ID,
				SKU:             p.SKU,
				LocalAvailable:  p.Available,
				RemoteAvailable: remoteAvailable,
				Difference:      diff,
			})
		}
	}

	sort.Slice(incidences, func(i, j int) bool {
		if incidences[i].Difference != incidences[j].Difference {
			return incidences[i].Difference > incidences[j].Difference
		}
		return incidences[i].ProductID < incidences[j].ProductID
	})

	u.cache.Set(ctx, incidences)
	return incidences, nil
}

// SyncOne lowers one product's local availability toward the remote value.
// A failed remote fetch skips the sync without error.
func (u *ReconcileUseCase) SyncOne(ctx context.Context, productID int64) error {
	remote, err := u.inventory.FetchAvailability(ctx, []int64{productID})
	if err != nil {
		u.logger.Warn("remote availability fetch failed, sync skipped",
			slog.Int64("product_id", productID), slog.String("error", err.Error()))
		return nil
	}
	remoteAvailable, ok := remote[productID]
	if !ok {
		return nil
	}
	return u.stock.Reconcile(ctx, productID, remoteAvailable)
}

// SyncMany reconciles a batch of products in one remote call and returns the
// number of products corrected toward the remote value.
func (u *ReconcileUseCase) SyncMany(ctx context.Context, productIDs []int64) (int, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}
	remote, err := u.inventory.FetchAvailability(ctx, productIDs)
	if err != nil {
		u.logger.Warn("remote availability fetch failed, sync skipped", slog.String("error", err.Error()))
		return 0, nil
	}

	synced := 0
	for _, id := range productIDs {
		remoteAvailable, ok := remote[id]
		if !ok {
			continue
		}
		if err := u.stock.Reconcile(ctx, id, remoteAvailable); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}
