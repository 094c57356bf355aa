package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
)

// ReconcileFacade exposes the subset of application functionality required by the reconciler.
type ReconcileFacade interface {
	StockIncidences(ctx context.Context) ([]model.Incidence, error)
	SyncStockBatch(ctx context.Context, productIDs []int64) (int, error)
}

// Reconciler periodically compares local stock against the remote
// authoritative inventory and lowers local availability where it oversells.
type Reconciler struct {
	facade   ReconcileFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReconciler constructs stock reconciler.
func NewReconciler(facade ReconcileFacade, interval time.Duration, logger *slog.Logger) *Reconciler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Reconciler{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background reconciliation.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.run(runCtx)
}

// Stop waits for the current run to finish.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reconciler) run(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context) {
	incidences, err := r.facade.StockIncidences(ctx)
	if err != nil {
		r.logger.Error("incidence detection failed", slog.String("error", err.Error()))
		return
	}
	if len(incidences) == 0 {
		return
	}

	ids := make([]int64, 0, len(incidences))
	for _, inc := range incidences {
		ids = append(ids, inc.ProductID)
	}

	synced, err := r.facade.SyncStockBatch(ctx, ids)
	if err != nil {
		r.logger.Error("stock sync failed", slog.Int("synced", synced), slog.String("error", err.Error()))
		return
	}
	if synced > 0 {
		r.logger.Info("reconciled oversold products", slog.Int("count", synced))
	}
}
