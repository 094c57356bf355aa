package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	testhelpers "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/test"
)

type reconcileFixture struct {
	uc        *ReconcileUseCase
	products  *testhelpers.ProductRepositoryStub
	stock     *testhelpers.StockLedgerStub
	inventory *testhelpers.InventoryProviderStub
	cache     *testhelpers.IncidenceCacheStub
}

func newReconcileFixture() *reconcileFixture {
	f := &reconcileFixture{
		products:  &testhelpers.ProductRepositoryStub{},
		stock:     &testhelpers.StockLedgerStub{},
		inventory: &testhelpers.InventoryProviderStub{},
		cache:     &testhelpers.IncidenceCacheStub{},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	f.uc = NewReconcileUseCase(f.products, f.stock, f.inventory, f.cache, logger)
	return f
}

func TestFindIncidencesDetectsOversell(t *testing.T) {
	f := newReconcileFixture()
	f.products.Products = []model.Product{
		{ID: 1, SKU: "BRK-001", Available: 10, Active: true},
		{ID: 2, SKU: "FLT-002", Available: 5, Active: true},
		{ID: 3, SKU: "OIL-003", Available: 2, Active: true},
	}
	f.inventory.Remote = map[int64]int{1: 4, 2: 5, 3: 0}

	incidences, err := f.uc.FindIncidences(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(incidences) != 2 {
		t.Fatalf("expected two incidences, got %+v", incidences)
	}
	if incidences[0].ProductID != 1 || incidences[0].Difference != 6 {
		t.Fatalf("expected largest difference first, got %+v", incidences[0])
	}
	if incidences[1].ProductID != 3 || incidences[1].Difference != 2 {
		t.Fatalf("unexpected second incidence: %+v", incidences[1])
	}
	if f.cache.Sets != 1 {
		t.Fatalf("expected result cached once, got %d sets", f.cache.Sets)
	}
	if len(f.inventory.Requests) != 1 || len(f.inventory.Requests[0]) != 3 {
		t.Fatalf("expected one batched fetch for all products, got %+v", f.inventory.Requests)
	}
}

func TestFindIncidencesOrdersEqualDifferencesByProduct(t *testing.T) {
	f := newReconcileFixture()
	f.products.Products = []model.Product{
		{ID: 9, SKU: "B", Available: 5, Active: true},
		{ID: 3, SKU: "A", Available: 5, Active: true},
	}
	f.inventory.Remote = map[int64]int{9: 2, 3: 2}

	incidences, err := f.uc.FindIncidences(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(incidences) != 2 || incidences[0].ProductID != 3 || incidences[1].ProductID != 9 {
		t.Fatalf("expected ties ordered by product id, got %+v", incidences)
	}
}

func TestFindIncidencesServesCachedList(t *testing.T) {
	f := newReconcileFixture()
	f.cache.Cached = []model.Incidence{{ProductID: 7, Difference: 3}}
	f.cache.Fresh = true

	incidences, err := f.uc.FindIncidences(context.Background())
	if err != nil || len(incidences) != 1 || incidences[0].ProductID != 7 {
		t.Fatalf("unexpected cached result: %+v err=%v", incidences, err)
	}
	if len(f.inventory.Requests) != 0 {
		t.Fatalf("expected no remote fetch on cache hit, got %+v", f.inventory.Requests)
	}
}

func TestFindIncidencesSkipsRunOnRemoteFailure(t *testing.T) {
	f := newReconcileFixture()
	f.products.Products = []model.Product{{ID: 1, SKU: "A", Available: 5, Active: true}}
	f.inventory.Err = errors.New("inventory unavailable")

	incidences, err := f.uc.FindIncidences(context.Background())
	if err != nil {
		t.Fatalf("remote failure must not surface as error, got %v", err)
	}
	if incidences != nil {
		t.Fatalf("expected empty run, got %+v", incidences)
	}
	if f.cache.Sets != 0 {
		t.Fatalf("expected failed run not cached, got %d sets", f.cache.Sets)
	}
}

func TestFindIncidencesIgnoresUnknownRemoteProducts(t *testing.T) {
	f := newReconcileFixture()
	f.products.Products = []model.Product{
		{ID: 1, SKU: "A", Available: 5, Active: true},
		{ID: 2, SKU: "B", Available: 5, Active: true},
	}
	f.inventory.Remote = map[int64]int{1: 2}

	incidences, err := f.uc.FindIncidences(context.Background())
	if err != nil || len(incidences) != 1 || incidences[0].ProductID != 1 {
		t.Fatalf("expected only the known product reported, got %+v err=%v", incidences, err)
	}
}

func TestSyncOneReconcilesTowardRemote(t *testing.T) {
	f := newReconcileFixture()
	f.inventory.Remote = map[int64]int{5: 3}

	if err := f.uc.SyncOne(context.Background(), 5); err != nil {
		t.Fatalf("sync returned error: %v", err)
	}
	if len(f.stock.Reconciled) != 1 || f.stock.Reconciled[0].ProductID != 5 || f.stock.Reconciled[0].Qty != 3 {
		t.Fatalf("unexpected reconcile call: %+v", f.stock.Reconciled)
	}
}

func TestSyncOneSkipsOnRemoteFailure(t *testing.T) {
	f := newReconcileFixture()
	f.inventory.Err = errors.New("inventory unavailable")

	if err := f.uc.SyncOne(context.Background(), 5); err != nil {
		t.Fatalf("remote failure must not surface as error, got %v", err)
	}
	if len(f.stock.Reconciled) != 0 {
		t.Fatalf("expected no reconcile calls, got %+v", f.stock.Reconciled)
	}
}

func TestSyncManyCountsCorrectedProducts(t *testing.T) {
	f := newReconcileFixture()
	f.inventory.Remote = map[int64]int{1: 2, 3: 0}

	synced, err := f.uc.SyncMany(context.Background(), []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("sync returned error: %v", err)
	}
	if synced != 2 {
		t.Fatalf("expected two products synced, got %d", synced)
	}
	if len(f.stock.Reconciled) != 2 {
		t.Fatalf("unexpected reconcile calls: %+v", f.stock.Reconciled)
	}
	if len(f.inventory.Requests) != 1 {
		t.Fatalf("expected one batched fetch, got %+v", f.inventory.Requests)
	}
}

func TestSyncManyStopsOnLedgerError(t *testing.T) {
	f := newReconcileFixture()
	f.inventory.Remote = map[int64]int{1: 2, 2: 1}
	f.stock.ReconcileFn = func(_ context.Context, productID int64, _ int) error {
		if productID == 2 {
			return errors.New("deadlock")
		}
		return nil
	}

	synced, err := f.uc.SyncMany(context.Background(), []int64{1, 2})
	if err == nil {
		t.Fatal("expected ledger error to surface")
	}
	if synced != 1 {
		t.Fatalf("expected one product synced before failure, got %d", synced)
	}
}

func TestSyncManyEmptyBatch(t *testing.T) {
	f := newReconcileFixture()

	synced, err := f.uc.SyncMany(context.Background(), nil)
	if err != nil || synced != 0 {
		t.Fatalf("unexpected result: synced=%d err=%v", synced, err)
	}
	if len(f.inventory.Requests) != 0 {
		t.Fatalf("expected no remote fetch for empty batch, got %+v", f.inventory.Requests)
	}
}
