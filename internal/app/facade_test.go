package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
	testhelpers "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/test"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/usecase"
)

type facadeFixture struct {
	facade    *StorefrontFacade
	users     *testhelpers.UserRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	proofs    *testhelpers.PaymentProofRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	stock     *testhelpers.StockLedgerStub
	inventory *testhelpers.InventoryProviderStub
	cache     *testhelpers.IncidenceCacheStub
	events    *testhelpers.EventNotifierStub
}

func newFacade() *facadeFixture {
	f := &facadeFixture{
		users:     testhelpers.NewUserRepositoryStub(),
		orders:    &testhelpers.OrderRepositoryStub{},
		proofs:    &testhelpers.PaymentProofRepositoryStub{},
		products:  &testhelpers.ProductRepositoryStub{},
		stock:     &testhelpers.StockLedgerStub{},
		inventory: &testhelpers.InventoryProviderStub{},
		cache:     &testhelpers.IncidenceCacheStub{},
		events:    &testhelpers.EventNotifierStub{},
	}

	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(f.users, testhelpers.HasherStub{}, strategy)
	orderUC := usecase.NewOrderUseCase(f.orders, time.Hour, 10)
	paymentUC := usecase.NewPaymentUseCase(f.proofs, f.orders)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	reconcileUC := usecase.NewReconcileUseCase(f.products, f.stock, f.inventory, f.cache, logger)

	f.facade = NewStorefrontFacade(authUC, orderUC, paymentUC, reconcileUC, f.events)
	return f
}

func TestStorefrontFacadeAuth(t *testing.T) {
	f := newFacade()
	token, err := f.facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := f.users.GetByLogin(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Login != "user" {
		t.Fatalf("unexpected stored login %q", stored.Login)
	}

	token, err = f.facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := f.facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	user, err := f.facade.UserByID(context.Background(), stored.ID)
	if err != nil || user.Login != "user" {
		t.Fatalf("unexpected user lookup: %v err=%v", user, err)
	}
}

func TestStorefrontFacadeOrders(t *testing.T) {
	f := newFacade()
	f.orders.Orders = []model.Order{
		{ID: 1, UserID: 7, Status: model.OrderStatusPendingPayment},
		{ID: 2, UserID: 7, Status: model.OrderStatusShipped},
	}

	order, err := f.facade.PlaceOrder(context.Background(), 7, nil, []repository.NewOrderItem{{ProductID: 1, Quantity: 2}})
	if err != nil || order == nil {
		t.Fatalf("unexpected place result: order=%v err=%v", order, err)
	}
	if len(f.orders.Created) != 1 {
		t.Fatalf("expected create call, got %d", len(f.orders.Created))
	}

	listed, err := f.facade.Orders(context.Background(), 7)
	if err != nil || len(listed) != 2 {
		t.Fatalf("expected two orders, got %v err=%v", listed, err)
	}

	got, err := f.facade.Order(context.Background(), 7, 2)
	if err != nil || got.ID != 2 {
		t.Fatalf("unexpected get result: %v err=%v", got, err)
	}
	if _, err := f.facade.Order(context.Background(), 8, 2); !errors.Is(err, domainErrors.ErrNotOrderOwner) {
		t.Fatalf("expected ownership error, got %v", err)
	}

	cancelled, err := f.facade.CancelOrder(context.Background(), 7, 1)
	if err != nil || cancelled.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected cancel result: %v err=%v", cancelled, err)
	}
	if _, err := f.facade.CancelOrder(context.Background(), 7, 2); !domainErrors.IsInvalidTransition(err) {
		t.Fatalf("expected invalid transition for shipped order, got %v", err)
	}

	f.orders.Swept = 4
	count, err := f.facade.SweepExpiredOrders(context.Background(), time.Now())
	if err != nil || count != 4 {
		t.Fatalf("unexpected sweep result: count=%d err=%v", count, err)
	}
}

func TestStorefrontFacadeApprovePublishesEvent(t *testing.T) {
	f := newFacade()
	f.proofs.ResolveFn = func(context.Context, int64, bool, string) (*model.Order, error) {
		return &model.Order{ID: 3, UserID: 7, TotalCents: 900, Status: model.OrderStatusPaymentVerified}, nil
	}

	order, err := f.facade.ApprovePaymentProof(context.Background(), 12)
	if err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	if order.Status != model.OrderStatusPaymentVerified {
		t.Fatalf("unexpected order status: %s", order.Status)
	}
	if len(f.events.Verified) != 1 || f.events.Verified[0].ID != 3 {
		t.Fatalf("expected published event for order 3, got %+v", f.events.Verified)
	}
}

func TestStorefrontFacadeApproveFailureSkipsEvent(t *testing.T) {
	f := newFacade()
	f.proofs.ResolveFn = func(context.Context, int64, bool, string) (*model.Order, error) {
		return nil, domainErrors.ErrProofResolved
	}

	if _, err := f.facade.ApprovePaymentProof(context.Background(), 12); !errors.Is(err, domainErrors.ErrProofResolved) {
		t.Fatalf("expected proof resolved error, got %v", err)
	}
	if len(f.events.Verified) != 0 {
		t.Fatalf("expected no events, got %+v", f.events.Verified)
	}
}

func TestStorefrontFacadeRejectDoesNotPublish(t *testing.T) {
	f := newFacade()

	order, err := f.facade.RejectPaymentProof(context.Background(), 12, "blurry receipt")
	if err != nil || order.Status != model.OrderStatusRejected {
		t.Fatalf("unexpected reject result: %v err=%v", order, err)
	}
	if len(f.events.Verified) != 0 {
		t.Fatalf("expected no events, got %+v", f.events.Verified)
	}
	if len(f.proofs.Resolved) != 1 || f.proofs.Resolved[0].Notes != "blurry receipt" {
		t.Fatalf("unexpected resolve call: %+v", f.proofs.Resolved)
	}
}

func TestStorefrontFacadeStock(t *testing.T) {
	f := newFacade()
	f.products.Products = []model.Product{
		{ID: 1, SKU: "A", Available: 5, Active: true},
		{ID: 2, SKU: "B", Available: 8, Active: true},
	}
	f.inventory.Remote = map[int64]int{1: 5, 2: 3}

	incidences, err := f.facade.StockIncidences(context.Background())
	if err != nil {
		t.Fatalf("incidences returned error: %v", err)
	}
	if len(incidences) != 1 || incidences[0].ProductID != 2 || incidences[0].Difference != 5 {
		t.Fatalf("unexpected incidences: %+v", incidences)
	}

	synced, err := f.facade.SyncStockBatch(context.Background(), []int64{2})
	if err != nil || synced != 1 {
		t.Fatalf("unexpected sync result: synced=%d err=%v", synced, err)
	}
	if len(f.stock.Reconciled) != 1 || f.stock.Reconciled[0].ProductID != 2 || f.stock.Reconciled[0].Qty != 3 {
		t.Fatalf("unexpected reconcile calls: %+v", f.stock.Reconciled)
	}

	if err := f.facade.SyncStock(context.Background(), 1); err != nil {
		t.Fatalf("sync one returned error: %v", err)
	}
}
