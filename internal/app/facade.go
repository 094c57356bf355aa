package app

import (
	"context"
	"time"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/usecase"
)

// PaymentEventNotifier publishes order events after the owning transaction
// committed.
type PaymentEventNotifier interface {
	OrderPaymentVerified(order *model.Order)
}

// StorefrontFacade aggregates the use cases behind a single surface consumed
// by HTTP handlers and background workers.
type StorefrontFacade struct {
	auth      *usecase.AuthUseCase
	orders    *usecase.OrderUseCase
	payments  *usecase.PaymentUseCase
	reconcile *usecase.ReconcileUseCase
	events    PaymentEventNotifier
}

func NewStorefrontFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, payments *usecase.PaymentUseCase, reconcile *usecase.ReconcileUseCase, events PaymentEventNotifier) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, orders: orders, payments: payments, reconcile: reconcile, events: events}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, userID int64, addressID *int64, items []repository.NewOrderItem) (*model.Order, error) {
	return f.orders.Create(ctx, userID, addressID, items)
}

func (f *StorefrontFacade) PlaceSingleOrder(ctx context.Context, userID int64, addressID *int64, productID int64, quantity int) (*model.Order, error) {
	return f.orders.CreateSingle(ctx, userID, addressID, productID, quantity)
}

func (f *StorefrontFacade) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) OrdersByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	return f.orders.ListByStatus(ctx, status, limit)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Cancel(ctx, userID, orderID)
}

func (f *StorefrontFacade) SetOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus) (*model.Order, error) {
	return f.orders.SetStatus(ctx, orderID, to)
}

func (f *StorefrontFacade) SweepExpiredOrders(ctx context.Context, now time.Time) (int, error) {
	return f.orders.SweepExpired(ctx, now)
}

func (f *StorefrontFacade) UploadPaymentProof(ctx context.Context, userID, orderID int64, fileKey string) (*model.PaymentProof, error) {
	return f.payments.Upload(ctx, userID, orderID, fileKey)
}

// ApprovePaymentProof verifies the payment, confirms the order's stock hold,
// and notifies downstream consumers once the transaction committed.
func (f *StorefrontFacade) ApprovePaymentProof(ctx context.Context, proofID int64) (*model.Order, error) {
	order, err := f.payments.Approve(ctx, proofID)
	if err != nil {
		return nil, err
	}
	f.events.OrderPaymentVerified(order)
	return order, nil
}

func (f *StorefrontFacade) RejectPaymentProof(ctx context.Context, proofID int64, notes string) (*model.Order, error) {
	return f.payments.Reject(ctx, proofID, notes)
}

func (f *StorefrontFacade) PaymentProof(ctx context.Context, proofID int64) (*model.PaymentProof, error) {
	return f.payments.Proof(ctx, proofID)
}

func (f *StorefrontFacade) StockIncidences(ctx context.Context) ([]model.Incidence, error) {
	return f.reconcile.FindIncidences(ctx)
}

func (f *StorefrontFacade) SyncStock(ctx context.Context, productID int64) error {
	return f.reconcile.SyncOne(ctx, productID)
}

func (f *StorefrontFacade) SyncStockBatch(ctx context.Context, productIDs []int64) (int, error) {
	return f.reconcile.SyncMany(ctx, productIDs)
}
