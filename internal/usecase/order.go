package usecase

import (
	"context"
	"time"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders     repository.OrderRepository
	orderTTL   time.Duration
	sweepBatch int
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, orderTTL time.Duration, sweepBatch int) *OrderUseCase {
	if orderTTL <= 0 {
		orderTTL = 48 * time.Hour
	}
	if sweepBatch <= 0 {
		sweepBatch = 1
	}
	return &OrderUseCase{orders: orders, orderTTL: orderTTL, sweepBatch: sweepBatch}
}

// Create places a whole-cart order, reserving stock for every line. Any
// single insufficient line fails the entire order.
func (u *OrderUseCase) Create(ctx context.Context, userID int64, addressID *int64, items []repository.NewOrderItem) (*model.Order, error) {
	normalized, err := NormalizeItems(items)
	if err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, userID, addressID, normalized, time.Now().Add(u.orderTTL))
}

// CreateSingle places a single-product order; it reduces to the same
// reservation path as a cart purchase.
func (u *OrderUseCase) CreateSingle(ctx context.Context, userID int64, addressID *int64, productID int64, quantity int) (*model.Order, error) {
	return u.Create(ctx, userID, addressID, []repository.NewOrderItem{{ProductID: productID, Quantity: quantity}})
}

// Get returns an order owned by the user.
func (u *OrderUseCase) Get(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotOrderOwner
	}
	return order, nil
}

// ListByUser returns orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListByStatus returns orders in the given status, oldest first.
func (u *OrderUseCase) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	return u.orders.ListByStatus(ctx, status, limit)
}

// Cancel cancels the buyer's own order while it still awaits payment,
// releasing its reservation.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotOrderOwner
	}
	if order.Status != model.OrderStatusPendingPayment {
		return nil, &domainErrors.InvalidTransitionError{
			OrderID: orderID,
			From:    string(order.Status),
			To:      string(model.OrderStatusCancelled),
		}
	}
	return u.orders.Transition(ctx, orderID, model.OrderStatusCancelled)
}

// SetStatus applies an admin- or gateway-driven status change through the
// lifecycle guard.
func (u *OrderUseCase) SetStatus(ctx context.Context, orderID int64, to model.OrderStatus) (*model.Order, error) {
	return u.orders.Transition(ctx, orderID, to)
}

// SweepExpired cancels pending_payment orders whose expiry passed and
// returns the number of orders cancelled.
func (u *OrderUseCase) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return u.orders.SweepExpired(ctx, now, u.sweepBatch)
}
