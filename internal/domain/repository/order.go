package repository

import (
	"context"
	"time"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
)

// NewOrderItem is a requested order line before prices are snapshotted.
type NewOrderItem struct {
	ProductID int64
	Quantity  int
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts the order with all items and reserves stock for each of
	// them in a single transaction. Any failed reservation rolls the whole
	// order back.
	Create(ctx context.Context, userID int64, addressID *int64, items []NewOrderItem, expiresAt time.Time) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	// Transition applies a guarded status change with its ledger side
	// effects in one transaction. Returns InvalidTransitionError when the
	// lifecycle forbids the change.
	Transition(ctx context.Context, orderID int64, to model.OrderStatus) (*model.Order, error)
	// SweepExpired cancels pending_payment orders whose expiry passed,
	// releasing their reservations. Returns the number of orders cancelled.
	SweepExpired(ctx context.Context, now time.Time, limit int) (int, error)
}
