package model

import "time"

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPendingPayment  OrderStatus = "pending_payment"
	OrderStatusPaymentUploaded OrderStatus = "payment_uploaded"
	OrderStatusPaymentVerified OrderStatus = "payment_verified"
	OrderStatusProcessing      OrderStatus = "processing"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusDelivered       OrderStatus = "delivered"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusRejected        OrderStatus = "rejected"
)

// validNext enumerates allowed lifecycle transitions. Cancelled and rejected
// are reachable from every non-terminal status.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPendingPayment: {
		OrderStatusPaymentUploaded: true,
		OrderStatusPaymentVerified: true,
		OrderStatusCancelled:       true,
		OrderStatusRejected:        true,
	},
	OrderStatusPaymentUploaded: {
		OrderStatusPaymentVerified: true,
		OrderStatusCancelled:       true,
		OrderStatusRejected:        true,
	},
	OrderStatusPaymentVerified: {
		OrderStatusProcessing: true,
		OrderStatusCancelled:  true,
		OrderStatusRejected:   true,
	},
	OrderStatusProcessing: {
		OrderStatusShipped:   true,
		OrderStatusCancelled: true,
		OrderStatusRejected:  true,
	},
	OrderStatusShipped: {
		OrderStatusDelivered: true,
		OrderStatusCancelled: true,
		OrderStatusRejected:  true,
	},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
	OrderStatusRejected:  {},
}

// CanTransition reports whether the lifecycle allows moving between the two
// statuses.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return len(validNext[s]) == 0
}

// HoldsStock reports whether an order in this status still holds reserved
// units. Only these statuses trigger a release on cancellation or rejection;
// after verification the hold is already cleared.
func (s OrderStatus) HoldsStock() bool {
	return s == OrderStatusPendingPayment || s == OrderStatusPaymentUploaded
}

// Order is a purchase placed by a user. Orders are never deleted;
// cancellation is a status change.
type Order struct {
	ID         int64
	UserID     int64
	AddressID  *int64 // nil for pickup
	TotalCents int64
	Status     OrderStatus
	ExpiresAt  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []OrderItem
}

// OrderItem is a line of an order. PriceCents snapshots the product price at
// order time and is never re-read from the product afterwards.
type OrderItem struct {
	OrderID    int64
	ProductID  int64
	Quantity   int
	PriceCents int64
}
