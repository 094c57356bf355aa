package dto

import "time"

// OrderItemRequest describes one cart line in an order request.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest describes order placement payload. Either Items carries
// the whole cart, or ProductID/Quantity describe a single-product purchase.
type CreateOrderRequest struct {
	AddressID *int64             `json:"address_id,omitempty"`
	Items     []OrderItemRequest `json:"items,omitempty"`
	ProductID int64              `json:"product_id,omitempty"`
	Quantity  int                `json:"quantity,omitempty"`
}

// OrderItemResponse describes one line of a returned order.
type OrderItemResponse struct {
	ProductID  int64 `json:"product_id"`
	Quantity   int   `json:"quantity"`
	PriceCents int64 `json:"price_cents"`
}

// OrderResponse describes an order returned to the client.
type OrderResponse struct {
	ID         int64               `json:"id"`
	Status     string              `json:"status"`
	TotalCents int64               `json:"total_cents"`
	ExpiresAt  time.Time           `json:"expires_at"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items,omitempty"`
}

// SetOrderStatusRequest describes an admin-driven status change.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
}
