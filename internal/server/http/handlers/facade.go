package handlers

import (
	"context"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// OrderFacade encapsulates buyer order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, addressID *int64, items []repository.NewOrderItem) (*model.Order, error)
	PlaceSingleOrder(ctx context.Context, userID int64, addressID *int64, productID int64, quantity int) (*model.Order, error)
	Order(ctx context.Context, userID, orderID int64) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
}

// PaymentFacade provides payment proof operations.
type PaymentFacade interface {
	UploadPaymentProof(ctx context.Context, userID, orderID int64, fileKey string) (*model.PaymentProof, error)
	ApprovePaymentProof(ctx context.Context, proofID int64) (*model.Order, error)
	RejectPaymentProof(ctx context.Context, proofID int64, notes string) (*model.Order, error)
	PaymentProof(ctx context.Context, proofID int64) (*model.PaymentProof, error)
}

// AdminFacade provides order administration and stock reconciliation.
type AdminFacade interface {
	OrdersByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus) (*model.Order, error)
	StockIncidences(ctx context.Context) ([]model.Incidence, error)
	SyncStock(ctx context.Context, productID int64) error
	SyncStockBatch(ctx context.Context, productIDs []int64) (int, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	OrderFacade
	PaymentFacade
	AdminFacade
}
