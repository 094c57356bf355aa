package test

import (
	"context"
	"sync"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn       func(context.Context, int64, *int64, []repository.NewOrderItem) (*model.Order, error)
	PlaceSingleFn func(context.Context, int64, *int64, int64, int) (*model.Order, error)
	OrderFn       func(context.Context, int64, int64) (*model.Order, error)
	OrdersFn      func(context.Context, int64) ([]model.Order, error)
	CancelFn      func(context.Context, int64, int64) (*model.Order, error)
}

// PlaceOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, addressID *int64, items []repository.NewOrderItem) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, addressID, items)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPendingPayment}, nil
}

// PlaceSingleOrder delegates to provided function or returns default order.
func (s OrderFacadeStub) PlaceSingleOrder(ctx context.Context, userID int64, addressID *int64, productID int64, quantity int) (*model.Order, error) {
	if s.PlaceSingleFn != nil {
		return s.PlaceSingleFn(ctx, userID, addressID, productID, quantity)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPendingPayment}, nil
}

// Order returns predefined order for the given user.
func (s OrderFacadeStub) Order(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusPendingPayment}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// CancelOrder delegates to provided function or reports cancellation.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, UserID: userID, Status: model.OrderStatusCancelled}, nil
}

// PaymentFacadeStub simulates payment proof operations.
type PaymentFacadeStub struct {
	UploadFn  func(context.Context, int64, int64, string) (*model.PaymentProof, error)
	ApproveFn func(context.Context, int64) (*model.Order, error)
	RejectFn  func(context.Context, int64, string) (*model.Order, error)
	ProofFn   func(context.Context, int64) (*model.PaymentProof, error)
}

// UploadPaymentProof returns a pending proof by default.
func (s PaymentFacadeStub) UploadPaymentProof(ctx context.Context, userID, orderID int64, fileKey string) (*model.PaymentProof, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, userID, orderID, fileKey)
	}
	return &model.PaymentProof{ID: 1, OrderID: orderID, FileKey: fileKey, Status: model.ProofStatusPending}, nil
}

// ApprovePaymentProof reports the verified order by default.
func (s PaymentFacadeStub) ApprovePaymentProof(ctx context.Context, proofID int64) (*model.Order, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, proofID)
	}
	return &model.Order{ID: proofID, Status: model.OrderStatusPaymentVerified}, nil
}

// RejectPaymentProof reports the rejected order by default.
func (s PaymentFacadeStub) RejectPaymentProof(ctx context.Context, proofID int64, notes string) (*model.Order, error) {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, proofID, notes)
	}
	return &model.Order{ID: proofID, Status: model.OrderStatusRejected}, nil
}

// PaymentProof returns a stored proof by default.
func (s PaymentFacadeStub) PaymentProof(ctx context.Context, proofID int64) (*model.PaymentProof, error) {
	if s.ProofFn != nil {
		return s.ProofFn(ctx, proofID)
	}
	return &model.PaymentProof{ID: proofID, Status: model.ProofStatusPending}, nil
}

// AdminFacadeStub simulates admin order and stock operations.
type AdminFacadeStub struct {
	OrdersByStatusFn func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	SetStatusFn      func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	IncidencesFn     func(context.Context) ([]model.Incidence, error)
	SyncFn           func(context.Context, int64) error
	SyncBatchFn      func(context.Context, []int64) (int, error)
}

// OrdersByStatus returns configured orders.
func (s AdminFacadeStub) OrdersByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.OrdersByStatusFn != nil {
		return s.OrdersByStatusFn(ctx, status, limit)
	}
	return []model.Order{{ID: 1, Status: status}}, nil
}

// SetOrderStatus applies override when provided.
func (s AdminFacadeStub) SetOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus) (*model.Order, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, orderID, to)
	}
	return &model.Order{ID: orderID, Status: to}, nil
}

// StockIncidences returns configured incidences.
func (s AdminFacadeStub) StockIncidences(ctx context.Context) ([]model.Incidence, error) {
	if s.IncidencesFn != nil {
		return s.IncidencesFn(ctx)
	}
	return nil, nil
}

// SyncStock applies override when provided.
func (s AdminFacadeStub) SyncStock(ctx context.Context, productID int64) error {
	if s.SyncFn != nil {
		return s.SyncFn(ctx, productID)
	}
	return nil
}

// SyncStockBatch applies override when provided.
func (s AdminFacadeStub) SyncStockBatch(ctx context.Context, productIDs []int64) (int, error) {
	if s.SyncBatchFn != nil {
		return s.SyncBatchFn(ctx, productIDs)
	}
	return len(productIDs), nil
}

// InventoryProviderStub fetches remote availability for tests.
type InventoryProviderStub struct {
	FetchFn func(context.Context, []int64) (map[int64]int, error)
	Remote  map[int64]int
	Err     error

	Requests [][]int64
}

// FetchAvailability returns configured response or error.
func (s *InventoryProviderStub) FetchAvailability(ctx context.Context, productIDs []int64) (map[int64]int, error) {
	s.Requests = append(s.Requests, productIDs)
	if s.FetchFn != nil {
		return s.FetchFn(ctx, productIDs)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Remote, nil
}

// IncidenceCacheStub keeps the cached incidence list in memory.
type IncidenceCacheStub struct {
	mu     sync.Mutex
	Cached []model.Incidence
	Fresh  bool
	Sets   int
}

// Get reports the stored list when marked fresh.
func (s *IncidenceCacheStub) Get(ctx context.Context) ([]model.Incidence, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Fresh {
		return nil, false
	}
	return s.Cached, true
}

// Set stores the list and marks it fresh.
func (s *IncidenceCacheStub) Set(ctx context.Context, incidences []model.Incidence) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cached = incidences
	s.Fresh = true
	s.Sets++
}

// EventNotifierStub records published order events.
type EventNotifierStub struct {
	Verified []*model.Order
}

// OrderPaymentVerified records the order passed for publication.
func (s *EventNotifierStub) OrderPaymentVerified(order *model.Order) {
	s.Verified = append(s.Verified, order)
}
