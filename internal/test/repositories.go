package test

import (
	"context"
	"time"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderCreateCall stores information about Create invocations.
type OrderCreateCall struct {
	UserID    int64
	AddressID *int64
	Items     []repository.NewOrderItem
	ExpiresAt time.Time
}

// OrderTransitionCall stores information about Transition invocations.
type OrderTransitionCall struct {
	OrderID int64
	To      model.OrderStatus
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, int64, *int64, []repository.NewOrderItem, time.Time) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64) ([]model.Order, error)
	ListByStatusFn func(context.Context, model.OrderStatus, int) ([]model.Order, error)
	TransitionFn   func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	SweepFn        func(context.Context, time.Time, int) (int, error)

	Orders      []model.Order
	Created     []OrderCreateCall
	Transitions []OrderTransitionCall
	Swept       int
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, userID int64, addressID *int64, items []repository.NewOrderItem, expiresAt time.Time) (*model.Order, error) {
	s.Created = append(s.Created, OrderCreateCall{UserID: userID, AddressID: addressID, Items: items, ExpiresAt: expiresAt})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, addressID, items, expiresAt)
	}
	return &model.Order{ID: 1, UserID: userID, Status: model.OrderStatusPendingPayment, ExpiresAt: expiresAt}, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	for _, o := range s.Orders {
		if o.ID == orderID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from configured slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

// ListByStatus returns orders from configured slice.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus, limit int) ([]model.Order, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status, limit)
	}
	var matched []model.Order
	for _, o := range s.Orders {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// Transition records invocations and applies status to stored orders.
func (s *OrderRepositoryStub) Transition(ctx context.Context, orderID int64, to model.OrderStatus) (*model.Order, error) {
	s.Transitions = append(s.Transitions, OrderTransitionCall{OrderID: orderID, To: to})
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, orderID, to)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = to
			order := s.Orders[i]
			return &order, nil
		}
	}
	return &model.Order{ID: orderID, Status: to}, nil
}

// SweepExpired returns configured sweep count.
func (s *OrderRepositoryStub) SweepExpired(ctx context.Context, now time.Time, limit int) (int, error) {
	if s.SweepFn != nil {
		return s.SweepFn(ctx, now, limit)
	}
	return s.Swept, nil
}

// StockCall stores information about ledger invocations.
type StockCall struct {
	ProductID int64
	Qty       int
}

// StockLedgerStub records ledger operations for tests.
type StockLedgerStub struct {
	ReserveFn   func(context.Context, int64, int) error
	ConfirmFn   func(context.Context, int64, int) error
	ReleaseFn   func(context.Context, int64, int) error
	ReconcileFn func(context.Context, int64, int) error

	Reserved   []StockCall
	Confirmed  []StockCall
	Released   []StockCall
	Reconciled []StockCall
}

// Reserve records the reservation request.
func (s *StockLedgerStub) Reserve(ctx context.Context, productID int64, qty int) error {
	s.Reserved = append(s.Reserved, StockCall{ProductID: productID, Qty: qty})
	if s.ReserveFn != nil {
		return s.ReserveFn(ctx, productID, qty)
	}
	return nil
}

// Confirm records the confirmation request.
func (s *StockLedgerStub) Confirm(ctx context.Context, productID int64, qty int) error {
	s.Confirmed = append(s.Confirmed, StockCall{ProductID: productID, Qty: qty})
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, productID, qty)
	}
	return nil
}

// Release records the release request.
func (s *StockLedgerStub) Release(ctx context.Context, productID int64, qty int) error {
	s.Released = append(s.Released, StockCall{ProductID: productID, Qty: qty})
	if s.ReleaseFn != nil {
		return s.ReleaseFn(ctx, productID, qty)
	}
	return nil
}

// Reconcile records the reconcile request.
func (s *StockLedgerStub) Reconcile(ctx context.Context, productID int64, remoteAvailable int) error {
	s.Reconciled = append(s.Reconciled, StockCall{ProductID: productID, Qty: remoteAvailable})
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, productID, remoteAvailable)
	}
	return nil
}

// ProductRepositoryStub serves products from a configured slice.
type ProductRepositoryStub struct {
	GetByIDFn func(context.Context, int64) (*model.Product, error)
	ListFn    func(context.Context) ([]model.Product, error)
	Products  []model.Product
}

// GetByID returns matched product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListReconcilable returns configured products.
func (s *ProductRepositoryStub) ListReconcilable(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Products, nil
}

// ProofResolveCall stores information about Resolve invocations.
type ProofResolveCall struct {
	ProofID  int64
	Approved bool
	Notes    string
}

// PaymentProofRepositoryStub allows tests to customize proof behaviour.
type PaymentProofRepositoryStub struct {
	CreateFn  func(context.Context, int64, string) (*model.PaymentProof, error)
	GetByIDFn func(context.Context, int64) (*model.PaymentProof, error)
	ResolveFn func(context.Context, int64, bool, string) (*model.Order, error)

	Proofs   []model.PaymentProof
	Resolved []ProofResolveCall
}

// Create returns a pending proof for the order.
func (s *PaymentProofRepositoryStub) Create(ctx context.Context, orderID int64, fileKey string) (*model.PaymentProof, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID, fileKey)
	}
	return &model.PaymentProof{ID: 1, OrderID: orderID, FileKey: fileKey, Status: model.ProofStatusPending}, nil
}

// GetByID returns matched proof or not found.
func (s *PaymentProofRepositoryStub) GetByID(ctx context.Context, proofID int64) (*model.PaymentProof, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, proofID)
	}
	for _, p := range s.Proofs {
		if p.ID == proofID {
			proof := p
			return &proof, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Resolve records the review decision.
func (s *PaymentProofRepositoryStub) Resolve(ctx context.Context, proofID int64, approved bool, notes string) (*model.Order, error) {
	s.Resolved = append(s.Resolved, ProofResolveCall{ProofID: proofID, Approved: approved, Notes: notes})
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, proofID, approved, notes)
	}
	status := model.OrderStatusPaymentVerified
	if !approved {
		status = model.OrderStatusRejected
	}
	return &model.Order{ID: proofID, Status: status}, nil
}
