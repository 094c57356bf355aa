package usecase

import (
	"context"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// PaymentUseCase manages payment proof review and its effect on the order
// lifecycle.
type PaymentUseCase struct {
	proofs repository.PaymentProofRepository
	orders repository.OrderRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(proofs repository.PaymentProofRepository, orders repository.OrderRepository) *PaymentUseCase {
	return &PaymentUseCase{proofs: proofs, orders: orders}
}

// Upload registers payment evidence for the buyer's own order and moves it
// to payment_uploaded.
func (u *PaymentUseCase) Upload(ctx context.Context, userID, orderID int64, fileKey string) (*model.PaymentProof, error) {
	if fileKey == "" {
		return nil, domainErrors.ErrMissingFileKey
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotOrderOwner
	}
	return u.proofs.Create(ctx, orderID, fileKey)
}

// Approve verifies the payment and confirms the order's stock hold.
// The returned order lets the caller fire post-commit notifications.
func (u *PaymentUseCase) Approve(ctx context.Context, proofID int64) (*model.Order, error) {
	return u.proofs.Resolve(ctx, proofID, true, "")
}

// Reject declines the payment evidence and releases the order's hold.
func (u *PaymentUseCase) Reject(ctx context.Context, proofID int64, notes string) (*model.Order, error) {
	return u.proofs.Resolve(ctx, proofID, false, notes)
}

// Proof fetches an uploaded proof by id.
func (u *PaymentUseCase) Proof(ctx context.Context, proofID int64) (*model.PaymentProof, error) {
	return u.proofs.GetByID(ctx, proofID)
}
