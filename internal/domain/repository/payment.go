package repository

import (
	"context"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
)

// PaymentProofRepository manages uploaded payment evidence.
type PaymentProofRepository interface {
	Create(ctx context.Context, orderID int64, fileKey string) (*model.PaymentProof, error)
	GetByID(ctx context.Context, id int64) (*model.PaymentProof, error)
	// Resolve marks a pending proof approved or rejected and drives the
	// owning order's transition in the same transaction. Returns the order
	// in its new status.
	Resolve(ctx context.Context, proofID int64, approved bool, notes string) (*model.Order, error)
}
