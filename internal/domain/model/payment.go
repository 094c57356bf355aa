package model

import "time"

// ProofStatus describes review state of an uploaded payment proof.
type ProofStatus string

const (
	ProofStatusPending  ProofStatus = "pending"
	ProofStatusApproved ProofStatus = "approved"
	ProofStatusRejected ProofStatus = "rejected"
)

// PaymentProof is evidence of payment uploaded by the buyer. Resolving it
// drives the owning order's lifecycle.
type PaymentProof struct {
	ID         int64
	OrderID    int64
	Status     ProofStatus
	FileKey    string
	AdminNotes string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
