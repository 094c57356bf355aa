package dto

import "time"

// UploadProofRequest describes payment evidence upload payload. FileKey
// references an already-stored object, not the file content itself.
type UploadProofRequest struct {
	OrderID int64  `json:"order_id"`
	FileKey string `json:"file_key"`
}

// RejectProofRequest carries the reviewer's reason for declining.
type RejectProofRequest struct {
	Notes string `json:"notes"`
}

// ProofResponse describes an uploaded payment proof.
type ProofResponse struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	FileKey    string    `json:"file_key"`
	AdminNotes string    `json:"admin_notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
