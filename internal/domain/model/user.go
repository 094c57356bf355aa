package model

import "time"

// User represents a registered storefront customer. Admin users additionally
// operate the back-office endpoints.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
}
