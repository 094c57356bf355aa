package repository

import "context"

// StockLedger exposes atomic mutations of a product's (available, reserved)
// pair. Every operation locks the product row before reading the counters
// and holds the lock until the write commits.
type StockLedger interface {
	// Reserve moves qty units from available to reserved. Returns
	// InsufficientStockError when available < qty, checked after the row
	// lock is acquired.
	Reserve(ctx context.Context, productID int64, qty int) error
	// Confirm clears up to qty reserved units after payment verification.
	// Available is untouched; it was decremented at reservation time.
	Confirm(ctx context.Context, productID int64, qty int) error
	// Release returns up to qty reserved units to available. The clamp to
	// the current reserved count makes duplicate invocations harmless.
	Release(ctx context.Context, productID int64, qty int) error
	// Reconcile lowers available toward the remote authoritative value.
	// It never raises it.
	Reconcile(ctx context.Context, productID int64, remoteAvailable int) error
}
