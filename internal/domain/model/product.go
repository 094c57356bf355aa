package model

import "time"

// Product is a sellable catalog item with its stock counters.
// Available and Reserved are maintained exclusively by the stock ledger:
// Available is what can be sold right now, Reserved is held against orders
// that are not yet confirmed or released.
type Product struct {
	ID         int64
	SKU        string
	Name       string
	PriceCents int64
	Available  int
	Reserved   int
	Active     bool
	UpdatedAt  time.Time
}
