package repository

import (
	"context"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
)

// ProductRepository describes read access to the catalog.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	// ListReconcilable returns active products with available stock, the set
	// the reconciler compares against the remote inventory.
	ListReconcilable(ctx context.Context) ([]model.Product, error)
}
