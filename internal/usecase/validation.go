package usecase

import (
	"sort"

	domainErrors "github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/errors"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
)

// NormalizeItems validates requested order lines and merges duplicate
// product references, so each product row is locked exactly once during
// reservation. The result is sorted by ascending product id.
func NormalizeItems(items []repository.NewOrderItem) ([]repository.NewOrderItem, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	merged := make(map[int64]int, len(items))
	for _, item := range items {
		if item.Quantity <= 0 || item.ProductID <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		merged[item.ProductID] += item.Quantity
	}

	result := make([]repository.NewOrderItem, 0, len(merged))
	for productID, qty := range merged {
		result = append(result, repository.NewOrderItem{ProductID: productID, Quantity: qty})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })
	return result, nil
}
