package ports

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
)

// ErrNoRecommendation means the optimizer could not produce a packaging type: it is
// unreachable, timed out, failed or answered without one. It is never fatal.
var ErrNoRecommendation = errors.New("no packaging recommendation")

// PackagingItem describes one order line as the optimizer sees it.
type PackagingItem struct {
	ItemID     kernel.UUID
	Quantity   int
	Dimensions kernel.Dimensions
	Weight     float64
	CargoTypes []item.CargoType
}

// PackagingOptimizer is the black-box service recommending a packaging type for an order.
type PackagingOptimizer interface {
	// Recommend returns the packaging type code or an error wrapping ErrNoRecommendation.
	Recommend(ctx context.Context, orderID kernel.UUID, items []PackagingItem) (string, error)
}
