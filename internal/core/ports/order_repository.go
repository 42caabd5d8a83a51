package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates, their lines
// and their cell placements.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, worker, packaging data, line package numbers and any
	// placements not yet stored.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines and placements.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get under an exclusive row lock on the order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListClaimCandidates returns ids of Forming orders that have at least one placement in
	// a cell currently attached to tableID, oldest first with the id as tiebreaker.
	ListClaimCandidates(ctx context.Context, tableID kernel.UUID, limit int) ([]kernel.UUID, error)

	// TryClaim stores a claim made on the aggregate only if the stored order is still
	// Forming. It reports false when another worker won the race.
	TryClaim(ctx context.Context, aggregate *order.Order) (bool, error)

	// ListAwaitingRecommendation returns ids of Forming orders without a recommended
	// packaging, oldest first.
	ListAwaitingRecommendation(ctx context.Context, limit int) ([]kernel.UUID, error)
}
