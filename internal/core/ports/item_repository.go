// Package ports defines the contracts between the warehouse core and its infrastructure:
// repositories bound to a unit of work, the packaging optimizer and the event publisher.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for the inventory ledger.
type ItemRepository interface {
	// Add persists a new item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists the item's current state, including its available quantity.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item without locking it.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetForUpdate retrieves an item and holds an exclusive row lock on it until the
	// surrounding transaction ends. Concurrent callers for the same id block.
	//
	// Callers locking several items must do so in kernel.UUID.Compare order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error)
}
