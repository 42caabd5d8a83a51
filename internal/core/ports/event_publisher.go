package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// EventPublisher delivers order lifecycle events to downstream consumers.
// It is called after the transaction that produced the events has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
