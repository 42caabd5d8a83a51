package order

import (
	"slices"

	"warehouse/internal/core/domain/model/kernel"
)

// EventType names an order lifecycle event. The value is the message type on the wire.
type EventType string

const (
	EventOrderCreated   EventType = "OrderCreated"
	EventOrderClaimed   EventType = "OrderClaimed"
	EventOrderCollected EventType = "OrderCollected"
)

// Event is recorded by the aggregate when its lifecycle changes and handed out once
// through PullEvents.
type Event struct {
	Type     EventType
	OrderID  kernel.UUID
	Status   Status
	WorkerID *kernel.UUID
}

// PullEvents returns the events recorded since the last call and forgets them.
func (o *Order) PullEvents() []Event {
	events := slices.Clone(o.events)
	o.events = nil
	return events
}

func (o *Order) record(t EventType) {
	o.events = append(o.events, Event{
		Type:     t,
		OrderID:  o.id,
		Status:   o.status,
		WorkerID: clonePtr(o.workerID),
	})
}
