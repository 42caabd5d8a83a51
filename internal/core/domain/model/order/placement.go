package order

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
)

// Placement records that quantity units of an order's item physically sit in a cell.
type Placement struct {
	id       kernel.UUID
	cellID   kernel.UUID
	itemID   kernel.UUID
	quantity int
}

// PlacementRequest is one (item, quantity) pair submitted to Order.PlaceItems.
type PlacementRequest struct {
	ItemID   kernel.UUID
	Quantity int
}

// RestorePlacement rebuilds a placement read from persistence.
func RestorePlacement(id, cellID, itemID kernel.UUID, quantity int) (*Placement, error) {
	if err := errors.Join(
		id.Validate(),
		cellID.Validate(),
		itemID.Validate(),
		validatePositive("quantity", quantity),
	); err != nil {
		return nil, err
	}
	return &Placement{id: id, cellID: cellID, itemID: itemID, quantity: quantity}, nil
}

func (p *Placement) ID() kernel.UUID {
	return p.id
}

func (p *Placement) CellID() kernel.UUID {
	return p.cellID
}

func (p *Placement) ItemID() kernel.UUID {
	return p.itemID
}

func (p *Placement) Quantity() int {
	return p.quantity
}
