package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrPlaceItemsCommandIsNotConstructed = errors.New(
	"PlaceItemsCommand must be created via NewPlaceItemsCommand constructor",
)

// PlaceItemsCommand records that items of an order were put into a cell standing at a table.
type PlaceItemsCommand struct {
	cellID  kernel.UUID
	tableID kernel.UUID
	orderID kernel.UUID
	items   []order.PlacementRequest

	guard guard.ConstructorGuard
}

func NewPlaceItemsCommand(
	cellID, tableID, orderID kernel.UUID,
	items []order.PlacementRequest,
) (PlaceItemsCommand, error) {
	var itemsErr error
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	if err := errors.Join(cellID.Validate(), tableID.Validate(), orderID.Validate(), itemsErr); err != nil {
		return PlaceItemsCommand{}, err
	}

	return PlaceItemsCommand{
		cellID:  cellID,
		tableID: tableID,
		orderID: orderID,
		items:   append([]order.PlacementRequest(nil), items...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceItemsCommand) Validate() error {
	return c.guard.Validate(ErrPlaceItemsCommandIsNotConstructed)
}

func (c PlaceItemsCommand) CellID() kernel.UUID {
	return c.cellID
}

func (c PlaceItemsCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c PlaceItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceItemsCommand) Items() []order.PlacementRequest {
	return append([]order.PlacementRequest(nil), c.items...)
}
