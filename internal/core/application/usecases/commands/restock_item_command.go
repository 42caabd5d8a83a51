package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrRestockItemCommandIsNotConstructed = errors.New(
	"RestockItemCommand must be created via NewRestockItemCommand constructor",
)

// RestockItemCommand returns quantity units to an item's available stock.
type RestockItemCommand struct {
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

func NewRestockItemCommand(itemID kernel.UUID, quantity int) (RestockItemCommand, error) {
	var quantityErr error
	if quantity < 1 || quantity > item.MaxQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, item.MaxQuantity)
	}
	if err := errors.Join(itemID.Validate(), quantityErr); err != nil {
		return RestockItemCommand{}, err
	}

	return RestockItemCommand{
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RestockItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockItemCommandIsNotConstructed)
}

func (c RestockItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c RestockItemCommand) Quantity() int {
	return c.quantity
}
