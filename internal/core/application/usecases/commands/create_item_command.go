package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand registers a stock-keeping unit with its initial available quantity.
//
// Example:
//
//	dims, _ := kernel.NewDimensions(300, 200, 100)
//	cmd, err := NewCreateItemCommand(kernel.NewUUID(), "Kettle", dims, 1.2, 10, nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateItemCommand struct {
	item *item.Item

	guard guard.ConstructorGuard
}

// NewCreateItemCommand validates the item data up front; the handler only persists it.
func NewCreateItemCommand(
	itemID kernel.UUID,
	name string,
	dimensions kernel.Dimensions,
	weight float64,
	quantity int,
	cargoTypes []item.CargoType,
) (CreateItemCommand, error) {
	it, err := item.NewItem(itemID, name, dimensions, weight, quantity, cargoTypes)
	if err != nil {
		return CreateItemCommand{}, err
	}

	return CreateItemCommand{item: it, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.item.ID()
}
