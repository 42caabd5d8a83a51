package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand requests a new order reserving stock for every line.
// Duplicated items are merged and the lines are kept sorted by item id, which is the
// order the handler locks the item rows in.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), []services.LineRequest{
//	    {ItemID: kettleID, Quantity: 2},
//	    {ItemID: mugID, Quantity: 4},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct {
	orderID kernel.UUID
	lines   []services.LineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order id and every line. All validation errors are joined.
func NewCreateOrderCommand(orderID kernel.UUID, lines []services.LineRequest) (CreateOrderCommand, error) {
	merged, linesErr := services.MergeLineRequests(lines)
	if err := errors.Join(orderID.Validate(), linesErr); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID: orderID,
		lines:   merged,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns the merged lines sorted by item id.
func (c CreateOrderCommand) Lines() []services.LineRequest {
	out := make([]services.LineRequest, len(c.lines))
	copy(out, c.lines)
	return out
}
