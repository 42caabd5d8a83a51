package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrMarkCollectedCommandIsNotConstructed = errors.New(
	"MarkCollectedCommand must be created via NewMarkCollectedCommand constructor",
)

// MarkCollectedCommand finishes a collecting order.
type MarkCollectedCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkCollectedCommand(orderID kernel.UUID) (MarkCollectedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkCollectedCommand{}, err
	}

	return MarkCollectedCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkCollectedCommand) Validate() error {
	return c.guard.Validate(ErrMarkCollectedCommandIsNotConstructed)
}

func (c MarkCollectedCommand) OrderID() kernel.UUID {
	return c.orderID
}
