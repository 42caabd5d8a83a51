package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrRecommendPackagingCommandIsNotConstructed = errors.New(
	"RecommendPackagingCommand must be created via NewRecommendPackagingCommand constructor",
)

// RecommendPackagingCommand asks the packaging optimizer for an order's packaging type.
type RecommendPackagingCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecommendPackagingCommand(orderID kernel.UUID) (RecommendPackagingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RecommendPackagingCommand{}, err
	}

	return RecommendPackagingCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c RecommendPackagingCommand) Validate() error {
	return c.guard.Validate(ErrRecommendPackagingCommandIsNotConstructed)
}

func (c RecommendPackagingCommand) OrderID() kernel.UUID {
	return c.orderID
}
