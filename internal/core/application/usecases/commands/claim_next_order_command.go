package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrClaimNextOrderCommandIsNotConstructed = errors.New(
	"ClaimNextOrderCommand must be created via NewClaimNextOrderCommand constructor",
)

// ClaimNextOrderCommand asks for the oldest forming order whose items sit in cells of
// the given table, on behalf of a worker.
type ClaimNextOrderCommand struct {
	tableID  kernel.UUID
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimNextOrderCommand(tableID, workerID kernel.UUID) (ClaimNextOrderCommand, error) {
	if err := errors.Join(tableID.Validate(), workerID.Validate()); err != nil {
		return ClaimNextOrderCommand{}, err
	}

	return ClaimNextOrderCommand{
		tableID:  tableID,
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimNextOrderCommandIsNotConstructed)
}

func (c ClaimNextOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c ClaimNextOrderCommand) WorkerID() kernel.UUID {
	return c.workerID
}
