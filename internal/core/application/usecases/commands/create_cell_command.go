package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/guard"
)

var ErrCreateCellCommandIsNotConstructed = errors.New(
	"CreateCellCommand must be created via NewCreateCellCommand constructor",
)

// CreateCellCommand registers a cell, optionally standing at a table from the start.
type CreateCellCommand struct {
	cell *station.Cell

	guard guard.ConstructorGuard
}

func NewCreateCellCommand(cellID kernel.UUID, name string, tableID *kernel.UUID) (CreateCellCommand, error) {
	c, err := station.NewCell(cellID, name, tableID)
	if err != nil {
		return CreateCellCommand{}, err
	}

	return CreateCellCommand{cell: c, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCellCommand) Validate() error {
	return c.guard.Validate(ErrCreateCellCommandIsNotConstructed)
}

func (c CreateCellCommand) CellID() kernel.UUID {
	return c.cell.ID()
}

// TableID is the table the cell starts at, or nil.
func (c CreateCellCommand) TableID() *kernel.UUID {
	return c.cell.Table()
}
