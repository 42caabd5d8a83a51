package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand registers a picking table.
type CreateTableCommand struct {
	table *station.Table

	guard guard.ConstructorGuard
}

func NewCreateTableCommand(tableID kernel.UUID, name, description string) (CreateTableCommand, error) {
	t, err := station.NewTable(tableID, name, description)
	if err != nil {
		return CreateTableCommand{}, err
	}

	return CreateTableCommand{table: t, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

func (c CreateTableCommand) TableID() kernel.UUID {
	return c.table.ID()
}
