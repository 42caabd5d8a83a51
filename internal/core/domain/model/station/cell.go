package station

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
)

var ErrCellIsNotConstructed = errors.New("Cell must be created via NewCell constructor")

// Cell is a storage slot that travels between tables. The pair (name, table) is unique.
type Cell struct {
	id      kernel.UUID
	name    string
	tableID *kernel.UUID

	isConstructed bool
}

// NewCell creates a cell, optionally attached to a table.
func NewCell(id kernel.UUID, name string, tableID *kernel.UUID) (*Cell, error) {
	c := &Cell{isConstructed: true}

	var tableErr error
	if tableID != nil {
		tableErr = tableID.Validate()
	}
	if err := errors.Join(id.Validate(), c.setName(name), tableErr); err != nil {
		return nil, err
	}

	c.id = id
	if tableID != nil {
		t := *tableID
		c.tableID = &t
	}
	return c, nil
}

// RestoreCell rebuilds a cell read from persistence.
func RestoreCell(id kernel.UUID, name string, tableID *kernel.UUID) (*Cell, error) {
	return NewCell(id, name, tableID)
}

func (c *Cell) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCellIsNotConstructed
	}
	return nil
}

func (c *Cell) ID() kernel.UUID {
	return c.id
}

func (c *Cell) Name() string {
	return c.name
}

// Table returns the table the cell is attached to, or nil.
func (c *Cell) Table() *kernel.UUID {
	if c.tableID == nil {
		return nil
	}
	t := *c.tableID
	return &t
}

// IsAt reports whether the cell currently belongs to tableID.
func (c *Cell) IsAt(tableID kernel.UUID) bool {
	return c.tableID != nil && c.tableID.IsEqual(tableID)
}

// MoveTo attaches the cell to table, detaching it from any previous one.
func (c *Cell) MoveTo(table *Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	id := table.ID()
	c.tableID = &id
	return nil
}

func (c *Cell) setName(name string) error {
	normalized, err := normalizeName(name)
	if err != nil {
		return err
	}
	c.name = normalized
	return nil
}
