package station

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1024
)

// Table is a picking station. Names are unique across the warehouse; uniqueness is
// enforced by the tables_name_key constraint.
type Table struct {
	id          kernel.UUID
	name        string
	description string
	available   bool

	isConstructed bool
}

// NewTable creates an available table.
func NewTable(id kernel.UUID, name, description string) (*Table, error) {
	return RestoreTable(id, name, description, true)
}

// RestoreTable rebuilds a table read from persistence.
func RestoreTable(id kernel.UUID, name, description string, available bool) (*Table, error) {
	t := &Table{available: available, isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setDescription(description),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

func (t *Table) ID() kernel.UUID {
	return t.id
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Description() string {
	return t.description
}

// Available reports whether the station is staffed and may claim orders.
func (t *Table) Available() bool {
	return t.available
}

func (t *Table) SetAvailable(available bool) {
	t.available = available
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setName(name string) error {
	normalized, err := normalizeName(name)
	if err != nil {
		return err
	}
	t.name = normalized
	return nil
}

func (t *Table) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 0, MaxDescriptionLength)
	}
	t.description = description
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("name")
	}
	if len(name) > MaxNameLength {
		return "", errs.NewValueIsOutOfRangeError("name length", len(name), 1, MaxNameLength)
	}
	return name, nil
}
