package order

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Line is one reserved (item, quantity) pair of an order. The quantity is fixed at
// reservation time; only the package number can be recorded later, while packing.
type Line struct {
	id            kernel.UUID
	itemID        kernel.UUID
	quantity      int
	packageNumber *int
}

func newLine(id, itemID kernel.UUID, quantity int) (*Line, error) {
	l := &Line{}
	if err := errors.Join(id.Validate(), itemID.Validate(), validatePositive("quantity", quantity)); err != nil {
		return nil, err
	}
	l.id = id
	l.itemID = itemID
	l.quantity = quantity
	return l, nil
}

// RestoreLine rebuilds a line read from persistence.
func RestoreLine(id, itemID kernel.UUID, quantity int, packageNumber *int) (*Line, error) {
	l, err := newLine(id, itemID, quantity)
	if err != nil {
		return nil, err
	}
	if packageNumber != nil {
		if err = validatePositive("package number", *packageNumber); err != nil {
			return nil, err
		}
		n := *packageNumber
		l.packageNumber = &n
	}
	return l, nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) ItemID() kernel.UUID {
	return l.itemID
}

func (l *Line) Quantity() int {
	return l.quantity
}

// PackageNumber returns the 1-based package the line was packed into, or nil.
func (l *Line) PackageNumber() *int {
	if l.packageNumber == nil {
		return nil
	}
	n := *l.packageNumber
	return &n
}

func validatePositive(name string, value int) error {
	if value < 1 {
		return errs.NewValueIsOutOfRangeError(name, value, 1, "unbounded")
	}
	return nil
}
