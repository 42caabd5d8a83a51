package item

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

const (
	// MaxNameLength mirrors the items.name column size.
	MaxNameLength = 255
	// MaxQuantity bounds both stock and single reservations so sums stay in int32 range.
	MaxQuantity = math.MaxInt32
)

// Item is a stock-keeping unit held in the warehouse. It is the aggregate root of the
// inventory ledger: the available quantity is the only mutable state and it only changes
// through Reserve and Release.
//
// Item follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Dimensions must be valid and weight must be positive
//   - Available quantity is in [0..MaxQuantity]
//
// Example:
//
//	dims, _ := kernel.NewDimensions(300, 200, 100)
//	it, err := item.NewItem(kernel.NewUUID(), "Kettle", dims, 1.2, 10, []item.CargoType{item.CargoFragile})
//	if err != nil {
//	    return err
//	}
//	if err := it.Reserve(3); err != nil {
//	    // errs.ErrInsufficientStock or a validation error; it is unchanged
//	}
type Item struct {
	id                kernel.UUID
	name              string
	dimensions        kernel.Dimensions
	weight            float64
	availableQuantity int
	cargoTypes        []CargoType

	isConstructed bool
}

// NewItem registers a new stock-keeping unit with its initial available quantity.
// All validation errors are joined.
func NewItem(
	id kernel.UUID,
	name string,
	dimensions kernel.Dimensions,
	weight float64,
	availableQuantity int,
	cargoTypes []CargoType,
) (*Item, error) {
	it := &Item{isConstructed: true}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setDimensions(dimensions),
		it.setWeight(weight),
		it.setAvailableQuantity(availableQuantity),
		it.setCargoTypes(cargoTypes),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem rebuilds an Item from persistence. It applies the same validation as NewItem,
// so a row that violates the invariants is reported instead of silently loaded.
func RestoreItem(
	id kernel.UUID,
	name string,
	dimensions kernel.Dimensions,
	weight float64,
	availableQuantity int,
	cargoTypes []CargoType,
) (*Item, error) {
	return NewItem(id, name, dimensions, weight, availableQuantity, cargoTypes)
}

// Validate ensures the item was built by a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Dimensions() kernel.Dimensions {
	return i.dimensions
}

// Weight returns the weight of a single unit in kilograms.
func (i *Item) Weight() float64 {
	return i.weight
}

func (i *Item) AvailableQuantity() int {
	return i.availableQuantity
}

// CargoTypes returns a copy of the item's sorted, de-duplicated tags.
func (i *Item) CargoTypes() []CargoType {
	return slices.Clone(i.cargoTypes)
}

// HasCargoType reports whether the item carries the given tag.
func (i *Item) HasCargoType(c CargoType) bool {
	_, found := slices.BinarySearch(i.cargoTypes, c)
	return found
}

// CanReserve reports whether quantity could be reserved right now without changing anything.
func (i *Item) CanReserve(quantity int) (bool, error) {
	if err := validateQuantity(quantity); err != nil {
		return false, err
	}
	return quantity <= i.availableQuantity, nil
}

// Reserve decrements the available quantity by quantity.
//
// Returns errs.InsufficientStockError when quantity exceeds the available stock and a
// ValueIsOutOfRangeError when quantity is not positive. On error the item is unchanged.
func (i *Item) Reserve(quantity int) error {
	ok, err := i.CanReserve(quantity)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewInsufficientStockError(i.id.String(), quantity, i.availableQuantity)
	}

	i.availableQuantity -= quantity
	return nil
}

// Release returns quantity to the available stock (restock or cancelled reservation).
func (i *Item) Release(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if quantity > MaxQuantity-i.availableQuantity {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 1, MaxQuantity-i.availableQuantity,
			fmt.Errorf("available quantity would exceed %d", MaxQuantity),
		)
	}

	i.availableQuantity += quantity
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, MaxNameLength)
	}
	i.name = name
	return nil
}

func (i *Item) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	i.dimensions = dimensions
	return nil
}

func (i *Item) setWeight(weight float64) error {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%v is not greater than 0", weight))
	}
	i.weight = weight
	return nil
}

func (i *Item) setAvailableQuantity(quantity int) error {
	if quantity < 0 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("available quantity", quantity, 0, MaxQuantity)
	}
	i.availableQuantity = quantity
	return nil
}

func (i *Item) setCargoTypes(tags []CargoType) error {
	normalized, err := normalizeCargoTypes(tags)
	if err != nil {
		return err
	}
	i.cargoTypes = normalized
	return nil
}
