package commands

import (
	"errors"
	"maps"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrRecordPackagingCommandIsNotConstructed = errors.New(
	"RecordPackagingCommand must be created via NewRecordPackagingCommand constructor",
)

// RecordPackagingCommand stores the packaging a worker actually used for a collecting
// order. packageByItem optionally maps items to 1-based package numbers.
type RecordPackagingCommand struct {
	orderID       kernel.UUID
	packaging     string
	totalPackages int
	packageByItem map[kernel.UUID]int

	guard guard.ConstructorGuard
}

func NewRecordPackagingCommand(
	orderID kernel.UUID,
	packaging string,
	totalPackages int,
	packageByItem map[kernel.UUID]int,
) (RecordPackagingCommand, error) {
	var packagingErr, totalErr error
	if packaging == "" {
		packagingErr = errs.NewValueIsRequiredError("packaging")
	}
	if totalPackages < 1 {
		totalErr = errs.NewValueIsOutOfRangeError("total packages", totalPackages, 1, "unbounded")
	}
	if err := errors.Join(orderID.Validate(), packagingErr, totalErr); err != nil {
		return RecordPackagingCommand{}, err
	}

	return RecordPackagingCommand{
		orderID:       orderID,
		packaging:     packaging,
		totalPackages: totalPackages,
		packageByItem: maps.Clone(packageByItem),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPackagingCommand) Validate() error {
	return c.guard.Validate(ErrRecordPackagingCommandIsNotConstructed)
}

func (c RecordPackagingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordPackagingCommand) Packaging() string {
	return c.packaging
}

func (c RecordPackagingCommand) TotalPackages() int {
	return c.totalPackages
}

func (c RecordPackagingCommand) PackageByItem() map[kernel.UUID]int {
	return maps.Clone(c.packageByItem)
}
