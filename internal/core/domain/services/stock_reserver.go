package services

import (
	"errors"
	"slices"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// ErrNoLines is returned when an order is requested without any line.
var ErrNoLines = errs.NewValueIsRequiredError("lines")

// LineRequest is one requested (item, quantity) pair of a new order.
type LineRequest struct {
	ItemID   kernel.UUID
	Quantity int
}

// MergeLineRequests validates the requested lines, merges duplicated items by summing
// their quantities and returns them sorted by item id. The sorted order is the order in
// which item rows must be locked.
func MergeLineRequests(requests []LineRequest) ([]LineRequest, error) {
	if len(requests) == 0 {
		return nil, ErrNoLines
	}

	merged := make(map[kernel.UUID]int, len(requests))
	var validationErrs []error
	for _, r := range requests {
		if err := r.ItemID.Validate(); err != nil {
			validationErrs = append(validationErrs, err)
			continue
		}
		if r.Quantity < 1 || r.Quantity > item.MaxQuantity {
			validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("quantity", r.Quantity, 1, item.MaxQuantity))
			continue
		}
		merged[r.ItemID] += r.Quantity
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	result := make([]LineRequest, 0, len(merged))
	for id, q := range merged {
		if q > item.MaxQuantity {
			return nil, errs.NewValueIsOutOfRangeError("quantity", q, 1, item.MaxQuantity)
		}
		result = append(result, LineRequest{ItemID: id, Quantity: q})
	}
	slices.SortFunc(result, func(a, b LineRequest) int {
		return a.ItemID.Compare(b.ItemID)
	})

	return result, nil
}

// StockReserver applies a reservation to items that the caller already holds exclusive
// locks on.
//
// Business rules:
//   - Every requested item must be among the locked items
//   - Every line is checked before any stock is touched
//   - The first failing line, in item id order, aborts the whole reservation
//
// Example usage:
//
//	lines, err := services.MergeLineRequests(requests)
//	// lock items in lines order, then
//	err = services.NewStockReserver().Reserve(o, lockedItems, lines, kernel.NewUUID)
type StockReserver struct{}

func NewStockReserver() StockReserver {
	return StockReserver{}
}

// Reserve decrements stock on items and adds one order line per request. lines must come
// from MergeLineRequests. On error neither items nor the order are modified.
func (StockReserver) Reserve(
	o *order.Order,
	items []*item.Item,
	lines []LineRequest,
	newLineID func() kernel.UUID,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrNoLines
	}

	byID := make(map[kernel.UUID]*item.Item, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		byID[it.ID()] = it
	}

	for _, l := range lines {
		it, ok := byID[l.ItemID]
		if !ok {
			return errs.NewObjectNotFoundError("itemID", l.ItemID)
		}
		ok, err := it.CanReserve(l.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return errs.NewInsufficientStockError(it.ID().String(), l.Quantity, it.AvailableQuantity())
		}
	}

	for _, l := range lines {
		if err := byID[l.ItemID].Reserve(l.Quantity); err != nil {
			return err
		}
		if err := o.AddLine(newLineID(), l.ItemID, l.Quantity); err != nil {
			return err
		}
	}

	return nil
}
