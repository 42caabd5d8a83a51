package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// MaxPackagingCodeLength mirrors the packaging columns of the orders table.
const MaxPackagingCodeLength = 32

// Order is the aggregate root of the picking flow. It owns the reserved lines, the cell
// placements made while the order is being formed and the packaging outcome.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a creation time
//   - Lines are only added while Forming and never change quantity afterwards
//   - An item appears in at most one line
//   - The quantity placed into cells per item never exceeds the reserved quantity
//   - Forming orders have no worker, Collecting and Collected orders have exactly one
//   - Status transitions follow Status.Claim and Status.Collect
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id        kernel.UUID
	createdAt time.Time
	status    Status

	// workerID is the picker that claimed the order (nil while Forming)
	workerID *kernel.UUID

	// recommendedPackaging comes from the packaging optimizer and may stay nil forever
	recommendedPackaging *string

	// selectedPackaging and totalPackages are recorded by the picker while packing
	selectedPackaging *string
	totalPackages     *int

	lines      []*Line
	placements []*Placement

	events []Event

	isConstructed bool
}

// NewOrder creates an empty Forming order. Lines are attached with AddLine while the
// stock for them is being reserved.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    return err
//	}
//	if err := o.AddLine(kernel.NewUUID(), itemID, 3); err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Forming,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.record(EventOrderCreated)
	return o, nil
}

// RestoreOrder rebuilds an Order from persistence, re-checking the invariants that span
// several fields (status against worker, placements against lines).
func RestoreOrder(
	id kernel.UUID,
	createdAt time.Time,
	status Status,
	workerID *kernel.UUID,
	recommendedPackaging *string,
	selectedPackaging *string,
	totalPackages *int,
	lines []*Line,
	placements []*Placement,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCreatedAt(createdAt),
		status.Validate(),
		status.ValidateCanHaveWorker(workerID != nil),
	); err != nil {
		return nil, err
	}
	o.status = status

	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
		w := *workerID
		o.workerID = &w
	}
	o.recommendedPackaging = clonePtr(recommendedPackaging)
	o.selectedPackaging = clonePtr(selectedPackaging)
	o.totalPackages = clonePtr(totalPackages)

	for _, l := range lines {
		if l == nil {
			return nil, errs.NewValueIsRequiredError("line")
		}
		if o.lineFor(l.itemID) != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"line is invalid",
				fmt.Errorf("item %s appears in more than one line", l.itemID),
			)
		}
		o.lines = append(o.lines, l)
	}

	placed := make(map[kernel.UUID]int)
	for _, p := range placements {
		if p == nil {
			return nil, errs.NewValueIsRequiredError("placement")
		}
		placed[p.itemID] += p.quantity
		if err := o.validatePlacedWithinReserved(p.itemID, placed[p.itemID]); err != nil {
			return nil, err
		}
		o.placements = append(o.placements, p)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt is the queue position: the picking queue serves the oldest order first.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// Worker returns the picker that claimed the order, or nil while Forming.
func (o *Order) Worker() *kernel.UUID {
	return clonePtr(o.workerID)
}

func (o *Order) RecommendedPackaging() *string {
	return clonePtr(o.recommendedPackaging)
}

func (o *Order) SelectedPackaging() *string {
	return clonePtr(o.selectedPackaging)
}

func (o *Order) TotalPackages() *int {
	return clonePtr(o.totalPackages)
}

// Lines returns the order lines in insertion order.
func (o *Order) Lines() []*Line {
	return slices.Clone(o.lines)
}

func (o *Order) Placements() []*Placement {
	return slices.Clone(o.placements)
}

// CellIDs returns the distinct cells holding items of the order, sorted.
func (o *Order) CellIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.placements))
	for _, p := range o.placements {
		ids = append(ids, p.cellID)
	}
	slices.SortFunc(ids, kernel.UUID.Compare)
	return slices.CompactFunc(ids, kernel.UUID.IsEqual)
}

// ReservedQuantity returns the quantity reserved for itemID, 0 when the item is not ordered.
func (o *Order) ReservedQuantity(itemID kernel.UUID) int {
	if l := o.lineFor(itemID); l != nil {
		return l.quantity
	}
	return 0
}

// PlacedQuantity returns how many units of itemID already sit in cells.
func (o *Order) PlacedQuantity(itemID kernel.UUID) int {
	total := 0
	for _, p := range o.placements {
		if p.itemID.IsEqual(itemID) {
			total += p.quantity
		}
	}
	return total
}

// AddLine attaches a reserved (item, quantity) pair. The caller must already hold the
// stock reservation for it; see services.StockReserver.
func (o *Order) AddLine(lineID, itemID kernel.UUID, quantity int) error {
	if o.status != Forming {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), o.status.String(),
			fmt.Errorf("lines cannot be added to a %s order", o.status),
		)
	}
	if o.lineFor(itemID) != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"line is invalid",
			fmt.Errorf("item %s is already in the order", itemID),
		)
	}

	l, err := newLine(lineID, itemID, quantity)
	if err != nil {
		return err
	}

	o.lines = append(o.lines, l)
	return nil
}

// Claim hands the order to a picker: Forming -> Collecting.
func (o *Order) Claim(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.workerID = &workerID
	o.record(EventOrderClaimed)
	return nil
}

// MarkCollected finishes the order: Collecting -> Collected.
// Any other starting status returns an InvalidTransitionError and leaves the order unchanged.
func (o *Order) MarkCollected() error {
	newStatus, err := o.status.Collect()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.record(EventOrderCollected)
	return nil
}

// PlaceItems records that the requested items were put into cellID.
//
// The whole batch is validated before anything is recorded:
//   - the order must still accept placements (not Collected)
//   - every item must be one of the order's lines
//   - quantities must be in [1..item.MaxQuantity]
//   - per item, already placed plus requested must not exceed the reserved quantity
//
// On error no placement is recorded.
func (o *Order) PlaceItems(cellID kernel.UUID, newPlacementID func() kernel.UUID, items []PlacementRequest) ([]*Placement, error) {
	if err := o.status.ValidateAcceptsPlacements(); err != nil {
		return nil, err
	}
	if err := cellID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	requested := make(map[kernel.UUID]int, len(items))
	var validationErrs []error
	for _, it := range items {
		if it.Quantity < 1 || it.Quantity > item.MaxQuantity {
			validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("quantity", it.Quantity, 1, item.MaxQuantity))
			continue
		}
		if o.lineFor(it.ItemID) == nil {
			validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause(
				"item is invalid",
				fmt.Errorf("item %s is not part of order %s", it.ItemID, o.id),
			))
			continue
		}
		requested[it.ItemID] += it.Quantity
	}
	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}

	for itemID, q := range requested {
		if err := o.validatePlacedWithinReserved(itemID, o.PlacedQuantity(itemID)+q); err != nil {
			return nil, err
		}
	}

	created := make([]*Placement, 0, len(items))
	for _, it := range items {
		p, err := RestorePlacement(newPlacementID(), cellID, it.ItemID, it.Quantity)
		if err != nil {
			return nil, err
		}
		created = append(created, p)
	}

	o.placements = append(o.placements, created...)
	return created, nil
}

// RecommendPackaging stores the packaging suggested by the optimizer. It is accepted until
// the order is collected; a later recommendation overwrites an earlier one.
func (o *Order) RecommendPackaging(packaging string) error {
	if o.status == Collected {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), o.status.String(),
			errors.New("packaging recommendation arrived after collection"),
		)
	}

	code, err := normalizePackagingCode("recommended packaging", packaging)
	if err != nil {
		return err
	}

	o.recommendedPackaging = &code
	return nil
}

// RecordPackaging stores what the picker actually used while Collecting: the packaging
// code, the number of packages and, optionally, the package number of individual lines
// keyed by item. Package numbers are 1-based and cannot exceed totalPackages.
func (o *Order) RecordPackaging(packaging string, totalPackages int, packageByItem map[kernel.UUID]int) error {
	if o.status != Collecting {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), o.status.String(),
			fmt.Errorf("packaging can only be recorded while %s", Collecting),
		)
	}

	code, err := normalizePackagingCode("selected packaging", packaging)
	if err != nil {
		return err
	}
	if err = validatePositive("total packages", totalPackages); err != nil {
		return err
	}

	for itemID, n := range packageByItem {
		if o.lineFor(itemID) == nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"item is invalid",
				fmt.Errorf("item %s is not part of order %s", itemID, o.id),
			)
		}
		if n < 1 || n > totalPackages {
			return errs.NewValueIsOutOfRangeError("package number", n, 1, totalPackages)
		}
	}

	for itemID, n := range packageByItem {
		pkg := n
		o.lineFor(itemID).packageNumber = &pkg
	}
	o.selectedPackaging = &code
	o.totalPackages = &totalPackages
	return nil
}

func (o *Order) lineFor(itemID kernel.UUID) *Line {
	for _, l := range o.lines {
		if l.itemID.IsEqual(itemID) {
			return l
		}
	}
	return nil
}

func (o *Order) validatePlacedWithinReserved(itemID kernel.UUID, placed int) error {
	reserved := o.ReservedQuantity(itemID)
	if reserved == 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item is invalid",
			fmt.Errorf("item %s is not part of order %s", itemID, o.id),
		)
	}
	if placed > reserved {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"placed quantity", placed, 1, reserved,
			fmt.Errorf("item %s would exceed its reserved quantity", itemID),
		)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

func normalizePackagingCode(name, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errs.NewValueIsRequiredError(name)
	}
	if len(code) > MaxPackagingCodeLength {
		return "", errs.NewValueIsOutOfRangeError(name+" length", len(code), 1, MaxPackagingCodeLength)
	}
	return code, nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
