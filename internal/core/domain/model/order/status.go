package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Forming ──(claimed by a picker)──> Collecting ──(marked collected)──> Collected
//
// No transition skips a state and no transition goes backwards.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Forming is the initial status: stock is reserved and items are being placed into cells.
	Forming

	// Collecting means a picker claimed the order and is packing it.
	Collecting

	// Collected is final.
	Collected
)

var statusNames = map[Status]string{
	Unknown:    "unknown",
	Forming:    "forming",
	Collecting: "collecting",
	Collected:  "collected",
}

// ParseStatus maps the persisted name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate accepts Forming, Collecting and Collected.
func (s Status) Validate() error {
	if s != Forming && s != Collecting && s != Collected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name stored in the orders.status column.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// Claim transitions Forming -> Collecting.
func (s Status) Claim() (Status, error) {
	if s != Forming {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Collecting.String())
	}
	return Collecting, nil
}

// Collect transitions Collecting -> Collected.
// A second call on an already collected order is rejected, not ignored.
func (s Status) Collect() (Status, error) {
	if s != Collecting {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Collected.String())
	}
	return Collected, nil
}

// ValidateAcceptsPlacements rejects placements once the order is collected.
func (s Status) ValidateAcceptsPlacements() error {
	if s != Forming && s != Collecting {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(), s.String(),
			fmt.Errorf("%s order does not accept cell placements", s),
		)
	}
	return nil
}

// ValidateCanHaveWorker checks status and worker assignment agree:
// a forming order has no worker, collecting and collected orders have one.
func (s Status) ValidateCanHaveWorker(hasWorker bool) error {
	if hasWorker && s == Forming {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a worker", s),
		)
	}
	if !hasWorker && (s == Collecting || s == Collected) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no worker", s),
		)
	}
	return nil
}
