package kernel

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// MaxSideMillimetres bounds a single side of an item. Anything larger is not a parcel.
const MaxSideMillimetres = 10_000

// ErrDimensionsIsNotConstructed is returned when a zero-value Dimensions is used.
var ErrDimensionsIsNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")

// Dimensions is the physical box of an item in millimetres.
// It is an immutable value object; the packaging optimizer consumes it as (a, b, c).
//
// Example:
//
//	d, err := kernel.NewDimensions(300, 200, 150)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d.Volume()) // 9000000
type Dimensions struct { //nolint:recvcheck //using for validation
	length int
	width  int
	height int
	guard  guard.ConstructorGuard
}

// NewDimensions validates every side is within [1..MaxSideMillimetres].
// All violations are reported together.
func NewDimensions(length, width, height int) (Dimensions, error) {
	d := Dimensions{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setSide("length", &d.length, length),
		d.setSide("width", &d.width, width),
		d.setSide("height", &d.height, height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate returns ErrDimensionsIsNotConstructed for the zero value.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) Length() int {
	return d.length
}

func (d Dimensions) Width() int {
	return d.width
}

func (d Dimensions) Height() int {
	return d.height
}

// Volume returns length*width*height in cubic millimetres.
func (d Dimensions) Volume() int64 {
	return int64(d.length) * int64(d.width) * int64(d.height)
}

// LongestSide is used by packaging hints to detect oversized goods.
func (d Dimensions) LongestSide() int {
	return max(d.length, d.width, d.height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("Dimensions(%dx%dx%d)", d.length, d.width, d.height)
}

func (d *Dimensions) setSide(name string, dst *int, value int) error {
	if value < 1 || value > MaxSideMillimetres {
		return errs.NewValueIsOutOfRangeError(name, value, 1, MaxSideMillimetres)
	}
	*dst = value
	return nil
}
