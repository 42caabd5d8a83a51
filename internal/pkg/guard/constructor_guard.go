// Package guard provides ConstructorGuard, a marker that lets value objects, entities
// and commands detect whether they were built through their constructor or are zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created via a constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	var ErrCellNotConstructed = errors.New("Cell must be created via NewCell")
//
//	type Cell struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCell(name string) (*Cell, error) {
//	    if name == "" {
//	        return nil, errs.NewValueIsRequiredError("name")
//	    }
//	    return &Cell{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c *Cell) Validate() error {
//	    return c.guard.Validate(ErrCellNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
