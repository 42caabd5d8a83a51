// Package kernel provides the shared value objects of the warehouse domain.
//
// The package includes:
//   - UUID: identifier for items, orders, tables, cells and workers, with a byte-wise
//     ordering used to take row locks deterministically
//   - Dimensions: the physical box of an item in millimetres
//
// Value objects are immutable and must be created through their constructors;
// the zero value of each fails Validate.
package kernel
