// Package order provides the Order aggregate of the pick-and-pack flow.
//
// The package includes:
//   - Order: the aggregate root holding reserved lines, cell placements and the packaging outcome
//   - Line: one reserved (item, quantity) pair
//   - Placement: units of an order's item physically put into a cell
//   - Status: the Forming -> Collecting -> Collected state machine
//
// Key business rules:
//   - Lines are attached only while the order is Forming
//   - Placements are all-or-nothing and never exceed the reserved quantity per item
//   - Collected orders accept no further placements
//   - Only a Collecting order can be marked collected
package order
