// Package services provides domain services that span more than one aggregate of the
// warehouse model.
//
// The package includes:
//   - StockReserver: reserves stock on a set of locked items and attaches the order lines, all or nothing
//   - PackagingHint: classifies an item's cargo-type tags into handling hints
//
// Services here are pure: they never touch persistence. Callers load and lock the
// aggregates, call the service and persist the result in the same unit of work.
package services
