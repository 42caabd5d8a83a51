// Package item provides the Item aggregate: a stock-keeping unit with its physical
// dimensions, weight, cargo-type tags and available quantity.
//
// Key business rules:
//   - Available quantity never drops below zero
//   - Reserve either decrements the full requested quantity or changes nothing
//   - Reserve and Release must only be called on an item loaded under an exclusive
//     row lock (see ports.ItemRepository.GetForUpdate); the aggregate itself is not
//     safe for concurrent mutation
package item
