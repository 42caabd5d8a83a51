// Package queries contains the read side of the warehouse: projections for operators
// and reports, read straight from PostgreSQL through GORM without loading aggregates.
//
// Queries never lock and never write. Each query is a value built by its constructor and
// validated by its handler, the same way commands are.
package queries
