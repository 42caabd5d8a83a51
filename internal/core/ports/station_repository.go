package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
)

// TableRepository defines the persistence contract for picking tables.
type TableRepository interface {
	Add(ctx context.Context, table *station.Table) error
	Get(ctx context.Context, id kernel.UUID) (*station.Table, error)
}

// CellRepository defines the persistence contract for cells.
type CellRepository interface {
	Add(ctx context.Context, cell *station.Cell) error

	// Update persists the cell's table assignment.
	Update(ctx context.Context, cell *station.Cell) error

	Get(ctx context.Context, id kernel.UUID) (*station.Cell, error)

	// GetForUpdate serializes concurrent moves of the same cell.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*station.Cell, error)

	// GetMany returns the cells with the given ids, sorted by name. Unknown ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*station.Cell, error)
}
