package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/station"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestItem(t *testing.T, available int) *item.Item {
	t.Helper()
	dims, err := kernel.NewDimensions(200, 150, 100)
	require.NoError(t, err)
	it, err := item.NewItem(kernel.NewUUID(), "Teapot", dims, 0.8, available, []item.CargoType{item.CargoFragile})
	require.NoError(t, err)
	return it
}

func newTestOrder(t *testing.T, createdAt time.Time, lines map[kernel.UUID]int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), createdAt)
	require.NoError(t, err)
	for itemID, q := range lines {
		require.NoError(t, o.AddLine(kernel.NewUUID(), itemID, q))
	}
	o.PullEvents()
	return o
}

func newTestTable(t *testing.T) *station.Table {
	t.Helper()
	table, err := station.NewTable(kernel.NewUUID(), "T-"+kernel.NewUUID().String()[:8], "")
	require.NoError(t, err)
	return table
}

func newTestCell(t *testing.T, table *station.Table) *station.Cell {
	t.Helper()
	var tableID *kernel.UUID
	if table != nil {
		id := table.ID()
		tableID = &id
	}
	cell, err := station.NewCell(kernel.NewUUID(), "A1", tableID)
	require.NoError(t, err)
	return cell
}
