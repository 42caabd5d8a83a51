package station_test

import (
	"strings"
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("should create available table", func(t *testing.T) {
		id := kernel.NewUUID()

		table, err := station.NewTable(id, " T-01 ", "near gate 3")

		require.NoError(t, err)
		require.NoError(t, table.Validate())
		assert.True(t, table.ID().IsEqual(id))
		assert.Equal(t, "T-01", table.Name())
		assert.Equal(t, "near gate 3", table.Description())
		assert.True(t, table.Available())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		var zeroID kernel.UUID

		table, err := station.NewTable(zeroID, "", strings.Repeat("d", station.MaxDescriptionLength+1))

		require.Error(t, err)
		assert.Nil(t, table)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "description length")
	})

	t.Run("should toggle availability", func(t *testing.T) {
		table, err := station.RestoreTable(kernel.NewUUID(), "T-02", "", false)
		require.NoError(t, err)

		table.SetAvailable(true)

		assert.True(t, table.Available())
	})
}

func TestNewCell(t *testing.T) {
	t.Run("should create detached cell", func(t *testing.T) {
		cell, err := station.NewCell(kernel.NewUUID(), "A1", nil)

		require.NoError(t, err)
		require.NoError(t, cell.Validate())
		assert.Equal(t, "A1", cell.Name())
		assert.Nil(t, cell.Table())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := station.NewCell(kernel.NewUUID(), "   ", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid table id", func(t *testing.T) {
		var zero kernel.UUID

		_, err := station.NewCell(kernel.NewUUID(), "A1", &zero)

		require.Error(t, err)
	})

	t.Run("should not alias table pointer", func(t *testing.T) {
		tableID := kernel.NewUUID()
		cell, err := station.NewCell(kernel.NewUUID(), "A1", &tableID)
		require.NoError(t, err)

		tableID = kernel.NewUUID()

		assert.False(t, cell.IsAt(tableID))
	})
}

func TestCell_MoveTo(t *testing.T) {
	first, err := station.NewTable(kernel.NewUUID(), "T-01", "")
	require.NoError(t, err)
	second, err := station.NewTable(kernel.NewUUID(), "T-02", "")
	require.NoError(t, err)
	cell, err := station.NewCell(kernel.NewUUID(), "A1", nil)
	require.NoError(t, err)

	require.NoError(t, cell.MoveTo(first))
	assert.True(t, cell.IsAt(first.ID()))

	require.NoError(t, cell.MoveTo(second))
	assert.True(t, cell.IsAt(second.ID()))
	assert.False(t, cell.IsAt(first.ID()))

	require.ErrorIs(t, cell.MoveTo(nil), station.ErrTableIsNotConstructed)
	assert.True(t, cell.IsAt(second.ID()))
}
