package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	dims, err := kernel.NewDimensions(100, 100, 100)
	require.NoError(t, err)
	cmd, err := commands.NewCreateItemCommand(id, "Mug", dims, 0.3, 7, []item.CargoType{item.CargoFragile})
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.items.On("Add", ctx, mock.MatchedBy(func(it *item.Item) bool {
		return it.ID().IsEqual(id) && it.AvailableQuantity() == 7
	})).Return(nil).Once()

	err = commands.NewCreateItemCommandHandler(itemUoWFactory{uow}).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.assertAll(t)
}

func TestCreateItemCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	dims, err := kernel.NewDimensions(100, 100, 100)
	require.NoError(t, err)
	cmd, err := commands.NewCreateItemCommand(id, "Mug", dims, 0.3, 7, nil)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.items.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("item", id.String())).Once()

	err = commands.NewCreateItemCommandHandler(itemUoWFactory{uow}).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.assertAll(t)
}

func TestCreateItemCommandHandler_Handle_NotConstructed(t *testing.T) {
	err := commands.NewCreateItemCommandHandler(itemUoWFactory{newMockUoW()}).Handle(t.Context(), commands.CreateItemCommand{})

	require.ErrorIs(t, err, commands.ErrCreateItemCommandIsNotConstructed)
}

func TestNewRestockItemCommand(t *testing.T) {
	_, err := commands.NewRestockItemCommand(kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewRestockItemCommand(kernel.NewUUID(), item.MaxQuantity+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewRestockItemCommand(kernel.NewUUID(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cmd.Quantity())
}

func TestRestockItemCommandHandler_Handle(t *testing.T) {
	t.Run("adds stock back", func(t *testing.T) {
		ctx := t.Context()
		it := newTestItem(t, 3)
		cmd, err := commands.NewRestockItemCommand(it.ID(), 4)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectTx(ctx, true)
		uow.items.On("GetForUpdate", ctx, it.ID()).Return(it, nil).Once()
		uow.items.On("Update", ctx, it).Return(nil).Once()

		available, err := commands.NewRestockItemCommandHandler(itemUoWFactory{uow}).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 7, available)
		uow.assertAll(t)
	})

	t.Run("rejects overflow", func(t *testing.T) {
		ctx := t.Context()
		it := newTestItem(t, item.MaxQuantity)
		cmd, err := commands.NewRestockItemCommand(it.ID(), 1)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectTx(ctx, false)
		uow.items.On("GetForUpdate", ctx, it.ID()).Return(it, nil).Once()

		_, err = commands.NewRestockItemCommandHandler(itemUoWFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, item.MaxQuantity, it.AvailableQuantity())
		uow.assertAll(t)
	})

	t.Run("unknown item", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewRestockItemCommand(id, 1)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectTx(ctx, false)
		uow.items.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("item", id.String())).Once()

		_, err = commands.NewRestockItemCommandHandler(itemUoWFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.assertAll(t)
	})
}
