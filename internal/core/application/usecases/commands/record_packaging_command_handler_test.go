package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPackagingCommand(t *testing.T) {
	testCases := []struct {
		name      string
		orderID   kernel.UUID
		packaging string
		total     int
		wantErr   error
	}{
		{"valid", kernel.NewUUID(), "YMA", 1, nil},
		{"empty packaging", kernel.NewUUID(), "", 1, errs.ErrValueIsRequired},
		{"zero packages", kernel.NewUUID(), "YMA", 0, errs.ErrValueIsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewRecordPackagingCommand(tc.orderID, tc.packaging, tc.total, nil)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
		})
	}
}

func TestRecordPackagingCommandHandler_Handle(t *testing.T) {
	t.Run("stores packaging on a collecting order", func(t *testing.T) {
		ctx := t.Context()
		itemID := kernel.NewUUID()
		o := newTestOrder(t, time.Now(), map[kernel.UUID]int{itemID: 2})
		require.NoError(t, o.Claim(kernel.NewUUID()))

		cmd, err := commands.NewRecordPackagingCommand(o.ID(), "MYB", 2, map[kernel.UUID]int{itemID: 2})
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectTx(ctx, true)
		uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow.orders.On("Update", ctx, o).Return(nil).Once()

		err = commands.NewRecordPackagingCommandHandler(orderUoWFactory{uow}).Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, o.SelectedPackaging())
		assert.Equal(t, "MYB", *o.SelectedPackaging())
		require.NotNil(t, o.TotalPackages())
		assert.Equal(t, 2, *o.TotalPackages())
		uow.assertAll(t)
	})

	t.Run("rejects a forming order", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, time.Now(), nil)

		cmd, err := commands.NewRecordPackagingCommand(o.ID(), "MYB", 1, nil)
		require.NoError(t, err)

		uow := newMockUoW()
		uow.expectTx(ctx, false)
		uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()

		err = commands.NewRecordPackagingCommandHandler(orderUoWFactory{uow}).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.SelectedPackaging())
		uow.assertAll(t)
	})
}
