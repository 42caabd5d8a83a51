package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placedOrder(t *testing.T, createdAt time.Time, cell *station.Cell) *order.Order {
	t.Helper()
	itemID := kernel.NewUUID()
	o := newTestOrder(t, createdAt, map[kernel.UUID]int{itemID: 1})
	_, err := o.PlaceItems(cell.ID(), kernel.NewUUID, []order.PlacementRequest{{ItemID: itemID, Quantity: 1}})
	require.NoError(t, err)
	return o
}

func newClaimCommand(t *testing.T, tableID, workerID kernel.UUID) commands.ClaimNextOrderCommand {
	t.Helper()
	cmd, err := commands.NewClaimNextOrderCommand(tableID, workerID)
	require.NoError(t, err)
	return cmd
}

func TestClaimNextOrderCommandHandler_Handle_ClaimsOldest(t *testing.T) {
	ctx := t.Context()
	table := newTestTable(t)
	cell := newTestCell(t, table)
	oldest := placedOrder(t, time.Now().Add(-time.Hour), cell)
	worker := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.tables.On("Get", ctx, table.ID()).Return(table, nil).Once()
	uow.orders.On("ListClaimCandidates", ctx, table.ID(), mock.Anything).Return([]kernel.UUID{oldest.ID()}, nil).Once()
	uow.orders.On("Get", ctx, oldest.ID()).Return(oldest, nil).Once()
	uow.orders.On("TryClaim", ctx, oldest).Return(true, nil).Once()
	uow.cells.On("GetMany", ctx, []kernel.UUID{cell.ID()}).Return([]*station.Cell{cell}, nil).Once()

	h := commands.NewClaimNextOrderCommandHandler(uowFactory{uow})
	res, err := h.Handle(ctx, newClaimCommand(t, table.ID(), worker))

	require.NoError(t, err)
	assert.True(t, res.Order.IsEqual(oldest))
	assert.Equal(t, order.Collecting, res.Order.Status())
	assert.True(t, res.Order.Worker().IsEqual(worker))
	assert.Equal(t, []*station.Cell{cell}, res.Cells)
	uow.assertAll(t)
}

func TestClaimNextOrderCommandHandler_Handle_RetriesAfterLostRace(t *testing.T) {
	ctx := t.Context()
	table := newTestTable(t)
	cell := newTestCell(t, table)
	lost := placedOrder(t, time.Now().Add(-2*time.Hour), cell)
	next := placedOrder(t, time.Now().Add(-time.Hour), cell)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.tables.On("Get", ctx, table.ID()).Return(table, nil).Once()
	mock.InOrder(
		uow.orders.On("ListClaimCandidates", ctx, table.ID(), mock.Anything).Return([]kernel.UUID{lost.ID()}, nil).Once(),
		uow.orders.On("Get", ctx, lost.ID()).Return(lost, nil).Once(),
		uow.orders.On("TryClaim", ctx, lost).Return(false, nil).Once(),
		uow.orders.On("ListClaimCandidates", ctx, table.ID(), mock.Anything).Return([]kernel.UUID{next.ID()}, nil).Once(),
		uow.orders.On("Get", ctx, next.ID()).Return(next, nil).Once(),
		uow.orders.On("TryClaim", ctx, next).Return(true, nil).Once(),
	)
	uow.cells.On("GetMany", ctx, mock.Anything).Return([]*station.Cell{cell}, nil).Once()

	h := commands.NewClaimNextOrderCommandHandler(uowFactory{uow})
	res, err := h.Handle(ctx, newClaimCommand(t, table.ID(), kernel.NewUUID()))

	require.NoError(t, err)
	assert.True(t, res.Order.IsEqual(next))
	uow.assertAll(t)
}

func TestClaimNextOrderCommandHandler_Handle_SkipsAlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	table := newTestTable(t)
	cell := newTestCell(t, table)
	taken := placedOrder(t, time.Now().Add(-2*time.Hour), cell)
	require.NoError(t, taken.Claim(kernel.NewUUID()))
	free := placedOrder(t, time.Now().Add(-time.Hour), cell)

	uow := newMockUoW()
	uow.expectTx(ctx, true)
	uow.tables.On("Get", ctx, table.ID()).Return(table, nil).Once()
	uow.orders.On("ListClaimCandidates", ctx, table.ID(), mock.Anything).Return([]kernel.UUID{taken.ID(), free.ID()}, nil).Once()
	uow.orders.On("Get", ctx, taken.ID()).Return(taken, nil).Once()
	uow.orders.On("Get", ctx, free.ID()).Return(free, nil).Once()
	uow.orders.On("TryClaim", ctx, free).Return(true, nil).Once()
	uow.cells.On("GetMany", ctx, mock.Anything).Return([]*station.Cell{cell}, nil).Once()

	h := commands.NewClaimNextOrderCommandHandler(uowFactory{uow})
	res, err := h.Handle(ctx, newClaimCommand(t, table.ID(), kernel.NewUUID()))

	require.NoError(t, err)
	assert.True(t, res.Order.IsEqual(free))
	uow.orders.AssertNotCalled(t, "TryClaim", ctx, taken)
	uow.assertAll(t)
}

func TestClaimNextOrderCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	table := newTestTable(t)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.tables.On("Get", ctx, table.ID()).Return(table, nil).Once()
	uow.orders.On("ListClaimCandidates", ctx, table.ID(), mock.Anything).Return([]kernel.UUID{}, nil).Once()

	h := commands.NewClaimNextOrderCommandHandler(uowFactory{uow})
	_, err := h.Handle(ctx, newClaimCommand(t, table.ID(), kernel.NewUUID()))

	require.ErrorIs(t, err, commands.ErrNoOrdersAvailable)
	uow.assertAll(t)
}

func TestClaimNextOrderCommandHandler_Handle_UnknownTable(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.tables.On("Get", ctx, tableID).Return(nil, errs.NewObjectNotFoundError("table", tableID.String())).Once()

	h := commands.NewClaimNextOrderCommandHandler(uowFactory{uow})
	_, err := h.Handle(ctx, newClaimCommand(t, tableID, kernel.NewUUID()))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.orders.AssertNotCalled(t, "ListClaimCandidates", mock.Anything, mock.Anything, mock.Anything)
	uow.assertAll(t)
}

func TestClaimNextOrderCommandHandler_Handle_GivesUpAfterEndlessConflicts(t *testing.T) {
	ctx := t.Context()
	table := newTestTable(t)
	cell := newTestCell(t, table)
	contested := placedOrder(t, time.Now(), cell)

	uow := newMockUoW()
	uow.expectTx(ctx, false)
	uow.tables.On("Get", ctx, table.ID()).Return(table, nil).Once()
	uow.orders.On("ListClaimCandidates", ctx, table.ID(), mock.Anything).Return([]kernel.UUID{contested.ID()}, nil)
	uow.orders.On("Get", ctx, contested.ID()).Return(contested, nil)
	uow.orders.On("TryClaim", ctx, mock.Anything).Return(false, nil)

	h := commands.NewClaimNextOrderCommandHandler(uowFactory{uow})
	_, err := h.Handle(ctx, newClaimCommand(t, table.ID(), kernel.NewUUID()))

	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestNewClaimNextOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewClaimNextOrderCommand(kernel.UUID{}, kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
