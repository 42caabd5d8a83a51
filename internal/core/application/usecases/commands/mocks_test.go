package commands_test

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, it *item.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, it *item.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListClaimCandidates(ctx context.Context, tableID kernel.UUID, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, tableID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockOrderRepository) TryClaim(ctx context.Context, o *order.Order) (bool, error) {
	args := m.Called(ctx, o)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListAwaitingRecommendation(ctx context.Context, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, t *station.Table) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*station.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Table), args.Error(1)
}

type MockCellRepository struct{ mock.Mock }

func (m *MockCellRepository) Add(ctx context.Context, c *station.Cell) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCellRepository) Update(ctx context.Context, c *station.Cell) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCellRepository) Get(ctx context.Context, id kernel.UUID) (*station.Cell, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Cell), args.Error(1)
}

func (m *MockCellRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*station.Cell, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Cell), args.Error(1)
}

func (m *MockCellRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*station.Cell, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*station.Cell), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package. Repository
// accessors return the embedded mocks directly so tests only set expectations on the
// transaction calls and the repositories.
type MockUoW struct {
	mock.Mock

	items  *MockItemRepository
	orders *MockOrderRepository
	tables *MockTableRepository
	cells  *MockCellRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		items:  new(MockItemRepository),
		orders: new(MockOrderRepository),
		tables: new(MockTableRepository),
		cells:  new(MockCellRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	return m.items
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	return m.tables
}

func (m *MockUoW) CellRepository() ports.CellRepository {
	return m.cells
}

// expectTx sets up a transaction that begins, optionally commits, and is always rolled back
// by the handler's deferred cleanup.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Once()
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.items.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.tables.AssertExpectations(t)
	m.cells.AssertExpectations(t)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type itemUoWFactory struct{ uow *MockUoW }

func (f itemUoWFactory) Create() commands.ItemUoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type reservationUoWFactory struct{ uow *MockUoW }

func (f reservationUoWFactory) Create() commands.ReservationUoW { return f.uow }

type stationUoWFactory struct{ uow *MockUoW }

func (f stationUoWFactory) Create() commands.StationUoW { return f.uow }

type MockPackagingOptimizer struct{ mock.Mock }

func (m *MockPackagingOptimizer) Recommend(ctx context.Context, orderID kernel.UUID, items []ports.PackagingItem) (string, error) {
	args := m.Called(ctx, orderID, items)
	return args.String(0), args.Error(1)
}
