package stationrepo_test

import (
	"context"
	"testing"

	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/adapters/out/postgres/stationrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type StationRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	tables  *stationrepo.GormTableRepository
	cells   *stationrepo.GormCellRepository
	tracker *MockAggregateTracker
}

func TestStationRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(StationRepositoryIntegrationTestSuite))
}

func (suite *StationRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *StationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *StationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate(context.Background()))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.tables = stationrepo.NewGormTableRepository(suite.pg.DB, suite.tracker)
	suite.cells = stationrepo.NewGormCellRepository(suite.pg.DB, suite.tracker)
}

func (suite *StationRepositoryIntegrationTestSuite) addTable(name string) *station.Table {
	table, err := station.NewTable(kernel.NewUUID(), name, "near dock "+name)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.tables.Add(context.Background(), table))
	return table
}

func (suite *StationRepositoryIntegrationTestSuite) addCell(name string, table *station.Table) *station.Cell {
	var tableID *kernel.UUID
	if table != nil {
		id := table.ID()
		tableID = &id
	}
	cell, err := station.NewCell(kernel.NewUUID(), name, tableID)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.cells.Add(context.Background(), cell))
	return cell
}

func (suite *StationRepositoryIntegrationTestSuite) TestTable_RoundTrip() {
	table := suite.addTable("T1")

	got, err := suite.tables.Get(context.Background(), table.ID())

	suite.Require().NoError(err)
	suite.Equal("T1", got.Name())
	suite.Equal("near dock T1", got.Description())
	suite.True(got.Available())
}

func (suite *StationRepositoryIntegrationTestSuite) TestTable_NameIsUnique() {
	suite.addTable("T1")
	dup, err := station.NewTable(kernel.NewUUID(), "T1", "")
	suite.Require().NoError(err)

	err = suite.tables.Add(context.Background(), dup)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *StationRepositoryIntegrationTestSuite) TestTable_Missing() {
	_, err := suite.tables.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StationRepositoryIntegrationTestSuite) TestCell_MoveBetweenTables() {
	ctx := context.Background()
	t1 := suite.addTable("T1")
	t2 := suite.addTable("T2")
	cell := suite.addCell("A1", t1)

	suite.Require().NoError(cell.MoveTo(t2))
	suite.Require().NoError(suite.cells.Update(ctx, cell))

	got, err := suite.cells.GetForUpdate(ctx, cell.ID())
	suite.Require().NoError(err)
	suite.True(got.IsAt(t2.ID()))
}

func (suite *StationRepositoryIntegrationTestSuite) TestCell_NameIsUniquePerTable() {
	t1 := suite.addTable("T1")
	t2 := suite.addTable("T2")
	suite.addCell("A1", t1)
	suite.addCell("A1", t2)

	tableID := t1.ID()
	dup, err := station.NewCell(kernel.NewUUID(), "A1", &tableID)
	suite.Require().NoError(err)

	err = suite.cells.Add(context.Background(), dup)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *StationRepositoryIntegrationTestSuite) TestCell_Unassigned() {
	cell := suite.addCell("Z9", nil)

	got, err := suite.cells.Get(context.Background(), cell.ID())

	suite.Require().NoError(err)
	suite.Nil(got.Table())
}

func (suite *StationRepositoryIntegrationTestSuite) TestCell_GetManySortedByName() {
	table := suite.addTable("T1")
	b := suite.addCell("B2", table)
	a := suite.addCell("A1", table)
	suite.addCell("C3", table)

	got, err := suite.cells.GetMany(context.Background(), []kernel.UUID{b.ID(), a.ID(), kernel.NewUUID()})

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("A1", got[0].Name())
	suite.Equal("B2", got[1].Name())
}

func (suite *StationRepositoryIntegrationTestSuite) TestCell_GetManyEmpty() {
	got, err := suite.cells.GetMany(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(got)
}
