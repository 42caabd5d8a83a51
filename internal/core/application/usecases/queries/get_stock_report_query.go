package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/guard"
)

var ErrGetStockReportQueryIsNotConstructed = errors.New(
	"GetStockReportQuery must be created via NewGetStockReportQuery constructor",
)

// GetStockReportQuery lists every item with its free and reserved stock.
type GetStockReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStockReportQuery() GetStockReportQuery {
	return GetStockReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStockReportQuery) Validate() error {
	return q.guard.Validate(ErrGetStockReportQueryIsNotConstructed)
}

type GetStockReportQueryResponse struct {
	Items []StockRow
}

// StockRow is one report line. Reserved counts units held by orders that are not yet
// collected; once collected the units have left the warehouse.
type StockRow struct {
	ItemID     kernel.UUID
	Name       string
	Dimensions kernel.Dimensions
	Weight     float64
	Available  int
	Reserved   int
	CargoTypes []item.CargoType
	Hint       services.Hint
}
