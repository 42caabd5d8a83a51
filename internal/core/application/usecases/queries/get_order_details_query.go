package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery reads one order with its lines, placements and cells.
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailsQueryResponse is the operator view of an order.
type GetOrderDetailsQueryResponse struct {
	ID                   kernel.UUID
	Status               string
	CreatedAt            time.Time
	WorkerID             *kernel.UUID
	RecommendedPackaging *string
	SelectedPackaging    *string
	TotalPackages        *int
	Lines                []OrderLineView
	Placements           []PlacementView
	Cells                []CellView
}

// OrderLineView is a reserved line with the item's handling hint and how much of it has
// been placed so far.
type OrderLineView struct {
	ItemID        kernel.UUID
	ItemName      string
	Quantity      int
	Placed        int
	PackageNumber *int
	Hint          services.Hint
}

type PlacementView struct {
	CellID   kernel.UUID
	CellName string
	ItemID   kernel.UUID
	Quantity int
}

type CellView struct {
	ID      kernel.UUID
	Name    string
	TableID *kernel.UUID
}
