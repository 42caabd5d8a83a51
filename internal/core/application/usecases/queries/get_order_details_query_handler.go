package queries

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler assembles the order view from three reads: the order row,
// its lines joined with items, and its placements joined with cells.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

type orderRow struct {
	ID                   uuid.UUID
	Status               string
	CreatedAt            time.Time
	WorkerID             *uuid.UUID
	RecommendedPackaging *string
	SelectedPackaging    *string
	TotalPackages        *int
}

type lineRow struct {
	ItemID        uuid.UUID
	ItemName      string
	Quantity      int
	Placed        int
	PackageNumber *int
	CargoTypes    pq.Int64Array
}

type placementRow struct {
	CellID      uuid.UUID
	CellName    string
	CellTableID *uuid.UUID
	ItemID      uuid.UUID
	Quantity    int
}

func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	var o orderRow
	err := db.Raw(`
		SELECT id, status, created_at, worker_id, recommended_packaging, selected_packaging, total_packages
		FROM orders
		WHERE id = ?
	`, id).Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var lines []lineRow
	err = db.Raw(`
		SELECT
			l.item_id,
			i.name AS item_name,
			l.quantity,
			COALESCE((
				SELECT SUM(p.quantity) FROM cell_placements p
				WHERE p.order_id = l.order_id AND p.item_id = l.item_id
			), 0) AS placed,
			l.package_number,
			i.cargo_types
		FROM order_lines l
		JOIN items i ON i.id = l.item_id
		WHERE l.order_id = ?
		ORDER BY i.name, l.item_id
	`, id).Scan(&lines).Error
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	var placements []placementRow
	err = db.Raw(`
		SELECT
			p.cell_id,
			c.name AS cell_name,
			c.table_id AS cell_table_id,
			p.item_id,
			p.quantity
		FROM cell_placements p
		JOIN cells c ON c.id = p.cell_id
		WHERE p.order_id = ?
		ORDER BY c.name, p.cell_id, p.item_id
	`, id).Scan(&placements).Error
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return buildOrderDetails(o, lines, placements)
}

func buildOrderDetails(o orderRow, lines []lineRow, placements []placementRow) (GetOrderDetailsQueryResponse, error) {
	orderID, err := toKernelUUID(o.ID)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	workerID, err := toKernelUUIDPtr(o.WorkerID)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	resp := GetOrderDetailsQueryResponse{
		ID:                   orderID,
		Status:               o.Status,
		CreatedAt:            o.CreatedAt.UTC(),
		WorkerID:             workerID,
		RecommendedPackaging: o.RecommendedPackaging,
		SelectedPackaging:    o.SelectedPackaging,
		TotalPackages:        o.TotalPackages,
		Lines:                make([]OrderLineView, 0, len(lines)),
		Placements:           make([]PlacementView, 0, len(placements)),
		Cells:                make([]CellView, 0),
	}

	for _, l := range lines {
		itemID, idErr := toKernelUUID(l.ItemID)
		if idErr != nil {
			return GetOrderDetailsQueryResponse{}, idErr
		}
		resp.Lines = append(resp.Lines, OrderLineView{
			ItemID:        itemID,
			ItemName:      l.ItemName,
			Quantity:      l.Quantity,
			Placed:        l.Placed,
			PackageNumber: l.PackageNumber,
			Hint:          services.PackagingHint(toCargoTypes(l.CargoTypes)),
		})
	}

	seen := make(map[uuid.UUID]bool)
	for _, p := range placements {
		cellID, idErr := toKernelUUID(p.CellID)
		if idErr != nil {
			return GetOrderDetailsQueryResponse{}, idErr
		}
		itemID, idErr := toKernelUUID(p.ItemID)
		if idErr != nil {
			return GetOrderDetailsQueryResponse{}, idErr
		}
		resp.Placements = append(resp.Placements, PlacementView{
			CellID:   cellID,
			CellName: p.CellName,
			ItemID:   itemID,
			Quantity: p.Quantity,
		})

		if seen[p.CellID] {
			continue
		}
		seen[p.CellID] = true
		tableID, idErr := toKernelUUIDPtr(p.CellTableID)
		if idErr != nil {
			return GetOrderDetailsQueryResponse{}, idErr
		}
		resp.Cells = append(resp.Cells, CellView{ID: cellID, Name: p.CellName, TableID: tableID})
	}

	return resp, nil
}
