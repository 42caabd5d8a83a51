package queries

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetStockReportQueryHandler struct {
	db *gorm.DB
}

func NewGetStockReportQueryHandler(db *gorm.DB) GetStockReportQueryHandler {
	return GetStockReportQueryHandler{db: db}
}

func (h GetStockReportQueryHandler) Handle(
	ctx context.Context,
	query GetStockReportQuery,
) (GetStockReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockReportQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id, i.name, i.length, i.width, i.height, i.weight, i.available_quantity,
			COALESCE(SUM(l.quantity) FILTER (WHERE o.status <> 'collected'), 0) AS reserved,
			i.cargo_types
		FROM items i
		LEFT JOIN order_lines l ON l.item_id = i.id
		LEFT JOIN orders o ON o.id = l.order_id
		GROUP BY i.id
		ORDER BY i.name, i.id
	`).Rows()
	if err != nil {
		return GetStockReportQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetStockReportQueryResponse{Items: make([]StockRow, 0)}
	for rows.Next() {
		var (
			id                    uuid.UUID
			length, width, height int
			codes                 pq.Int64Array
			row                   StockRow
		)
		if err = rows.Scan(
			&id, &row.Name, &length, &width, &height, &row.Weight, &row.Available, &row.Reserved, &codes,
		); err != nil {
			return GetStockReportQueryResponse{}, err
		}
		if row.ItemID, err = toKernelUUID(id); err != nil {
			return GetStockReportQueryResponse{}, err
		}
		if row.Dimensions, err = kernel.NewDimensions(length, width, height); err != nil {
			return GetStockReportQueryResponse{}, err
		}
		row.CargoTypes = toCargoTypes(codes)
		row.Hint = services.PackagingHint(row.CargoTypes)
		resp.Items = append(resp.Items, row)
	}
	if err = rows.Err(); err != nil {
		return GetStockReportQueryResponse{}, err
	}

	return resp, nil
}
