package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetTablesQueryHandler struct {
	db *gorm.DB
}

func NewGetTablesQueryHandler(db *gorm.DB) GetTablesQueryHandler {
	return GetTablesQueryHandler{db: db}
}

func (h GetTablesQueryHandler) Handle(ctx context.Context, query GetTablesQuery) (GetTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTablesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT t.id, t.name, t.description, t.available, COUNT(c.id)
		FROM picking_tables t
		LEFT JOIN cells c ON c.table_id = t.id
		GROUP BY t.id
		ORDER BY t.name
	`).Rows()
	if err != nil {
		return GetTablesQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetTablesQueryResponse{Tables: make([]TableView, 0)}
	for rows.Next() {
		var (
			id    uuid.UUID
			table TableView
		)
		if err = rows.Scan(&id, &table.Name, &table.Description, &table.Available, &table.Cells); err != nil {
			return GetTablesQueryResponse{}, err
		}
		if table.ID, err = toKernelUUID(id); err != nil {
			return GetTablesQueryResponse{}, err
		}
		resp.Tables = append(resp.Tables, table)
	}
	if err = rows.Err(); err != nil {
		return GetTablesQueryResponse{}, err
	}

	return resp, nil
}
