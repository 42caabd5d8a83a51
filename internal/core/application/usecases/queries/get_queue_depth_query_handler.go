package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetQueueDepthQueryHandler struct {
	db *gorm.DB
}

func NewGetQueueDepthQueryHandler(db *gorm.DB) GetQueueDepthQueryHandler {
	return GetQueueDepthQueryHandler{db: db}
}

func (h GetQueueDepthQueryHandler) Handle(
	ctx context.Context,
	query GetQueueDepthQuery,
) (GetQueueDepthQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQueueDepthQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT t.id, t.name, COUNT(DISTINCT o.id)
		FROM picking_tables t
		LEFT JOIN cells c ON c.table_id = t.id
		LEFT JOIN cell_placements p ON p.cell_id = c.id
		LEFT JOIN orders o ON o.id = p.order_id AND o.status = 'forming'
		GROUP BY t.id
		ORDER BY t.name
	`).Rows()
	if err != nil {
		return GetQueueDepthQueryResponse{}, err
	}
	defer rows.Close()

	resp := GetQueueDepthQueryResponse{Tables: make([]QueueDepth, 0)}
	for rows.Next() {
		var (
			id    uuid.UUID
			depth QueueDepth
		)
		if err = rows.Scan(&id, &depth.TableName, &depth.Orders); err != nil {
			return GetQueueDepthQueryResponse{}, err
		}
		if depth.TableID, err = toKernelUUID(id); err != nil {
			return GetQueueDepthQueryResponse{}, err
		}
		resp.Tables = append(resp.Tables, depth)
	}
	if err = rows.Err(); err != nil {
		return GetQueueDepthQueryResponse{}, err
	}

	return resp, nil
}
