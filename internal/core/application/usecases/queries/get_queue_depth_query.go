package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetQueueDepthQueryIsNotConstructed = errors.New(
	"GetQueueDepthQuery must be created via NewGetQueueDepthQuery constructor",
)

// GetQueueDepthQuery counts the forming orders a picker at each table could claim.
type GetQueueDepthQuery struct {
	guard guard.ConstructorGuard
}

func NewGetQueueDepthQuery() GetQueueDepthQuery {
	return GetQueueDepthQuery{guard: guard.NewConstructorGuard()}
}

func (q GetQueueDepthQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueDepthQueryIsNotConstructed)
}

type GetQueueDepthQueryResponse struct {
	Tables []QueueDepth
}

// QueueDepth is the number of claimable orders at a table. An order with cells at two
// tables counts for both.
type QueueDepth struct {
	TableID   kernel.UUID
	TableName string
	Orders    int
}
