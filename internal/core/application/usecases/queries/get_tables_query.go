package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetTablesQueryIsNotConstructed = errors.New("GetTablesQuery must be created via NewGetTablesQuery constructor")

type GetTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTablesQuery() GetTablesQuery {
	return GetTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}

type GetTablesQueryResponse struct {
	Tables []TableView
}

// TableView is a picking table with how many cells currently sit at it.
type TableView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Available   bool
	Cells       int
}
