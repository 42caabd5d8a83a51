package commands

import (
	"context"
)

// CreateCellCommandHandler persists a cell after checking its table exists.
// The pair (name, table) is unique; a clash surfaces as errs.ConflictError.
type CreateCellCommandHandler struct {
	uowFactory StationUoWFactory
}

func NewCreateCellCommandHandler(uowFactory StationUoWFactory) CreateCellCommandHandler {
	return CreateCellCommandHandler{uowFactory: uowFactory}
}

func (h CreateCellCommandHandler) Handle(ctx context.Context, cmd CreateCellCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if tableID := cmd.cell.Table(); tableID != nil {
		if _, err := uow.TableRepository().Get(ctx, *tableID); err != nil {
			return err
		}
	}

	if err := uow.CellRepository().Add(ctx, cmd.cell); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
