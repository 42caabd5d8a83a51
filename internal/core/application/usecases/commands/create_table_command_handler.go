package commands

import (
	"context"
)

// CreateTableCommandHandler persists a table. A taken name surfaces as errs.ConflictError.
type CreateTableCommandHandler struct {
	uowFactory StationUoWFactory
}

func NewCreateTableCommandHandler(uowFactory StationUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{uowFactory: uowFactory}
}

func (h CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) error {
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

	if err := uow.TableRepository().Add(ctx, cmd.table); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
