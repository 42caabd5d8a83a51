package commands

import (
	"context"
)

// CreateItemCommandHandler persists a new item.
type CreateItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewCreateItemCommandHandler(uowFactory ItemUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{uowFactory: uowFactory}
}

// Handle stores the item. A duplicate id surfaces as errs.ConflictError from the repository.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
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

	if err := uow.ItemRepository().Add(ctx, cmd.item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
