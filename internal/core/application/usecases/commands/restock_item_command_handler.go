package commands

import (
	"context"
)

// RestockItemCommandHandler releases stock back into an item under its row lock, the
// same lock order creation takes, so restocks and reservations serialize per item.
type RestockItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

func NewRestockItemCommandHandler(uowFactory ItemUoWFactory) RestockItemCommandHandler {
	return RestockItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns the available quantity after the restock.
func (h RestockItemCommandHandler) Handle(ctx context.Context, cmd RestockItemCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ItemRepository()
	it, err := repo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return 0, err
	}

	if err = it.Release(cmd.Quantity()); err != nil {
		return 0, err
	}

	if err = repo.Update(ctx, it); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return it.AvailableQuantity(), nil
}
