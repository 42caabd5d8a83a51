package commands

import (
	"context"
)

// MarkCollectedCommandHandler moves an order from collecting to collected under its row
// lock. Any other starting status fails with errs.InvalidTransitionError, so a second
// call for the same order is rejected.
type MarkCollectedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkCollectedCommandHandler(uowFactory OrderUoWFactory) MarkCollectedCommandHandler {
	return MarkCollectedCommandHandler{uowFactory: uowFactory}
}

func (h MarkCollectedCommandHandler) Handle(ctx context.Context, cmd MarkCollectedCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.MarkCollected(); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
