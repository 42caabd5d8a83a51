package commands

import (
	"context"
)

// RecordPackagingCommandHandler stores the picker's packaging outcome on a collecting order.
type RecordPackagingCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRecordPackagingCommandHandler(uowFactory OrderUoWFactory) RecordPackagingCommandHandler {
	return RecordPackagingCommandHandler{uowFactory: uowFactory}
}

func (h RecordPackagingCommandHandler) Handle(ctx context.Context, cmd RecordPackagingCommand) error {
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

	if err = o.RecordPackaging(cmd.Packaging(), cmd.TotalPackages(), cmd.PackageByItem()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
