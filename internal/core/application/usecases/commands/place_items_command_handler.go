package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// PlaceItemsCommandHandler records cell placements and moves the cell to the table, in
// one transaction and all or nothing. Stock is not touched.
//
// Locks are taken cell first, then order. The cell lock serializes concurrent moves of
// the same cell; the order lock serializes the cumulative quantity check.
type PlaceItemsCommandHandler struct {
	uowFactory UoWFactory
}

func NewPlaceItemsCommandHandler(uowFactory UoWFactory) PlaceItemsCommandHandler {
	return PlaceItemsCommandHandler{uowFactory: uowFactory}
}

func (h PlaceItemsCommandHandler) Handle(ctx context.Context, cmd PlaceItemsCommand) error {
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

	cellRepo := uow.CellRepository()
	orderRepo := uow.OrderRepository()

	cell, err := cellRepo.GetForUpdate(ctx, cmd.CellID())
	if err != nil {
		return err
	}

	table, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = o.PlaceItems(cell.ID(), kernel.NewUUID, cmd.Items()); err != nil {
		return err
	}

	if err = cell.MoveTo(table); err != nil {
		return err
	}

	if err = cellRepo.Update(ctx, cell); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
