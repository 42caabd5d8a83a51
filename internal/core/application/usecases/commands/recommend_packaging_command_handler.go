package commands

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// RecommendPackagingCommandHandler enriches a forming order with the optimizer's
// recommendation. The optimizer is called with no transaction open; the result is then
// stored under the order's row lock.
//
// Orders that already have a recommendation or are no longer forming are left alone and
// their current recommendation (possibly empty) is returned.
type RecommendPackagingCommandHandler struct {
	uowFactory UoWFactory
	optimizer  ports.PackagingOptimizer
}

func NewRecommendPackagingCommandHandler(
	uowFactory UoWFactory,
	optimizer ports.PackagingOptimizer,
) RecommendPackagingCommandHandler {
	return RecommendPackagingCommandHandler{
		uowFactory: uowFactory,
		optimizer:  optimizer,
	}
}

// Handle returns the stored recommendation. Optimizer failures wrap ports.ErrNoRecommendation.
func (h RecommendPackagingCommandHandler) Handle(ctx context.Context, cmd RecommendPackagingCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}
	if current, done := alreadyRecommended(o); done {
		return current, nil
	}

	items, err := h.packagingItems(ctx, uow, o)
	if err != nil {
		return "", err
	}

	packaging, err := h.optimizer.Recommend(ctx, o.ID(), items)
	if err != nil {
		return "", err
	}

	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err = repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}
	if current, done := alreadyRecommended(o); done {
		return current, nil
	}

	if err = o.RecommendPackaging(packaging); err != nil {
		return "", err
	}

	if err = repo.Update(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return *o.RecommendedPackaging(), nil
}

func (h RecommendPackagingCommandHandler) packagingItems(
	ctx context.Context,
	uow UoW,
	o *order.Order,
) ([]ports.PackagingItem, error) {
	itemRepo := uow.ItemRepository()

	lines := o.Lines()
	items := make([]ports.PackagingItem, 0, len(lines))
	for _, l := range lines {
		it, err := itemRepo.Get(ctx, l.ItemID())
		if err != nil {
			return nil, fmt.Errorf("load item of order line: %w", err)
		}
		items = append(items, ports.PackagingItem{
			ItemID:     it.ID(),
			Quantity:   l.Quantity(),
			Dimensions: it.Dimensions(),
			Weight:     it.Weight(),
			CargoTypes: it.CargoTypes(),
		})
	}

	return items, nil
}

func alreadyRecommended(o *order.Order) (string, bool) {
	if p := o.RecommendedPackaging(); p != nil {
		return *p, true
	}
	if o.Status() != order.Forming {
		return "", true
	}
	return "", false
}
