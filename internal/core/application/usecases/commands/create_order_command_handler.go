package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/item"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

type packagingRecommender interface {
	Handle(ctx context.Context, cmd RecommendPackagingCommand) (string, error)
}

// CreateOrderCommandHandler is the reservation transaction: it locks every requested
// item in ascending id order, reserves stock for all lines or none, creates the order
// and commits. After the commit it asks the packaging optimizer for a recommendation;
// that step is best effort and never fails the creation.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, recommender, logger)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInsufficientStock):
//	    // nothing was reserved
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // an item does not exist
//	}
type CreateOrderCommandHandler struct {
	uowFactory  ReservationUoWFactory
	recommender packagingRecommender
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates the handler. recommender may be nil, in which case
// orders are left for the recommendation job.
func NewCreateOrderCommandHandler(
	uowFactory ReservationUoWFactory,
	recommender packagingRecommender,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		recommender: recommender,
		logger:      logger,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.reserve(ctx, cmd); err != nil {
		return err
	}

	h.recommendPackaging(ctx, cmd.OrderID())
	return nil
}

func (h CreateOrderCommandHandler) reserve(ctx context.Context, cmd CreateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	orderRepo := uow.OrderRepository()

	lines := cmd.Lines()
	locked := make([]*item.Item, 0, len(lines))
	for _, l := range lines {
		it, err := itemRepo.GetForUpdate(ctx, l.ItemID)
		if err != nil {
			return err
		}
		locked = append(locked, it)
	}

	o, err := order.NewOrder(cmd.OrderID(), time.Now())
	if err != nil {
		return err
	}

	if err = services.NewStockReserver().Reserve(o, locked, lines, kernel.NewUUID); err != nil {
		return err
	}

	for _, it := range locked {
		if err = itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) recommendPackaging(ctx context.Context, orderID kernel.UUID) {
	if h.recommender == nil {
		return
	}

	cmd, err := NewRecommendPackagingCommand(orderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build packaging recommendation", "order_id", orderID.String(), "error", err)
		return
	}

	packaging, err := h.recommender.Handle(ctx, cmd)
	switch {
	case errors.Is(err, ports.ErrNoRecommendation):
		h.logger.WarnContext(ctx, "packaging optimizer gave no recommendation", "order_id", orderID.String(), "error", err)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to store packaging recommendation", "order_id", orderID.String(), "error", err)
	default:
		h.logger.DebugContext(ctx, "packaging recommended", "order_id", orderID.String(), "packaging", packaging)
	}
}
