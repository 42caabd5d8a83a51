package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/station"
	"warehouse/internal/pkg/errs"
)

// ErrNoOrdersAvailable means the table has nothing to claim right now. It is an empty
// queue, not a failure.
var ErrNoOrdersAvailable = errors.New("no orders available")

const (
	// claimBatchSize bounds how many candidates are read per round.
	claimBatchSize = 16
	// maxClaimRounds stops a worker that keeps losing every race; the caller sees a conflict.
	maxClaimRounds = 64
)

// ClaimNextOrderResult is the claimed order and the cells holding its items.
type ClaimNextOrderResult struct {
	Order *order.Order
	Cells []*station.Cell
}

// ClaimNextOrderCommandHandler hands the oldest eligible order of a table to a worker.
//
// Two workers never receive the same order: the claim is a conditional update that only
// succeeds while the stored order is still forming. A worker that loses the race moves
// on to the next candidate, and the candidate list is read again until it is empty.
//
// Example:
//
//	res, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrdersAvailable) {
//	    // nothing to pick at this table
//	}
type ClaimNextOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewClaimNextOrderCommandHandler(uowFactory UoWFactory) ClaimNextOrderCommandHandler {
	return ClaimNextOrderCommandHandler{uowFactory: uowFactory}
}

func (h ClaimNextOrderCommandHandler) Handle(ctx context.Context, cmd ClaimNextOrderCommand) (ClaimNextOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ClaimNextOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ClaimNextOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.TableRepository().Get(ctx, cmd.TableID()); err != nil {
		return ClaimNextOrderResult{}, err
	}

	orderRepo := uow.OrderRepository()
	for range maxClaimRounds {
		if err := ctx.Err(); err != nil {
			return ClaimNextOrderResult{}, err
		}

		candidates, err := orderRepo.ListClaimCandidates(ctx, cmd.TableID(), claimBatchSize)
		if err != nil {
			return ClaimNextOrderResult{}, err
		}
		if len(candidates) == 0 {
			return ClaimNextOrderResult{}, ErrNoOrdersAvailable
		}

		for _, id := range candidates {
			claimed, ok, err := h.tryClaim(ctx, uow, id, cmd)
			if err != nil {
				return ClaimNextOrderResult{}, err
			}
			if !ok {
				continue
			}

			cells, err := uow.CellRepository().GetMany(ctx, claimed.CellIDs())
			if err != nil {
				return ClaimNextOrderResult{}, err
			}

			if err = uow.Commit(ctx); err != nil {
				return ClaimNextOrderResult{}, err
			}

			return ClaimNextOrderResult{Order: claimed, Cells: cells}, nil
		}
	}

	return ClaimNextOrderResult{}, errs.NewConflictErrorWithCause(
		"table", cmd.TableID().String(),
		fmt.Errorf("lost %d claim rounds in a row", maxClaimRounds),
	)
}

// tryClaim reports false when the candidate was taken by someone else in the meantime.
func (h ClaimNextOrderCommandHandler) tryClaim(
	ctx context.Context,
	uow UoW,
	id kernel.UUID,
	cmd ClaimNextOrderCommand,
) (*order.Order, bool, error) {
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err = o.Claim(cmd.WorkerID()); err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) {
			return nil, false, nil
		}
		return nil, false, err
	}

	ok, err := orderRepo.TryClaim(ctx, o)
	if err != nil || !ok {
		return nil, false, err
	}

	return o, true, nil
}
