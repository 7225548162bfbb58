package commands

import (
	"context"

	"pathlab/internal/core/domain/model/order"
)

// TransitionOrderStatusCommandHandler moves an order along its workflow.
// An illegal transition fails with a validation error before anything is
// written; a concurrent transition on the same order surfaces as an
// ObjectConflictError from the repository's conditional update.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the order in its new status.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = orderAggregate.TransitionTo(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderAggregate, nil
}
