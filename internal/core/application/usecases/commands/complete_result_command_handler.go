package commands

import (
	"context"

	"pathlab/internal/core/domain/model/result"
)

// CompleteResultCommandHandler finalizes a result and completes its owning
// order in the same transaction, so the pair can never be observed
// half-done. A concurrent cancellation of the order loses or wins cleanly:
// the repositories' conditional updates turn the race into an
// ObjectConflictError for whichever writer commits second.
type CompleteResultCommandHandler struct {
	uowFactory ResultUoWFactory
}

// NewCompleteResultCommandHandler creates a handler for result completion.
func NewCompleteResultCommandHandler(uowFactory ResultUoWFactory) CompleteResultCommandHandler {
	return CompleteResultCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the completed result.
func (h *CompleteResultCommandHandler) Handle(ctx context.Context, cmd CompleteResultCommand) (*result.Result, error) {
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

	resultRepo := uow.ResultRepository()
	resultAggregate, err := resultRepo.Get(ctx, cmd.ResultID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, resultAggregate.OrderID())
	if err != nil {
		return nil, err
	}

	if err = resultAggregate.Complete(); err != nil {
		return nil, err
	}

	if err = orderAggregate.Complete(); err != nil {
		return nil, err
	}

	if err = resultRepo.Update(ctx, resultAggregate); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return resultAggregate, nil
}
