package commands

import (
	"context"

	"pathlab/internal/core/domain/model/result"
)

// UpdateResultCommandHandler applies partial updates to a draft result.
// The aggregate rejects edits once the result is Completed.
type UpdateResultCommandHandler struct {
	uowFactory ResultUoWFactory
}

// NewUpdateResultCommandHandler creates a handler for result updates.
func NewUpdateResultCommandHandler(uowFactory ResultUoWFactory) UpdateResultCommandHandler {
	return UpdateResultCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated result.
func (h *UpdateResultCommandHandler) Handle(ctx context.Context, cmd UpdateResultCommand) (*result.Result, error) {
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

	// Rejects edits on a Completed result even when no fields are supplied.
	if err = resultAggregate.EnsureDraft(); err != nil {
		return nil, err
	}

	if value := cmd.Value(); value != nil {
		if err = resultAggregate.UpdateValue(*value); err != nil {
			return nil, err
		}
	}

	if notes := cmd.Notes(); notes != nil {
		if err = resultAggregate.UpdateNotes(*notes); err != nil {
			return nil, err
		}
	}

	if err = resultRepo.Update(ctx, resultAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return resultAggregate, nil
}
