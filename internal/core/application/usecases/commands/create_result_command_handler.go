package commands

import (
	"context"
	"errors"
	"fmt"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/result"
	"pathlab/internal/pkg/errs"
)

// CreateResultCommandHandler handles the business logic for recording a
// result: the order must be in Ordered status and must not already have
// one. The pre-check covers sequential callers; the unique index on the
// result's order reference backs the same rule under concurrency.
type CreateResultCommandHandler struct {
	uowFactory ResultUoWFactory
}

// NewCreateResultCommandHandler creates a handler for result creation.
func NewCreateResultCommandHandler(uowFactory ResultUoWFactory) CreateResultCommandHandler {
	return CreateResultCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the persisted result in Draft
// status.
func (h *CreateResultCommandHandler) Handle(ctx context.Context, cmd CreateResultCommand) (*result.Result, error) {
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

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !orderAggregate.CanCreateResult() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("results can only be created for Ordered orders, order is %s", orderAggregate.Status()),
		)
	}

	resultRepo := uow.ResultRepository()
	existing, err := resultRepo.GetAllByOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order",
			errors.New("order already has a result"),
		)
	}

	newResult, err := result.NewResult(kernel.NewUUID(), cmd.OrderID(), cmd.Value(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = resultRepo.Add(ctx, newResult); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newResult, nil
}
