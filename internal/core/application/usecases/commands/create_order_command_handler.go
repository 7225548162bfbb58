package commands

import (
	"context"
	"errors"
	"fmt"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/pkg/errs"
)

// Naming-series parameters for order codes. The series counter starts at
// orderSeriesStart and is incremented before use, so the first issued code
// is "LTO-1001".
const (
	orderSeriesName   = "LabTestOrder"
	orderSeriesPrefix = "LTO-"
	orderSeriesStart  = 1000
)

// CreateOrderCommandHandler handles the business logic for placing orders:
// the referenced test must exist and be active, and the order code is
// minted by the naming series inside the same transaction as the insert.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the persisted order in Draft
// status, its code already assigned.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	test, err := uow.TestRepository().Get(ctx, cmd.TestID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("test", err)
		}
		return nil, err
	}

	if !test.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"test",
			fmt.Errorf("%q is not active", test.Name()),
		)
	}

	code, err := uow.Sequencer().Next(ctx, orderSeriesName, orderSeriesPrefix, orderSeriesStart)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		code,
		cmd.PatientName(),
		cmd.PatientPhone(),
		test.ID(),
		cmd.OrderDate(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
