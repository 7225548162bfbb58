package commands

import (
	"context"
	"time"

	"pathlab/internal/core/domain/model/order"
)

// CancelExpiredOrdersCommandHandler cancels Draft orders whose order date
// lies before today. Drafts never confirmed by their requested day are
// considered abandoned.
type CancelExpiredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelExpiredOrdersCommandHandler creates a handler for draft expiry.
func NewCancelExpiredOrdersCommandHandler(uowFactory OrderUoWFactory) CancelExpiredOrdersCommandHandler {
	return CancelExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the number of orders cancelled.
func (h *CancelExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd CancelExpiredOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	expired, err := orderRepo.GetAllExpiredDrafts(ctx, order.DayOf(time.Now()))
	if err != nil {
		return 0, err
	}

	for _, orderAggregate := range expired {
		if err = orderAggregate.Cancel(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, orderAggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
