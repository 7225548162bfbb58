package commands

import (
	"context"

	"pathlab/internal/core/domain/model/catalog"
)

// UpdateTestCommandHandler applies partial updates to a catalog test.
// Renaming onto a name held by a different test fails with a validation
// error.
type UpdateTestCommandHandler struct {
	uowFactory TestUoWFactory
}

// NewUpdateTestCommandHandler creates a handler for catalog test updates.
func NewUpdateTestCommandHandler(uowFactory TestUoWFactory) UpdateTestCommandHandler {
	return UpdateTestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated test.
// Fails with an ObjectNotFoundError when the test id is unknown.
func (h *UpdateTestCommandHandler) Handle(ctx context.Context, cmd UpdateTestCommand) (*catalog.Test, error) {
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

	testRepo := uow.TestRepository()
	test, err := testRepo.Get(ctx, cmd.TestID())
	if err != nil {
		return nil, err
	}

	if name := cmd.Name(); name != nil {
		if err = ensureNameIsFree(ctx, testRepo, *name, test.ID()); err != nil {
			return nil, err
		}
		if err = test.Rename(*name); err != nil {
			return nil, err
		}
	}

	if price := cmd.Price(); price != nil {
		if err = test.ChangePrice(*price); err != nil {
			return nil, err
		}
	}

	if normalRange := cmd.NormalRange(); normalRange != nil {
		if err = test.ChangeNormalRange(*normalRange); err != nil {
			return nil, err
		}
	}

	if active := cmd.Active(); active != nil {
		if *active {
			test.Activate()
		} else {
			test.Deactivate()
		}
	}

	if err = testRepo.Update(ctx, test); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return test, nil
}
