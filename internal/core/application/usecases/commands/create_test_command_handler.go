package commands

import (
	"context"
	"errors"
	"fmt"

	"pathlab/internal/core/domain/model/catalog"
	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/ports"
	"pathlab/internal/pkg/errs"
)

// CreateTestCommandHandler handles the business logic for adding catalog
// tests: name and code must not collide with any existing test
// (case-sensitive exact match).
type CreateTestCommandHandler struct {
	uowFactory TestUoWFactory
}

// NewCreateTestCommandHandler creates a handler for catalog test creation.
func NewCreateTestCommandHandler(uowFactory TestUoWFactory) CreateTestCommandHandler {
	return CreateTestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the persisted test.
// Duplicate name or code fails with a validation error; the unique indexes
// on the table back the same rule under concurrent creations.
func (h *CreateTestCommandHandler) Handle(ctx context.Context, cmd CreateTestCommand) (*catalog.Test, error) {
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
	if err := ensureNameIsFree(ctx, testRepo, cmd.Name(), kernel.UUID{}); err != nil {
		return nil, err
	}
	if err := ensureCodeIsFree(ctx, testRepo, cmd.Code()); err != nil {
		return nil, err
	}

	test, err := catalog.NewTest(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Code(),
		cmd.SampleType(),
		cmd.NormalRange(),
		cmd.Price(),
		cmd.Active(),
	)
	if err != nil {
		return nil, err
	}

	if err = testRepo.Add(ctx, test); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return test, nil
}

// ensureNameIsFree fails with a validation error when a test other than
// exceptID already carries the name. Pass the zero UUID to exclude nothing.
func ensureNameIsFree(ctx context.Context, repo ports.TestRepository, name string, exceptID kernel.UUID) error {
	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if existing.ID().IsEqual(exceptID) {
		return nil
	}

	return errs.NewValueIsInvalidErrorWithCause("test name", fmt.Errorf("%q already exists", name))
}

func ensureCodeIsFree(ctx context.Context, repo ports.TestRepository, code string) error {
	_, err := repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	return errs.NewValueIsInvalidErrorWithCause("test code", fmt.Errorf("%q already exists", code))
}
