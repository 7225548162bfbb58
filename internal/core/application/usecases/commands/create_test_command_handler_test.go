package commands_test

import (
	"errors"
	"testing"

	"pathlab/internal/core/application/usecases/commands"
	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateTestCommand(t *testing.T) commands.CreateTestCommand {
	t.Helper()
	price, err := kernel.NewPriceFromCents(5000)
	require.NoError(t, err)
	cmd, err := commands.NewCreateTestCommand("Complete Blood Count", "CBC", "Blood", "4.5-11.0", price, true)
	require.NoError(t, err)
	return cmd
}

func TestCreateTestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTestCommand(t)

	repo := new(MockTestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TestRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "Complete Blood Count").
			Return(nil, errs.NewObjectNotFoundError("name", "Complete Blood Count")).Once(),
		repo.On("GetByCode", mock.Anything, "CBC").
			Return(nil, errs.NewObjectNotFoundError("code", "CBC")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*catalog.Test")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTestCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "CBC", created.Code())
	assert.True(t, created.IsActive())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateTestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateTestCommand{} // not constructed properly
	factory := new(MockTestUoWFactory)
	h := commands.NewCreateTestCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateTestCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTestCommand(t)

	existing := testFixture(t, true)
	repo := new(MockTestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TestRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "Complete Blood Count").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTestCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTestCommandHandler_Handle_DuplicateCode(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTestCommand(t)

	existing := testFixture(t, true)
	repo := new(MockTestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TestRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "Complete Blood Count").
			Return(nil, errs.NewObjectNotFoundError("name", "Complete Blood Count")).Once(),
		repo.On("GetByCode", mock.Anything, "CBC").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTestCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTestCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTestCommand(t)

	uow := new(MockUoW)
	factory := new(MockTestUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateTestCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateTestCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateTestCommand(t)

	repo := new(MockTestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TestRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "Complete Blood Count").
			Return(nil, errs.NewObjectNotFoundError("name", "Complete Blood Count")).Once(),
		repo.On("GetByCode", mock.Anything, "CBC").
			Return(nil, errs.NewObjectNotFoundError("code", "CBC")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*catalog.Test")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTestCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
