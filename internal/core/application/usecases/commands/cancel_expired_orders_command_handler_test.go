package commands_test

import (
	"testing"

	"pathlab/internal/core/application/usecases/commands"
	"pathlab/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelExpiredOrdersCommandHandler_Handle_CancelsDrafts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	first := orderFixture(t, order.Draft)
	second := orderFixture(t, order.Draft)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllExpiredDrafts", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelExpiredOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelExpiredOrdersCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelExpiredOrdersCommand()
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllExpiredDrafts", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelExpiredOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, cancelled)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
