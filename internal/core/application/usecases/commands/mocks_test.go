package commands_test

import (
	"context"
	"testing"
	"time"

	"pathlab/internal/core/application/usecases/commands"
	"pathlab/internal/core/domain/model/catalog"
	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/core/domain/model/result"
	"pathlab/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testFixture(t *testing.T, active bool) *catalog.Test {
	t.Helper()
	price, err := kernel.NewPriceFromCents(5000)
	require.NoError(t, err)
	fixture, err := catalog.RestoreTest(
		kernel.NewUUID(), "Complete Blood Count", "CBC", "Blood", "4.5-11.0", price, active,
	)
	require.NoError(t, err)
	return fixture
}

func orderFixture(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	fixture, err := order.RestoreOrder(
		kernel.NewUUID(), "LTO-1001", "Jane Doe", "555-0101",
		kernel.NewUUID(), order.DayOf(time.Now()), status,
	)
	require.NoError(t, err)
	return fixture
}

func resultFixture(t *testing.T, orderID kernel.UUID, status result.Status) *result.Result {
	t.Helper()
	fixture, err := result.RestoreResult(kernel.NewUUID(), orderID, "7.2", "", status)
	require.NoError(t, err)
	return fixture
}

type MockTestRepository struct{ mock.Mock }

func (m *MockTestRepository) Add(ctx context.Context, t *catalog.Test) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestRepository) Update(ctx context.Context, t *catalog.Test) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Test, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Test), args.Error(1)
}

func (m *MockTestRepository) GetByName(ctx context.Context, name string) (*catalog.Test, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Test), args.Error(1)
}

func (m *MockTestRepository) GetByCode(ctx context.Context, code string) (*catalog.Test, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Test), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllExpiredDrafts(ctx context.Context, before time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockResultRepository struct{ mock.Mock }

func (m *MockResultRepository) Add(ctx context.Context, r *result.Result) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResultRepository) Update(ctx context.Context, r *result.Result) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResultRepository) Get(ctx context.Context, id kernel.UUID) (*result.Result, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*result.Result), args.Error(1)
}

func (m *MockResultRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*result.Result, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*result.Result), args.Error(1)
}

type MockSequencer struct{ mock.Mock }

func (m *MockSequencer) Next(ctx context.Context, seriesName string, prefix string, start int64) (string, error) {
	args := m.Called(ctx, seriesName, prefix, start)
	return args.String(0), args.Error(1)
}

// MockUoW satisfies every unit-of-work composition the command handlers
// use, so one mock type serves all tests in the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TestRepository() ports.TestRepository {
	args := m.Called()
	return args.Get(0).(ports.TestRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ResultRepository() ports.ResultRepository {
	args := m.Called()
	return args.Get(0).(ports.ResultRepository)
}

func (m *MockUoW) Sequencer() ports.Sequencer {
	args := m.Called()
	return args.Get(0).(ports.Sequencer)
}

type MockTestUoWFactory struct{ mock.Mock }

func (m *MockTestUoWFactory) Create() commands.TestUoW {
	args := m.Called()
	return args.Get(0).(commands.TestUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockResultUoWFactory struct{ mock.Mock }

func (m *MockResultUoWFactory) Create() commands.ResultUoW {
	args := m.Called()
	return args.Get(0).(commands.ResultUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
