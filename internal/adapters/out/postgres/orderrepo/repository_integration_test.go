package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pathlab/internal/adapters/out/postgres/orderrepo"
	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers, covering persistence and the
// conditional-update concurrency rule.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	nextCode   int
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
	suite.nextCode = 1001
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newDraftOrder(orderDate time.Time) *order.Order {
	code := fmt.Sprintf("LTO-%d", suite.nextCode)
	suite.nextCode++

	o, err := order.RestoreOrder(
		kernel.NewUUID(), code, "Jane Doe", "555-0101",
		kernel.NewUUID(), orderDate, order.Draft,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	o := suite.newDraftOrder(order.DayOf(time.Now()))

	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.Equal(o.Code(), loaded.Code())
	suite.Equal("Jane Doe", loaded.PatientName())
	suite.Equal(order.Draft, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode() {
	ctx := context.Background()
	o := suite.newDraftOrder(order.DayOf(time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.GetByCode(ctx, o.Code())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))

	_, err = suite.repository.GetByCode(ctx, "LTO-9999")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Transition() {
	ctx := context.Background()
	o := suite.newDraftOrder(order.DayOf(time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.TransitionTo(order.Ordered))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ordered, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LostRaceIsConflict() {
	ctx := context.Background()
	o := suite.newDraftOrder(order.DayOf(time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	// Two actors load the same Draft order.
	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	// First actor confirms the order.
	suite.Require().NoError(first.TransitionTo(order.Ordered))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// Second actor's cancellation was decided against a stale status.
	suite.Require().NoError(second.Cancel())
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectConflict)

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ordered, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingRow() {
	o := suite.newDraftOrder(order.DayOf(time.Now()))
	err := suite.repository.Update(context.Background(), o)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllExpiredDrafts() {
	ctx := context.Background()
	today := order.DayOf(time.Now())

	expiredDraft := suite.newDraftOrder(today.AddDate(0, 0, -2))
	todayDraft := suite.newDraftOrder(today)
	suite.Require().NoError(suite.repository.Add(ctx, expiredDraft))
	suite.Require().NoError(suite.repository.Add(ctx, todayDraft))

	// An old but already confirmed order must not be picked up.
	confirmed, err := order.RestoreOrder(
		kernel.NewUUID(), "LTO-9001", "John Roe", "555-0102",
		kernel.NewUUID(), today.AddDate(0, 0, -2), order.Ordered,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))

	expired, err := suite.repository.GetAllExpiredDrafts(ctx, today)
	suite.Require().NoError(err)
	suite.Require().Len(expired, 1)
	suite.True(expired[0].IsEqual(expiredDraft))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
