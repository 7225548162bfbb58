package testrepo_test

import (
	"context"
	"testing"
	"time"

	"pathlab/internal/adapters/out/postgres/testrepo"
	"pathlab/internal/core/domain/model/catalog"
	"pathlab/internal/core/domain/model/kernel"
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

// TestRepositoryIntegrationTestSuite provides integration tests for
// TestRepository using PostgreSQL containers.
type TestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *testrepo.GormTestRepository
	tracker    *MockAggregateTracker
}

func (suite *TestRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&testrepo.TestDTO{}))
}

func (suite *TestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tests").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = testrepo.NewGormTestRepository(suite.db, suite.tracker)
}

func (suite *TestRepositoryIntegrationTestSuite) newTest(name, code string) *catalog.Test {
	price, err := kernel.NewPriceFromCents(5000)
	suite.Require().NoError(err)
	test, err := catalog.NewTest(kernel.NewUUID(), name, code, "Blood", "4.5-11.0", price, true)
	suite.Require().NoError(err)
	return test
}

func (suite *TestRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	test := suite.newTest("Complete Blood Count", "CBC")

	suite.Require().NoError(suite.repository.Add(ctx, test))

	loaded, err := suite.repository.Get(ctx, test.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(test))
	suite.Equal("Complete Blood Count", loaded.Name())
	suite.Equal("CBC", loaded.Code())
	suite.Equal(int64(5000), loaded.Price().Cents())
	suite.True(loaded.IsActive())
}

func (suite *TestRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TestRepositoryIntegrationTestSuite) TestGetByNameAndCode() {
	ctx := context.Background()
	test := suite.newTest("Lipid Panel", "LIPID")
	suite.Require().NoError(suite.repository.Add(ctx, test))

	byName, err := suite.repository.GetByName(ctx, "Lipid Panel")
	suite.Require().NoError(err)
	suite.True(byName.IsEqual(test))

	byCode, err := suite.repository.GetByCode(ctx, "LIPID")
	suite.Require().NoError(err)
	suite.True(byCode.IsEqual(test))

	_, err = suite.repository.GetByName(ctx, "lipid panel")
	suite.Require().Error(err, "name lookup is case-sensitive")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TestRepositoryIntegrationTestSuite) TestAdd_DuplicateNameConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newTest("Complete Blood Count", "CBC")))

	err := suite.repository.Add(ctx, suite.newTest("Complete Blood Count", "CBC2"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectConflict)
}

func (suite *TestRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	test := suite.newTest("Complete Blood Count", "CBC")
	suite.Require().NoError(suite.repository.Add(ctx, test))

	newPrice, err := kernel.NewPriceFromCents(7550)
	suite.Require().NoError(err)
	suite.Require().NoError(test.ChangePrice(newPrice))
	test.Deactivate()

	suite.Require().NoError(suite.repository.Update(ctx, test))

	loaded, err := suite.repository.Get(ctx, test.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(7550), loaded.Price().Cents())
	suite.False(loaded.IsActive())
}

func (suite *TestRepositoryIntegrationTestSuite) TestUpdate_MissingRow() {
	err := suite.repository.Update(context.Background(), suite.newTest("Glucose", "GLU"))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestTestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TestRepositoryIntegrationTestSuite))
}
