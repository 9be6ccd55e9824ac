package userrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/userrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"

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

// UserRepositoryIntegrationTestSuite provides integration tests for
// UserRepository using PostgreSQL containers to verify persistence behavior.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		DriverName: "postgres",
		DSN:        connStr,
	}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ValidUser_Success() {
	ctx := context.Background()
	u := suite.createTestUser("jane@example.com")

	suite.tracker.On("TrackAggregate", u.ID(), u).Once()

	err := suite.repository.Add(ctx, u)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(u.Email(), restored.Email())
	suite.Equal(u.PasswordHash(), restored.PasswordHash())
	suite.False(restored.IsAdmin())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsConflict() {
	ctx := context.Background()
	first := suite.createTestUser("jane@example.com")
	duplicate := suite.createTestUser("jane@example.com")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, duplicate)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_PersistsAddressChange() {
	ctx := context.Background()
	u := suite.createTestUser("jane@example.com")

	suite.tracker.On("TrackAggregate", u.ID(), u).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, u))

	suite.Require().NoError(u.UpdateAddress("34 Elm St"))
	suite.Require().NoError(suite.repository.Update(ctx, u))

	restored, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal("34 Elm St", restored.Address())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	u := suite.createTestUser("jane@example.com")

	suite.tracker.On("TrackAggregate", u.ID(), u).Once()
	suite.Require().NoError(suite.repository.Add(ctx, u))

	found, err := suite.repository.GetByEmail(ctx, "jane@example.com")
	suite.Require().NoError(err)
	suite.True(found.IsEqual(u))

	_, err = suite.repository.GetByEmail(ctx, "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_MissingUser_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) createTestUser(email string) *user.User {
	u, err := user.NewUser(
		kernel.NewUUID(), "Jane", "Doe", email, "+15550100", "12 Main St", "AAAA.BBBB")
	suite.Require().NoError(err)
	return u
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
