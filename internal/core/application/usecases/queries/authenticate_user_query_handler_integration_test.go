package queries_test

import (
	"context"
	"testing"
	"time"

	"docflow/internal/adapters/out/postgres/userrepo"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AuthenticateUserQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.AuthenticateUserQueryHandler
}

func (suite *AuthenticateUserQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))

	suite.handler = queries.NewAuthenticateUserQueryHandler(db)
}

func (suite *AuthenticateUserQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TestHandle_ValidCredentials_ReturnsIdentity() {
	userID := suite.seedUser("bob", "bob@example.com", "s3cret-pass", user.RoleOperator)

	query, err := queries.NewAuthenticateUserQuery("bob", "s3cret-pass")
	suite.Require().NoError(err)

	identity, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(userID, identity.UserID)
	suite.Equal("bob", identity.Username)
	suite.Equal("bob@example.com", identity.Email)
	suite.Equal(user.RoleOperator, identity.Role)

	principal := identity.Principal()
	suite.Equal(userID, principal.ID)
	suite.Equal(user.RoleOperator, principal.Role)
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TestHandle_WrongPassword_ReturnsUnauthenticated() {
	suite.seedUser("bob", "bob@example.com", "s3cret-pass", user.RoleUser)

	query, err := queries.NewAuthenticateUserQuery("bob", "wrong-pass")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *AuthenticateUserQueryHandlerTestSuite) TestHandle_UnknownUsername_ReturnsUnauthenticated() {
	query, err := queries.NewAuthenticateUserQuery("nobody", "whatever-pass")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrUnauthenticated)
}

func (suite *AuthenticateUserQueryHandlerTestSuite) seedUser(
	username, email, password string, role user.Role,
) kernel.UUID {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	aggregate, err := user.NewUser(kernel.NewUUID(), username, email, role, hash)
	suite.Require().NoError(err)

	repo := userrepo.NewGormUserRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate.ID()
}

// noopTracker satisfies the repository's tracker dependency in query tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func TestAuthenticateUserQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthenticateUserQueryHandlerTestSuite))
}
