package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"docflow/internal/adapters/out/postgres/paymentrepo"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/payment"
	"docflow/internal/pkg/errs"

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

// PaymentRepositoryIntegrationTestSuite verifies payment persistence,
// including the database-level guarantee of one active payment per order.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_SecondActivePayment_ReturnsConflict() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	first := suite.createTestPayment(orderID, "pi_first")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestPayment(orderID, "pi_second")
	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_AfterFailedPayment_Succeeds() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	failed := suite.restoreTestPayment(orderID, "pi_failed", payment.Failed)
	suite.Require().NoError(suite.repository.Add(ctx, failed))

	retry := suite.createTestPayment(orderID, "pi_retry")
	suite.Require().NoError(suite.repository.Add(ctx, retry))

	var count int64
	suite.Require().NoError(suite.db.Model(&paymentrepo.PaymentDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByIntentID_ReturnsPayment() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	original := suite.createTestPayment(orderID, "pi_lookup")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.GetByIntentID(ctx, "pi_lookup")
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(orderID, retrieved.OrderID())
	suite.Equal(payment.Pending, retrieved.Status())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByIntentID_UnknownIntent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByIntentID(ctx, "pi_missing")

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByOrderID_ReturnsNewestPayment() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	older := suite.restoreTestPaymentAt(orderID, "pi_older", payment.Failed, time.Now().Add(-2*time.Hour))
	newer := suite.restoreTestPaymentAt(orderID, "pi_newer", payment.Pending, time.Now().Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	retrieved, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(newer.ID(), retrieved.ID())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_MirroredStatus_Persisted() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	testPayment := suite.createTestPayment(orderID, "pi_update")
	suite.Require().NoError(suite.repository.Add(ctx, testPayment))

	testPayment.MirrorProcessorStatus("succeeded")
	suite.Require().NoError(suite.repository.Update(ctx, testPayment))

	retrieved, err := suite.repository.Get(ctx, testPayment.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Succeeded, retrieved.Status())
}

func (suite *PaymentRepositoryIntegrationTestSuite) createTestPayment(orderID kernel.UUID, intentID string) *payment.Payment {
	amount, err := kernel.NewMoney(9900)
	suite.Require().NoError(err)

	p, err := payment.NewPayment(kernel.NewUUID(), orderID, intentID, amount, "USD")
	suite.Require().NoError(err)
	return p
}

func (suite *PaymentRepositoryIntegrationTestSuite) restoreTestPayment(
	orderID kernel.UUID, intentID string, status payment.Status,
) *payment.Payment {
	return suite.restoreTestPaymentAt(orderID, intentID, status, time.Now())
}

func (suite *PaymentRepositoryIntegrationTestSuite) restoreTestPaymentAt(
	orderID kernel.UUID, intentID string, status payment.Status, createdAt time.Time,
) *payment.Payment {
	amount, err := kernel.NewMoney(9900)
	suite.Require().NoError(err)

	p, err := payment.RestorePayment(kernel.NewUUID(), orderID, intentID, amount, "USD", status, createdAt, createdAt)
	suite.Require().NoError(err)
	return p
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
