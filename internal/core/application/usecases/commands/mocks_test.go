package commands_test

import (
	"context"
	"io"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/model/payment"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
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

func (m *MockOrderRepository) GetAllByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, d *document.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepository) Update(ctx context.Context, d *document.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockDocumentRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*document.Document, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*document.Document), args.Error(1)
}

type MockAnalysisRepository struct{ mock.Mock }

func (m *MockAnalysisRepository) Add(ctx context.Context, a *analysis.Analysis) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnalysisRepository) Update(ctx context.Context, a *analysis.Analysis) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnalysisRepository) Get(ctx context.Context, id kernel.UUID) (*analysis.Analysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.Analysis), args.Error(1)
}

func (m *MockAnalysisRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*analysis.Analysis, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.Analysis), args.Error(1)
}

func (m *MockAnalysisRepository) GetAllInProgress(ctx context.Context) ([]*analysis.Analysis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*analysis.Analysis), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package.
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

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

func (m *MockUoW) AnalysisRepository() ports.AnalysisRepository {
	args := m.Called()
	return args.Get(0).(ports.AnalysisRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDocumentUoWFactory struct{ mock.Mock }

func (m *MockDocumentUoWFactory) Create() commands.DocumentUoW {
	args := m.Called()
	return args.Get(0).(commands.DocumentUoW)
}

type MockAnalysisUoWFactory struct{ mock.Mock }

func (m *MockAnalysisUoWFactory) Create() commands.AnalysisUoW {
	args := m.Called()
	return args.Get(0).(commands.AnalysisUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockFileStore struct{ mock.Mock }

func (m *MockFileStore) Write(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, content, size, contentType)
	return args.Error(0)
}

func (m *MockFileStore) Read(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockPaymentProcessor struct{ mock.Mock }

func (m *MockPaymentProcessor) CreateIntent(
	ctx context.Context,
	amount kernel.Money,
	currency string,
	orderID kernel.UUID,
) (ports.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency, orderID)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

func (m *MockPaymentProcessor) RetrieveIntent(ctx context.Context, intentID string) (ports.PaymentIntent, error) {
	args := m.Called(ctx, intentID)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyOrderStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status) {
	m.Called(ctx, orderID, from, to)
}

func (m *MockNotifier) NotifyAnalysisCompleted(ctx context.Context, orderID, analysisID kernel.UUID) {
	m.Called(ctx, orderID, analysisID)
}

func (m *MockNotifier) NotifyPaymentSucceeded(ctx context.Context, orderID, paymentID kernel.UUID) {
	m.Called(ctx, orderID, paymentID)
}
