package cmd

import (
	"log/slog"
	"time"

	httpin "docflow/internal/adapters/in/http"
	"docflow/internal/adapters/out/notify"
	"docflow/internal/adapters/out/postgres"
	"docflow/internal/adapters/out/stripeclient"
	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/ports"
	"docflow/internal/jobs"

	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	fileStore    ports.FileStore
	processor    ports.PaymentProcessor
	notifier     ports.Notifier
	accessPolicy services.AccessPolicy
	tokens       httpin.TokenManager
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, fileStore ports.FileStore, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		fileStore:    fileStore,
		processor:    stripeclient.NewClient(config.StripeBaseURL, config.StripeSecretKey),
		notifier:     notify.NewSlogNotifier(logger),
		accessPolicy: services.NewAccessPolicy(),
		tokens:       httpin.NewTokenManager(config.JWTSecret, tokenTTL),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.accessPolicy, c.notifier)
}

func (c *CompositionRoot) CreateUploadDocumentCommandHandler() commands.UploadDocumentCommandHandler {
	return commands.NewUploadDocumentCommandHandler(c.documentUoWFactory(), c.fileStore, c.accessPolicy)
}

func (c *CompositionRoot) CreateDeleteDocumentCommandHandler() commands.DeleteDocumentCommandHandler {
	return commands.NewDeleteDocumentCommandHandler(c.documentUoWFactory(), c.fileStore, c.accessPolicy)
}

func (c *CompositionRoot) CreateTriggerAnalysisCommandHandler() commands.TriggerAnalysisCommandHandler {
	return commands.NewTriggerAnalysisCommandHandler(c.analysisUoWFactory(), c.accessPolicy)
}

func (c *CompositionRoot) CreateCompleteAnalysisCommandHandler() commands.CompleteAnalysisCommandHandler {
	return commands.NewCompleteAnalysisCommandHandler(c.analysisUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	return commands.NewCreatePaymentIntentCommandHandler(c.paymentUoWFactory(), c.processor, c.accessPolicy)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.paymentUoWFactory(), c.processor, c.accessPolicy, c.notifier)
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateGetDocumentQueryHandler() queries.GetDocumentQueryHandler {
	return queries.NewGetDocumentQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateGetAnalysisQueryHandler() queries.GetAnalysisQueryHandler {
	return queries.NewGetAnalysisQueryHandler(c.gormDB, c.accessPolicy)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.CreateCompleteAnalysisCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerDeps{
		Tokens:    c.tokens,
		FileStore: c.fileStore,

		RegisterUser:        c.CreateRegisterUserCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:   c.CreateUpdateOrderStatusCommandHandler(),
		UploadDocument:      c.CreateUploadDocumentCommandHandler(),
		DeleteDocument:      c.CreateDeleteDocumentCommandHandler(),
		TriggerAnalysis:     c.CreateTriggerAnalysisCommandHandler(),
		CreatePaymentIntent: c.CreateCreatePaymentIntentCommandHandler(),
		ConfirmPayment:      c.CreateConfirmPaymentCommandHandler(),

		AuthenticateUser: c.CreateAuthenticateUserQueryHandler(),
		GetUser:          c.CreateGetUserQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		ListUserOrders:   c.CreateListUserOrdersQueryHandler(),
		GetDocument:      c.CreateGetDocumentQueryHandler(),
		GetAnalysis:      c.CreateGetAnalysisQueryHandler(),
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) documentUoWFactory() commands.DocumentUoWFactory {
	return FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) analysisUoWFactory() commands.AnalysisUoWFactory {
	return FuncAnalysisUoWFactory(func() commands.AnalysisUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncAnalysisUoWFactory func() commands.AnalysisUoW

func (f FuncAnalysisUoWFactory) Create() commands.AnalysisUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
