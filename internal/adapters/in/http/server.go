// Package http provides the REST API surface. Handlers translate requests
// into commands and queries and map use case errors onto HTTP statuses;
// no business rules live here.
package http

import (
	"net/http"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	tokens    TokenManager
	fileStore ports.FileStore

	registerUserHandler        commands.RegisterUserCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	uploadDocumentHandler      commands.UploadDocumentCommandHandler
	deleteDocumentHandler      commands.DeleteDocumentCommandHandler
	triggerAnalysisHandler     commands.TriggerAnalysisCommandHandler
	createPaymentIntentHandler commands.CreatePaymentIntentCommandHandler
	confirmPaymentHandler      commands.ConfirmPaymentCommandHandler

	authenticateUserHandler queries.AuthenticateUserQueryHandler
	getUserHandler          queries.GetUserQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
	listUserOrdersHandler   queries.ListUserOrdersQueryHandler
	getDocumentHandler      queries.GetDocumentQueryHandler
	getAnalysisHandler      queries.GetAnalysisQueryHandler
}

// ServerDeps bundles the collaborators required by the HTTP server.
type ServerDeps struct {
	Tokens    TokenManager
	FileStore ports.FileStore

	RegisterUser        commands.RegisterUserCommandHandler
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrderStatus   commands.UpdateOrderStatusCommandHandler
	UploadDocument      commands.UploadDocumentCommandHandler
	DeleteDocument      commands.DeleteDocumentCommandHandler
	TriggerAnalysis     commands.TriggerAnalysisCommandHandler
	CreatePaymentIntent commands.CreatePaymentIntentCommandHandler
	ConfirmPayment      commands.ConfirmPaymentCommandHandler

	AuthenticateUser queries.AuthenticateUserQueryHandler
	GetUser          queries.GetUserQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	ListUserOrders   queries.ListUserOrdersQueryHandler
	GetDocument      queries.GetDocumentQueryHandler
	GetAnalysis      queries.GetAnalysisQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		tokens:                     deps.Tokens,
		fileStore:                  deps.FileStore,
		registerUserHandler:        deps.RegisterUser,
		createOrderHandler:         deps.CreateOrder,
		updateOrderStatusHandler:   deps.UpdateOrderStatus,
		uploadDocumentHandler:      deps.UploadDocument,
		deleteDocumentHandler:      deps.DeleteDocument,
		triggerAnalysisHandler:     deps.TriggerAnalysis,
		createPaymentIntentHandler: deps.CreatePaymentIntent,
		confirmPaymentHandler:      deps.ConfirmPayment,
		authenticateUserHandler:    deps.AuthenticateUser,
		getUserHandler:             deps.GetUser,
		getOrderHandler:            deps.GetOrder,
		listUserOrdersHandler:      deps.ListUserOrders,
		getDocumentHandler:         deps.GetDocument,
		getAnalysisHandler:         deps.GetAnalysis,
	}
}

// RegisterRoutes mounts the API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", AuthMiddleware(s.tokens))
	authed.GET("/auth/me", s.Me)

	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/:orderID", s.GetOrder)
	authed.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)

	authed.POST("/orders/:orderID/documents", s.UploadDocument)
	authed.GET("/documents/:documentID", s.GetDocument)
	authed.GET("/documents/:documentID/download", s.DownloadDocument)
	authed.DELETE("/documents/:documentID", s.DeleteDocument)

	authed.POST("/orders/:orderID/analysis", s.TriggerAnalysis)
	authed.GET("/orders/:orderID/analysis", s.GetAnalysis)

	authed.POST("/orders/:orderID/payment-intent", s.CreatePaymentIntent)
	authed.POST("/orders/:orderID/payment-confirm", s.ConfirmPayment)
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	role := user.RoleUser
	if req.Role != "" {
		parsed, err := user.RoleFromString(req.Role)
		if err != nil {
			return writeError(ctx, err)
		}
		role = parsed
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Username, req.Email, req.Password, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: userID.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	query, err := queries.NewAuthenticateUserQuery(req.Username, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	identity, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.Issue(identity.Principal())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tokenResponse{Token: token})
}

// Me handles GET /api/v1/auth/me.
func (s *Server) Me(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserQuery(principal.ID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponse{
		ID:       profile.ID.String(),
		Username: profile.Username,
		Email:    profile.Email,
		Role:     profile.Role.String(),
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	total, err := kernel.MoneyFromFloat(req.Total)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, principal.ID, total)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListUserOrdersQuery(principal.ID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.listUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, len(rows))
	for i, row := range rows {
		response[i] = toOrderResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(row))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadDocument handles POST /api/v1/orders/:orderID/documents.
// Expects a multipart form with the file under the "file" field.
func (s *Server) UploadDocument(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return writeError(ctx, errs.NewValueIsRequiredError("file"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("file"))
	}
	defer file.Close()

	documentID := kernel.NewUUID()
	cmd, err := commands.NewUploadDocumentCommand(
		documentID, orderID,
		principal,
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		file, fileHeader.Size,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.uploadDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: documentID.String()})
}

// GetDocument handles GET /api/v1/documents/:documentID.
func (s *Server) GetDocument(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	documentID, err := kernel.UUIDFromString(ctx.Param("documentID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDocumentQuery(documentID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getDocumentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDocumentResponse(row))
}

// DownloadDocument handles GET /api/v1/documents/:documentID/download.
// Streams the stored bytes after the same ownership check as GetDocument.
func (s *Server) DownloadDocument(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	documentID, err := kernel.UUIDFromString(ctx.Param("documentID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDocumentQuery(documentID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getDocumentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	content, err := s.fileStore.Read(ctx.Request().Context(), row.StorageKey)
	if err != nil {
		return writeError(ctx, err)
	}
	defer content.Close()

	contentType := row.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+row.Filename+`"`)
	return ctx.Stream(http.StatusOK, contentType, content)
}

// DeleteDocument handles DELETE /api/v1/documents/:documentID.
func (s *Server) DeleteDocument(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	documentID, err := kernel.UUIDFromString(ctx.Param("documentID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteDocumentCommand(documentID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TriggerAnalysis handles POST /api/v1/orders/:orderID/analysis.
func (s *Server) TriggerAnalysis(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTriggerAnalysisCommand(kernel.NewUUID(), orderID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.triggerAnalysisHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	code := http.StatusCreated
	if result.Outcome == commands.TriggerOutcomeResumed {
		code = http.StatusOK
	}

	return ctx.JSON(code, triggerAnalysisResponse{
		AnalysisID: result.AnalysisID.String(),
		Outcome:    string(result.Outcome),
	})
}

// GetAnalysis handles GET /api/v1/orders/:orderID/analysis.
func (s *Server) GetAnalysis(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAnalysisQuery(orderID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	row, err := s.getAnalysisHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAnalysisResponse(row))
}

// CreatePaymentIntent handles POST /api/v1/orders/:orderID/payment-intent.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req createPaymentIntentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	amount, err := kernel.MoneyFromFloat(req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(kernel.NewUUID(), orderID, principal, amount, req.Currency)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createPaymentIntentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentIntentResponse{
		PaymentID:    result.PaymentID.String(),
		IntentID:     result.IntentID,
		ClientSecret: result.ClientSecret,
	})
}

// ConfirmPayment handles POST /api/v1/orders/:orderID/payment-confirm.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req confirmPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("request body"))
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, req.IntentID, principal)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, confirmPaymentResponse{
		PaymentID: result.PaymentID.String(),
		Status:    result.Status.String(),
	})
}
