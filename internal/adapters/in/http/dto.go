package http

import (
	"time"

	"docflow/internal/core/application/usecases/queries"
)

// Request payloads.

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createOrderRequest struct {
	Total float64 `json:"total"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type createPaymentIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type confirmPaymentRequest struct {
	IntentID string `json:"intent_id"`
}

// Response payloads.

type tokenResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type orderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type documentResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type analysisResponse struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	Status      string     `json:"status"`
	Result      string     `json:"result,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type triggerAnalysisResponse struct {
	AnalysisID string `json:"analysis_id"`
	Outcome    string `json:"outcome"`
}

type paymentIntentResponse struct {
	PaymentID    string `json:"payment_id"`
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
}

type confirmPaymentResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

func toOrderResponse(row queries.OrderResponse) orderResponse {
	return orderResponse{
		ID:        row.ID.String(),
		UserID:    row.UserID.String(),
		Status:    row.Status.String(),
		Total:     row.Total.Float(),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func toDocumentResponse(row queries.DocumentResponse) documentResponse {
	return documentResponse{
		ID:          row.ID.String(),
		OrderID:     row.OrderID.String(),
		Filename:    row.Filename,
		ContentType: row.ContentType,
		Status:      row.Status.String(),
		UploadedAt:  row.UploadedAt,
	}
}

func toAnalysisResponse(row queries.AnalysisResponse) analysisResponse {
	return analysisResponse{
		ID:          row.ID.String(),
		OrderID:     row.OrderID.String(),
		Status:      row.Status.String(),
		Result:      row.Result,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
}
