package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// GetAnalysisQueryHandler reads the analysis row of an order. The order
// is checked first so "unknown order" and "order with no analysis yet"
// fail with differently named not found errors.
type GetAnalysisQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetAnalysisQueryHandler creates a handler for analysis queries.
func NewGetAnalysisQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetAnalysisQueryHandler {
	return GetAnalysisQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query. The caller must own the order or hold the
// operator role.
func (h GetAnalysisQueryHandler) Handle(ctx context.Context, query GetAnalysisQuery) (AnalysisResponse, error) {
	if err := query.Validate(); err != nil {
		return AnalysisResponse{}, err
	}

	ownerID, err := h.orderOwner(ctx, query.OrderID())
	if err != nil {
		return AnalysisResponse{}, err
	}

	if err = h.accessPolicy.AuthorizeOwnerOr(query.Principal(), ownerID, user.RoleOperator); err != nil {
		return AnalysisResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			result,
			started_at,
			completed_at
		FROM analyses
		WHERE order_id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return AnalysisResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AnalysisResponse{}, err
		}
		return AnalysisResponse{}, errs.NewObjectNotFoundError("analysis", query.OrderID())
	}

	var (
		id          uuid.UUID
		orderID     uuid.UUID
		statusName  string
		result      string
		startedAt   time.Time
		completedAt sql.NullTime
	)
	if err = rows.Scan(&id, &orderID, &statusName, &result, &startedAt, &completedAt); err != nil {
		return AnalysisResponse{}, err
	}

	analysisID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AnalysisResponse{}, err
	}

	owningOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return AnalysisResponse{}, err
	}

	status, err := analysis.StatusFromString(statusName)
	if err != nil {
		return AnalysisResponse{}, err
	}

	resp := AnalysisResponse{
		ID:        analysisID,
		OrderID:   owningOrderID,
		Status:    status,
		Result:    result,
		StartedAt: startedAt,
	}
	if completedAt.Valid {
		resp.CompletedAt = &completedAt.Time
	}

	return resp, nil
}

func (h GetAnalysisQueryHandler) orderOwner(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT user_id FROM orders WHERE id = ?
	`, orderID.String()).Rows()
	if err != nil {
		return kernel.UUID{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return kernel.UUID{}, err
		}
		return kernel.UUID{}, errs.NewObjectNotFoundError("order", orderID)
	}

	var ownerID uuid.UUID
	if err = rows.Scan(&ownerID); err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(ownerID[:])
}
