package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order row from the database.
type GetOrderQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query. The caller must own the order or hold the
// operator role.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			total_amount,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if err = h.accessPolicy.AuthorizeOwnerOr(query.Principal(), resp.UserID, user.RoleOperator); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// scanOrderRow maps one orders row onto an OrderResponse. Shared with the
// list query, which selects the same columns.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id         uuid.UUID
		userID     uuid.UUID
		statusName string
		totalMinor int64
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := rows.Scan(&id, &userID, &statusName, &totalMinor, &createdAt, &updatedAt); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return OrderResponse{}, err
	}

	total, err := kernel.NewMoney(totalMinor)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:        orderID,
		UserID:    ownerID,
		Status:    status,
		Total:     total,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
