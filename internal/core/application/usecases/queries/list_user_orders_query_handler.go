package queries

import (
	"context"

	"gorm.io/gorm"

	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
)

// ListUserOrdersQueryHandler reads all orders of one user from the database.
type ListUserOrdersQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewListUserOrdersQueryHandler creates a handler for order list queries.
func NewListUserOrdersQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query. The caller must be the listed user or hold
// the operator role.
func (h ListUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.accessPolicy.AuthorizeOwnerOr(query.Principal(), query.UserID(), user.RoleOperator); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			total_amount,
			created_at,
			updated_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
