package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/guard"
)

var ErrGetAnalysisQueryIsNotConstructed = errors.New(
	"GetAnalysisQuery must be created via NewGetAnalysisQuery constructor",
)

// GetAnalysisQuery retrieves the analysis attached to an order. An
// unknown order and an order without an analysis both yield not found,
// distinguished by the parameter name carried in the error.
type GetAnalysisQuery struct {
	orderID   kernel.UUID
	principal user.Principal

	guard guard.ConstructorGuard
}

// NewGetAnalysisQuery creates a query to retrieve an order's analysis.
func NewGetAnalysisQuery(orderID kernel.UUID, principal user.Principal) (GetAnalysisQuery, error) {
	if err := errors.Join(orderID.Validate(), principal.Validate()); err != nil {
		return GetAnalysisQuery{}, err
	}

	return GetAnalysisQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAnalysisQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalysisQueryIsNotConstructed)
}

// OrderID returns the identifier of the analyzed order.
func (q GetAnalysisQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the caller's identity.
func (q GetAnalysisQuery) Principal() user.Principal {
	return q.principal
}

// AnalysisResponse represents a single analysis row.
type AnalysisResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Status      analysis.Status
	Result      string
	StartedAt   time.Time
	CompletedAt *time.Time
}
