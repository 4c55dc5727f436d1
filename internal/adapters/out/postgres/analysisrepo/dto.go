// Package analysisrepo provides data transfer objects and mapping functions
// for analysis persistence. The order_id column carries a unique index so the
// database enforces the single analysis slot per order.
package analysisrepo

import (
	"time"

	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AnalysisDTO represents the database structure for persisting analysis
// aggregates.
type AnalysisDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Status      string    `gorm:"not null"`
	Result      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for analysis entities.
func (AnalysisDTO) TableName() string {
	return "analyses"
}

func fromDomain(a *analysis.Analysis) AnalysisDTO {
	return AnalysisDTO{
		ID:          a.ID().Bytes(),
		OrderID:     a.OrderID().Bytes(),
		Status:      a.Status().String(),
		Result:      a.Result(),
		StartedAt:   a.StartedAt(),
		CompletedAt: a.CompletedAt(),
	}
}

func toDomain(dto AnalysisDTO) (*analysis.Analysis, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := analysis.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return analysis.RestoreAnalysis(id, orderID, status, dto.Result, dto.StartedAt, dto.CompletedAt)
}
