// Package documentrepo provides data transfer objects and mapping functions
// for document persistence.
package documentrepo

import (
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO represents the database structure for persisting document
// aggregates. The storage key points at the backing object in the file store.
type DocumentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Filename    string    `gorm:"not null"`
	StorageKey  string    `gorm:"not null"`
	ContentType string
	Status      string `gorm:"not null"`
	UploadedAt  time.Time
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "documents"
}

func fromDomain(d *document.Document) DocumentDTO {
	return DocumentDTO{
		ID:          d.ID().Bytes(),
		OrderID:     d.OrderID().Bytes(),
		Filename:    d.Filename(),
		StorageKey:  d.StorageKey(),
		ContentType: d.ContentType(),
		Status:      d.Status().String(),
		UploadedAt:  d.UploadedAt(),
	}
}

func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := document.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return document.RestoreDocument(
		id, orderID,
		dto.Filename, dto.StorageKey, dto.ContentType,
		status, dto.UploadedAt,
	)
}
