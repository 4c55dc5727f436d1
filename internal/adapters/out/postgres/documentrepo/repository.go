package documentrepo

import (
	"context"
	"errors"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new document to the database.
func (r *GormDocumentRepository) Add(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing document to the database.
func (r *GormDocumentRepository) Update(ctx context.Context, aggregate *document.Document) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DocumentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("document", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a document record. The backing object in the file store
// is removed separately by the use case.
func (r *GormDocumentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DocumentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("document", id.String())
	}

	return nil
}

// Get retrieves a document by ID.
func (r *GormDocumentRepository) Get(ctx context.Context, id kernel.UUID) (*document.Document, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DocumentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrderID retrieves all documents attached to the given order,
// oldest upload first.
func (r *GormDocumentRepository) GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*document.Document, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Order("uploaded_at ASC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	documents := make([]*document.Document, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}

	return documents, nil
}
