package analysisrepo

import (
	"context"
	"errors"

	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAnalysisRepository implements AnalysisRepository using GORM.
type GormAnalysisRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAnalysisRepository creates a new GORM analysis repository.
func NewGormAnalysisRepository(db *gorm.DB, tracker aggregateTracker) *GormAnalysisRepository {
	return &GormAnalysisRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new analysis to the database. A violation of the one analysis
// per order constraint is reported as a conflict.
func (r *GormAnalysisRepository) Add(ctx context.Context, aggregate *analysis.Analysis) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("an analysis already exists for this order")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing analysis to the database. All columns are written
// so that a resumed analysis clears its previous result and completion time.
func (r *GormAnalysisRepository) Update(ctx context.Context, aggregate *analysis.Analysis) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AnalysisDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("analysis", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an analysis by ID.
func (r *GormAnalysisRepository) Get(ctx context.Context, id kernel.UUID) (*analysis.Analysis, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AnalysisDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("analysis", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the analysis attached to the given order.
func (r *GormAnalysisRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*analysis.Analysis, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AnalysisDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("analysis", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInProgress retrieves analyses awaiting completion, oldest first.
func (r *GormAnalysisRepository) GetAllInProgress(ctx context.Context) ([]*analysis.Analysis, error) {
	var dtos []AnalysisDTO
	err := r.db.WithContext(ctx).
		Order("started_at ASC").
		Find(&dtos, "status = ?", analysis.InProgress.String()).Error
	if err != nil {
		return nil, err
	}

	analyses := make([]*analysis.Analysis, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}

	return analyses, nil
}
