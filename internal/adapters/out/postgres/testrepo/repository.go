package testrepo

import (
	"context"
	"errors"

	"pathlab/internal/core/domain/model/catalog"
	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTestRepository implements TestRepository using GORM.
type GormTestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTestRepository creates a new GORM catalog test repository.
func NewGormTestRepository(db *gorm.DB, tracker aggregateTracker) *GormTestRepository {
	return &GormTestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog test to the database.
func (r *GormTestRepository) Add(ctx context.Context, aggregate *catalog.Test) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectConflictErrorWithCause("test", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog test to the database.
func (r *GormTestRepository) Update(ctx context.Context, aggregate *catalog.Test) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TestDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":         dto.Name,
		"code":         dto.Code,
		"sample_type":  dto.SampleType,
		"normal_range": dto.NormalRange,
		"price_cents":  dto.PriceCents,
		"is_active":    dto.IsActive,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectConflictErrorWithCause("test", aggregate.ID().String(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("test", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a catalog test by ID.
func (r *GormTestRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Test, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("test", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a catalog test by its exact name.
func (r *GormTestRepository) GetByName(ctx context.Context, name string) (*catalog.Test, error) {
	var dto TestDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("test", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a catalog test by its exact code.
func (r *GormTestRepository) GetByCode(ctx context.Context, code string) (*catalog.Test, error) {
	var dto TestDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("test", code)
		}
		return nil, err
	}

	return toDomain(dto)
}
