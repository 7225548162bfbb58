package resultrepo

import (
	"context"
	"errors"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/result"
	"pathlab/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormResultRepository implements ResultRepository using GORM.
type GormResultRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormResultRepository creates a new GORM result repository.
func NewGormResultRepository(db *gorm.DB, tracker aggregateTracker) *GormResultRepository {
	return &GormResultRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new result to the database. A second result for the same
// order violates the unique index and surfaces as an ObjectConflictError.
func (r *GormResultRepository) Add(ctx context.Context, aggregate *result.Result) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectConflictErrorWithCause("result", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing result to the database, conditional on the row
// still holding the status the aggregate was loaded with.
func (r *GormResultRepository) Update(ctx context.Context, aggregate *result.Result) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	res := r.db.WithContext(ctx).Model(&ResultDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.LoadedStatus())).
		Updates(map[string]any{
			"value":  dto.Value,
			"notes":  dto.Notes,
			"status": dto.Status,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormResultRepository) classifyMissedUpdate(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ResultDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("result", id.String())
	}
	return errs.NewObjectConflictError("result", id.String())
}

// Get retrieves a result by ID.
func (r *GormResultRepository) Get(ctx context.Context, id kernel.UUID) (*result.Result, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ResultDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("result", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves the results recorded for an order.
func (r *GormResultRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*result.Result, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ResultDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	results := make([]*result.Result, 0, len(dtos))
	for _, dto := range dtos {
		res, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		results = append(results, res)
	}

	return results, nil
}
