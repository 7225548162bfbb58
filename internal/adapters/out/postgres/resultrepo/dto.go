// Package resultrepo provides data transfer objects and mapping functions
// for result persistence. The unique index on the order reference enforces
// the at-most-one-result-per-order rule at the storage level.
package resultrepo

import (
	"time"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/result"

	"github.com/google/uuid"
)

// ResultDTO represents the database structure for persisting results.
type ResultDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Value     string    `gorm:"not null"`
	Notes     string
	Status    int `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for results.
func (ResultDTO) TableName() string {
	return "results"
}

func fromDomain(r *result.Result) ResultDTO {
	return ResultDTO{
		ID:      r.ID().Bytes(),
		OrderID: r.OrderID().Bytes(),
		Value:   r.Value(),
		Notes:   r.Notes(),
		Status:  int(r.Status()),
	}
}

func toDomain(dto ResultDTO) (*result.Result, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return result.RestoreResult(id, orderID, dto.Value, dto.Notes, result.Status(dto.Status))
}
