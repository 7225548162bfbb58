// Package testrepo provides data transfer objects and mapping functions for
// catalog test persistence. It implements the repository pattern for the
// Test aggregate, converting between domain entities and database rows.
package testrepo

import (
	"time"

	"pathlab/internal/core/domain/model/catalog"
	"pathlab/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TestDTO represents the database structure for persisting catalog tests.
// Unique indexes on name and code back the catalog's uniqueness rules even
// under concurrent creation.
type TestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Code        string    `gorm:"uniqueIndex;not null"`
	SampleType  string    `gorm:"not null"`
	NormalRange string    `gorm:"not null"`
	PriceCents  int64     `gorm:"not null"`
	IsActive    bool      `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for catalog tests.
func (TestDTO) TableName() string {
	return "tests"
}

func fromDomain(test *catalog.Test) TestDTO {
	return TestDTO{
		ID:          test.ID().Bytes(),
		Name:        test.Name(),
		Code:        test.Code(),
		SampleType:  test.SampleType(),
		NormalRange: test.NormalRange(),
		PriceCents:  test.Price().Cents(),
		IsActive:    test.IsActive(),
	}
}

func toDomain(dto TestDTO) (*catalog.Test, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPriceFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreTest(id, dto.Name, dto.Code, dto.SampleType, dto.NormalRange, price, dto.IsActive)
}
