// Package orderrepo provides data transfer objects and mapping functions
// for lab test order persistence. It implements the repository pattern for
// the Order aggregate, including the optimistic-concurrency update rule.
package orderrepo

import (
	"time"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting orders. The
// series-issued code carries a unique index; status and order date are
// indexed for worklist and expiry queries.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"uniqueIndex;not null"`
	PatientName  string    `gorm:"not null"`
	PatientPhone string    `gorm:"not null"`
	TestID       uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderDate    time.Time `gorm:"index;not null"`
	Status       int       `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Bytes(),
		Code:         o.Code(),
		PatientName:  o.PatientName(),
		PatientPhone: o.PatientPhone(),
		TestID:       o.TestID().Bytes(),
		OrderDate:    o.OrderDate(),
		Status:       int(o.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	testID, err := kernel.UUIDFromBytes(dto.TestID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		dto.PatientName,
		dto.PatientPhone,
		testID,
		dto.OrderDate,
		order.Status(dto.Status),
	)
}
