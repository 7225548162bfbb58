package queries

import (
	"time"

	"pathlab/internal/core/domain/model/kernel"
)

// TestResponse represents a catalog test row.
type TestResponse struct {
	ID          kernel.UUID
	Name        string
	Code        string
	SampleType  string
	NormalRange string
	Price       kernel.Price
	IsActive    bool
}

// OrderResponse represents a lab test order row, joined with the name of
// the ordered test.
type OrderResponse struct {
	ID           kernel.UUID
	Code         string
	PatientName  string
	PatientPhone string
	TestID       kernel.UUID
	TestName     string
	OrderDate    time.Time
	Status       string
}

// ResultResponse represents a recorded result row.
type ResultResponse struct {
	ID      kernel.UUID
	OrderID kernel.UUID
	Value   string
	Notes   string
	Status  string
}
