package queries

import (
	"errors"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/guard"
)

var ErrGetResultsQueryIsNotConstructed = errors.New(
	"GetResultsQuery must be created via NewGetResultsQuery constructor",
)

// GetResultsQuery retrieves recorded results, optionally restricted to one
// order and to completed results only.
type GetResultsQuery struct {
	orderID       *kernel.UUID
	completedOnly bool

	guard guard.ConstructorGuard
}

// NewGetResultsQuery creates a results query. Pass a nil orderID to cover
// all orders.
func NewGetResultsQuery(orderID *kernel.UUID, completedOnly bool) (GetResultsQuery, error) {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetResultsQuery{}, err
		}
	}

	return GetResultsQuery{
		orderID:       orderID,
		completedOnly: completedOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetResultsQuery) Validate() error {
	return q.guard.Validate(ErrGetResultsQueryIsNotConstructed)
}

// OrderID returns the order filter, or nil for all orders.
func (q GetResultsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// CompletedOnly reports whether draft results are excluded.
func (q GetResultsQuery) CompletedOnly() bool {
	return q.completedOnly
}
