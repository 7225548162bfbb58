package queries

import (
	"errors"

	"pathlab/internal/pkg/guard"
)

var ErrGetAllTestsQueryIsNotConstructed = errors.New(
	"GetAllTestsQuery must be created via NewGetAllTestsQuery constructor",
)

// GetAllTestsQuery retrieves the test catalog, optionally restricted to
// active (orderable) tests.
//
// Example:
//
//	query := NewGetAllTestsQuery(true)
//	handler := NewGetAllTestsQueryHandler(db)
//
//	tests, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load catalog: %w", err)
//	}
type GetAllTestsQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetAllTestsQuery creates a query for the test catalog. With activeOnly
// set, deactivated tests are excluded.
func NewGetAllTestsQuery(activeOnly bool) GetAllTestsQuery {
	return GetAllTestsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTestsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTestsQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated tests are excluded.
func (q GetAllTestsQuery) ActiveOnly() bool {
	return q.activeOnly
}
