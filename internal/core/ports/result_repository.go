package ports

import (
	"context"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/result"
)

// ResultRepository defines the persistence contract for Result aggregates.
// Update follows the same conditional-on-loaded-status rule as
// OrderRepository.
type ResultRepository interface {
	// Add persists a new result aggregate. Implementations enforce the
	// at-most-one-result-per-order invariant with a unique index on the
	// order reference.
	Add(ctx context.Context, aggregate *result.Result) error

	// Update persists changes to an existing result aggregate.
	Update(ctx context.Context, aggregate *result.Result) error

	// Get retrieves a result by its unique identifier.
	// Returns an ObjectNotFoundError when no such result exists.
	Get(ctx context.Context, id kernel.UUID) (*result.Result, error)

	// GetAllByOrder retrieves the results recorded for an order.
	// Returns an empty slice when the order has none.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*result.Result, error)
}
