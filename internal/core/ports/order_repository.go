package ports

import (
	"context"
	"time"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for Order aggregates.
//
// Update is conditional on the status the aggregate was loaded with
// (Order.LoadedStatus): implementations must fail with an
// ObjectConflictError when the stored status no longer matches, so a losing
// concurrent writer never silently overwrites a transition.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under the
	// optimistic-concurrency rule described above.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order by its series-issued code, e.g. "LTO-1001".
	// Returns an ObjectNotFoundError when no such order exists.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// GetAllExpiredDrafts retrieves orders still in Draft whose order date
	// lies strictly before the given day. Used by the expiry job.
	GetAllExpiredDrafts(ctx context.Context, before time.Time) ([]*order.Order, error)
}
