// Package ports defines the persistence contracts between the core and its
// storage adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"pathlab/internal/core/domain/model/catalog"
	"pathlab/internal/core/domain/model/kernel"
)

// TestRepository defines the persistence contract for catalog Test
// aggregates. Lookups by name and code back the catalog's uniqueness
// checks.
type TestRepository interface {
	// Add persists a new test aggregate.
	Add(ctx context.Context, aggregate *catalog.Test) error

	// Update persists changes to an existing test aggregate.
	Update(ctx context.Context, aggregate *catalog.Test) error

	// Get retrieves a test by its unique identifier.
	// Returns an ObjectNotFoundError when no such test exists.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Test, error)

	// GetByName retrieves a test by its exact (case-sensitive) name.
	// Returns an ObjectNotFoundError when no such test exists.
	GetByName(ctx context.Context, name string) (*catalog.Test, error)

	// GetByCode retrieves a test by its exact (case-sensitive) code.
	// Returns an ObjectNotFoundError when no such test exists.
	GetByCode(ctx context.Context, code string) (*catalog.Test, error)
}
