package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the active
// transaction, so multi-aggregate writes (completing a result and its
// order) commit or roll back as one unit. Client code must explicitly
// manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// TestRepository returns a TestRepository bound to the current transaction.
	TestRepository() TestRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ResultRepository returns a ResultRepository bound to the current transaction.
	ResultRepository() ResultRepository

	// Sequencer returns a Sequencer bound to the current transaction.
	Sequencer() Sequencer
}
