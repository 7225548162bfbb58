// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, transaction management, and persistence. Unlike pure
// fire-and-forget CQRS, handlers return the mutated aggregate, because the
// workflow engine's contract is to hand the populated entity back to the
// calling shell.
package commands

import (
	"context"

	"pathlab/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends on the narrowest composition that covers
// the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TestRepoFactory provides access to the catalog repository within a transaction.
	TestRepoFactory interface {
		TestRepository() ports.TestRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ResultRepoFactory provides access to the result repository within a transaction.
	ResultRepoFactory interface {
		ResultRepository() ports.ResultRepository
	}

	// SequencerFactory provides access to the naming-series sequencer within a transaction.
	SequencerFactory interface {
		Sequencer() ports.Sequencer
	}

	// TestUoW manages transactions for catalog-only operations.
	TestUoW interface {
		TxManager
		TestRepoFactory
	}

	// TestUoWFactory creates new catalog unit of work instances.
	TestUoWFactory interface {
		Create() TestUoW
	}

	// OrderUoW manages transactions for order-only operations
	// (status transitions, expiry cancellation).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ResultUoW manages transactions spanning results and their owning
	// orders. Completing a result writes both aggregates in one unit.
	ResultUoW interface {
		TxManager
		ResultRepoFactory
		OrderRepoFactory
	}

	// ResultUoWFactory creates new result unit of work instances.
	ResultUoWFactory interface {
		Create() ResultUoW
	}

	// UoW manages transactions across the whole engine. Order creation uses
	// it: the catalog check, the series increment, and the insert share one
	// transaction.
	UoW interface {
		TxManager
		TestRepoFactory
		OrderRepoFactory
		ResultRepoFactory
		SequencerFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
