// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and a best-effort audit append
// after the transaction is committed.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RefundRepoFactory provides access to the refund repository within a transaction.
	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by status transition commands that touch a single order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	// Every command execution gets a fresh unit of work, so concurrent
	// bulk tasks never share a transaction.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across order and refund aggregates.
	// Used by the refund command, which persists both in one transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		RefundRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
