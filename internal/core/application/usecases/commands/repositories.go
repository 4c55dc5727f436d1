// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"docflow/internal/core/ports"
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

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DocumentRepoFactory provides access to the document repository within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// AnalysisRepoFactory provides access to the analysis repository within a transaction.
	AnalysisRepoFactory interface {
		AnalysisRepository() ports.AnalysisRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DocumentUoW manages transactions spanning orders and documents.
	// Used by upload and delete, which must verify the owning order.
	DocumentUoW interface {
		TxManager
		OrderRepoFactory
		DocumentRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	// AnalysisUoW manages transactions spanning orders, analyses and documents.
	// Trigger and completion coordinate all three aggregate types.
	AnalysisUoW interface {
		TxManager
		OrderRepoFactory
		AnalysisRepoFactory
		DocumentRepoFactory
	}

	// AnalysisUoWFactory creates new analysis unit of work instances.
	AnalysisUoWFactory interface {
		Create() AnalysisUoW
	}

	// PaymentUoW manages transactions spanning orders and payments.
	// Confirmation must update both atomically.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
