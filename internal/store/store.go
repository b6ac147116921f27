package store

import (
	"context" // Request-scoped cancellation
	"time"    // Mutation timestamps

	"transaction_system/internal/domain" // Transaction model
	"transaction_system/internal/search" // Query specification
)

// TransactionStore is the persistence abstraction the lifecycle service
// operates against.
type TransactionStore interface {
	// FindByID returns the transaction with the given id, or nil when absent
	FindByID(ctx context.Context, id uint) (*domain.Transaction, error)
	// Save inserts a new transaction and assigns its id
	Save(ctx context.Context, tx *domain.Transaction) error
	// DeleteByID removes the transaction with the given id
	DeleteByID(ctx context.Context, id uint) error
	// UpdateStatus sets status and last_updated, returning rows affected
	UpdateStatus(ctx context.Context, id uint, status string, updatedAt time.Time) (int64, error)
	// UpdateBasicInfo rewrites the descriptive fields and last_updated, and
	// forces status back to SUBMITTED as part of the same write. Returns rows
	// affected.
	UpdateBasicInfo(ctx context.Context, id uint, input domain.TransactionInput, updatedAt time.Time) (int64, error)
	// Query runs a search specification, returning the page of matching
	// records and the total match count
	Query(ctx context.Context, spec search.Specification) ([]domain.Transaction, int64, error)
	// InTx runs fn within a single unit of work; the store passed to fn is
	// scoped to that unit
	InTx(ctx context.Context, fn func(TransactionStore) error) error
}
