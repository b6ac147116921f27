package service

import (
	"context" // Request-scoped cancellation
	"time"    // Mutation timestamps

	"transaction_system/internal/domain" // Model, contexts, outcomes
	"transaction_system/internal/search" // Specification builder
	"transaction_system/internal/store"  // Store abstraction

	"github.com/sirupsen/logrus" // Logging library
)

// ViewCache is the id-keyed cache for transaction lookups. Every mutating
// operation invalidates the entry for its id before returning.
type ViewCache interface {
	// Get returns the cached transaction for an id, reporting a hit
	Get(ctx context.Context, id uint) (*domain.Transaction, bool)
	// Set stores the transaction under its id
	Set(ctx context.Context, id uint, tx *domain.Transaction)
	// Invalidate removes the entry for an id
	Invalidate(ctx context.Context, id uint) error
}

// SearchResult is one page of raw transaction records with count metadata
type SearchResult struct {
	Transactions []domain.Transaction `json:"transactions"` // Records on this page
	Page         int                  `json:"page"`         // Zero-based page index
	PageSize     int                  `json:"pageSize"`     // Requested page size
	Total        int64                `json:"total"`        // Total matching records
	TotalPages   int                  `json:"totalPages"`   // Total pages at this page size
}

// TransactionService orchestrates validation, the transition policy and the
// search builder against the transaction store.
type TransactionService struct {
	store store.TransactionStore // Persistence
	cache ViewCache              // Id-keyed lookup cache
}

// NewTransactionService wires a lifecycle service
func NewTransactionService(st store.TransactionStore, cache ViewCache) *TransactionService {
	return &TransactionService{store: st, cache: cache}
}

// GetByID fetches a transaction by id, serving from cache when possible
func (s *TransactionService) GetByID(ctx context.Context, id uint, actor string) (*domain.Transaction, error) {
	if tx, hit := s.cache.Get(ctx, id); hit {
		logrus.WithFields(logrus.Fields{"id": id, "user": actor}).Info("Transaction served from cache")
		return tx, nil
	}
	tx, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.NewBusinessError(domain.CodeNotFound)
	}
	s.cache.Set(ctx, id, tx)
	logrus.WithFields(logrus.Fields{"id": id, "user": actor}).Info("Transaction retrieved")
	return tx, nil
}

// Create validates and persists a new transaction. Status is forced to
// SUBMITTED and submitter metadata is set regardless of caller input.
func (s *TransactionService) Create(ctx context.Context, input domain.TransactionInput, actor string) (*domain.Transaction, error) {
	var created *domain.Transaction
	err := s.store.InTx(ctx, func(st store.TransactionStore) error {
		if outcome := Validate(ctx, st, input, domain.ContextCreate, actor); !outcome.OK() {
			logrus.WithFields(logrus.Fields{"context": domain.ContextCreate, "user": actor}).Error("Transaction validation failed")
			return outcome.Err()
		}
		now := time.Now()
		tx := &domain.Transaction{
			Type:            input.Type,
			Amount:          *input.Amount,
			TransactionDate: *input.TransactionDate,
			Description:     input.Description,
			DebitAccount:    input.DebitAccount,
			CreditAccount:   input.CreditAccount,
			Currency:        input.Currency,
			Status:          domain.StatusSubmitted,
			LastUpdated:     now,
			SubmittedBy:     actor,
			SubmittedAt:     now,
		}
		if err := st.Save(ctx, tx); err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"id": created.ID, "user": actor}).Info("Transaction created")
	return created, nil
}

// UpdateBasicInfo validates and rewrites the descriptive fields of a
// transaction; the store write forces status back to SUBMITTED. Returns rows
// affected as the update-confirmation signal.
func (s *TransactionService) UpdateBasicInfo(ctx context.Context, input domain.TransactionInput, actor string) (int64, error) {
	var rows int64
	err := s.store.InTx(ctx, func(st store.TransactionStore) error {
		if outcome := Validate(ctx, st, input, domain.ContextUpdate, actor); !outcome.OK() {
			logrus.WithFields(logrus.Fields{"context": domain.ContextUpdate, "user": actor}).Error("Transaction validation failed")
			return outcome.Err()
		}
		var err error
		rows, err = st.UpdateBasicInfo(ctx, *input.ID, input, time.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, *input.ID)
	logrus.WithFields(logrus.Fields{"id": *input.ID, "user": actor}).Info("Transaction updated")
	return rows, nil
}

// Handle applies a status-only transition (approve, reject or cancel) to a
// transaction. Returns rows affected.
func (s *TransactionService) Handle(ctx context.Context, input domain.TransactionInput, opContext, actor string) (int64, error) {
	var rows int64
	err := s.store.InTx(ctx, func(st store.TransactionStore) error {
		if outcome := Validate(ctx, st, input, opContext, actor); !outcome.OK() {
			logrus.WithFields(logrus.Fields{"context": opContext, "user": actor}).Error("Transaction validation failed")
			return outcome.Err()
		}
		// Only the status-changing contexts are handled here; create and
		// update have dedicated write paths
		switch opContext {
		case domain.ContextApprove, domain.ContextReject, domain.ContextCancel:
		default:
			logrus.WithField("context", opContext).Error("Invalid context for transaction handling")
			return domain.NewBusinessError(domain.CodeInvalidParameter)
		}
		next, _ := NextStatus(opContext)
		var err error
		rows, err = st.UpdateStatus(ctx, *input.ID, next, time.Now())
		return err
	})
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, *input.ID)
	logrus.WithFields(logrus.Fields{"id": *input.ID, "context": opContext, "user": actor}).Info("Transaction status changed")
	return rows, nil
}

// Delete removes a transaction unconditionally if it exists
func (s *TransactionService) Delete(ctx context.Context, id uint, actor string) (bool, error) {
	err := s.store.InTx(ctx, func(st store.TransactionStore) error {
		tx, err := st.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.NewBusinessError(domain.CodeNotFound)
		}
		return st.DeleteByID(ctx, tx.ID)
	})
	if err != nil {
		return false, err
	}
	s.invalidate(ctx, id)
	logrus.WithFields(logrus.Fields{"id": id, "user": actor}).Info("Transaction deleted")
	return true, nil
}

// Search builds a specification from the filter and returns the matching
// page of raw records with count metadata
func (s *TransactionService) Search(ctx context.Context, filter domain.SearchFilter) (*SearchResult, error) {
	spec := search.Build(filter)
	transactions, total, err := s.store.Query(ctx, spec)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{} // Empty page marshals as [], not null
	}
	totalPages := 0
	if spec.PageSize > 0 {
		totalPages = (int(total) + spec.PageSize - 1) / spec.PageSize
	}
	return &SearchResult{
		Transactions: transactions,
		Page:         spec.Page,
		PageSize:     spec.PageSize,
		Total:        total,
		TotalPages:   totalPages,
	}, nil
}

// invalidate drops the cache entry for an id, logging on failure
func (s *TransactionService) invalidate(ctx context.Context, id uint) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logrus.WithFields(logrus.Fields{"id": id, "error": err.Error()}).Warn("Failed to invalidate transaction cache")
	}
}
