package store

import (
	"context" // Request-scoped cancellation
	"errors"  // Sentinel error checks
	"time"    // Mutation timestamps

	"transaction_system/internal/domain" // Transaction model
	"transaction_system/internal/search" // Query specification

	"gorm.io/gorm" // GORM ORM library
)

// GormStore is the MySQL-backed TransactionStore
type GormStore struct {
	db *gorm.DB // Database handle
}

// NewGormStore wraps a database handle in a TransactionStore
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FindByID returns the transaction with the given id, or nil when absent
func (s *GormStore) FindByID(ctx context.Context, id uint) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := s.db.WithContext(ctx).First(&tx, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Absence is not an error
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Save inserts a new transaction and assigns its id
func (s *GormStore) Save(ctx context.Context, tx *domain.Transaction) error {
	return s.db.WithContext(ctx).Create(tx).Error
}

// DeleteByID removes the transaction with the given id
func (s *GormStore) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&domain.Transaction{}, id).Error
}

// UpdateStatus sets status and last_updated, returning rows affected
func (s *GormStore) UpdateStatus(ctx context.Context, id uint, status string, updatedAt time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"last_updated": updatedAt,
		})
	return result.RowsAffected, result.Error
}

// UpdateBasicInfo rewrites the descriptive fields and last_updated; the same
// write forces status back to SUBMITTED
func (s *GormStore) UpdateBasicInfo(ctx context.Context, id uint, input domain.TransactionInput, updatedAt time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"type":                    input.Type,
			"amount":                  input.Amount,
			"transaction_date":        input.TransactionDate,
			"transaction_description": input.Description,
			"debit_account":           input.DebitAccount,
			"credit_account":          input.CreditAccount,
			"currency":                input.Currency,
			"last_updated":            updatedAt,
			"status":                  domain.StatusSubmitted,
		})
	return result.RowsAffected, result.Error
}

// Query runs a search specification, returning the matching page and the
// total match count
func (s *GormStore) Query(ctx context.Context, spec search.Specification) ([]domain.Transaction, int64, error) {
	query := s.db.WithContext(ctx).Model(&domain.Transaction{})
	// Chain each clause as an AND condition; columns come from the builder's
	// static whitelist, never from raw caller input
	for _, clause := range spec.Clauses {
		switch clause.Op {
		case search.OpEq:
			query = query.Where(clause.Column+" = ?", clause.Value)
		case search.OpGte:
			query = query.Where(clause.Column+" >= ?", clause.Value)
		case search.OpLte:
			query = query.Where(clause.Column+" <= ?", clause.Value)
		case search.OpContains:
			query = query.Where(clause.Column+" LIKE ?", "%"+clause.Value.(string)+"%")
		}
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var transactions []domain.Transaction
	err := query.Order(spec.SortColumn + " desc").
		Offset(spec.Page * spec.PageSize).
		Limit(spec.PageSize).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// InTx runs fn within one database transaction
func (s *GormStore) InTx(ctx context.Context, fn func(TransactionStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
