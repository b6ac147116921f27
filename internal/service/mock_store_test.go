package service_test

import (
	"context"
	"time"

	"transaction_system/internal/domain"
	"transaction_system/internal/search"
	"transaction_system/internal/store"
)

// mockStore is an in-memory TransactionStore for lifecycle tests
type mockStore struct {
	transactions map[uint]domain.Transaction
	nextID       uint

	findCalls   int
	queryResult []domain.Transaction
	queryTotal  int64
	lastSpec    search.Specification
}

func newMockStore(seed ...domain.Transaction) *mockStore {
	m := &mockStore{transactions: map[uint]domain.Transaction{}, nextID: 1}
	for _, tx := range seed {
		m.transactions[tx.ID] = tx
		if tx.ID >= m.nextID {
			m.nextID = tx.ID + 1
		}
	}
	return m
}

func (m *mockStore) FindByID(ctx context.Context, id uint) (*domain.Transaction, error) {
	m.findCalls++
	tx, ok := m.transactions[id]
	if !ok {
		return nil, nil
	}
	copied := tx
	return &copied, nil
}

func (m *mockStore) Save(ctx context.Context, tx *domain.Transaction) error {
	tx.ID = m.nextID
	m.nextID++
	m.transactions[tx.ID] = *tx
	return nil
}

func (m *mockStore) DeleteByID(ctx context.Context, id uint) error {
	delete(m.transactions, id)
	return nil
}

func (m *mockStore) UpdateStatus(ctx context.Context, id uint, status string, updatedAt time.Time) (int64, error) {
	tx, ok := m.transactions[id]
	if !ok {
		return 0, nil
	}
	tx.Status = status
	tx.LastUpdated = updatedAt
	m.transactions[id] = tx
	return 1, nil
}

func (m *mockStore) UpdateBasicInfo(ctx context.Context, id uint, input domain.TransactionInput, updatedAt time.Time) (int64, error) {
	tx, ok := m.transactions[id]
	if !ok {
		return 0, nil
	}
	tx.Type = input.Type
	tx.Amount = *input.Amount
	tx.TransactionDate = *input.TransactionDate
	tx.Description = input.Description
	tx.DebitAccount = input.DebitAccount
	tx.CreditAccount = input.CreditAccount
	tx.Currency = input.Currency
	tx.Status = domain.StatusSubmitted
	tx.LastUpdated = updatedAt
	m.transactions[id] = tx
	return 1, nil
}

func (m *mockStore) Query(ctx context.Context, spec search.Specification) ([]domain.Transaction, int64, error) {
	m.lastSpec = spec
	return m.queryResult, m.queryTotal, nil
}

func (m *mockStore) InTx(ctx context.Context, fn func(store.TransactionStore) error) error {
	return fn(m)
}

// mapCache is an in-memory ViewCache recording invalidations
type mapCache struct {
	entries     map[uint]*domain.Transaction
	invalidated []uint
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[uint]*domain.Transaction{}}
}

func (c *mapCache) Get(ctx context.Context, id uint) (*domain.Transaction, bool) {
	tx, ok := c.entries[id]
	return tx, ok
}

func (c *mapCache) Set(ctx context.Context, id uint, tx *domain.Transaction) {
	c.entries[id] = tx
}

func (c *mapCache) Invalidate(ctx context.Context, id uint) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}
