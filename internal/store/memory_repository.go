/**
 * @description
 * This file contains the in-memory implementation of the `Repository` interface.
 * Accounts live in a map guarded by a read-write mutex; the map is the only
 * shared mutable state the store owns, and every access goes through this one
 * boundary so thread-safety is enforced in a single place.
 *
 * Key features:
 * - Atomic insert-if-absent: concurrent creates with the same ID cannot both
 *   succeed.
 * - Snapshot semantics: reads hand out copies, never interior pointers, so no
 *   caller can mutate stored state behind the store's back or observe a
 *   half-written account.
 *
 * @dependencies
 * - context, sync: Standard Go libraries.
 * - internal/domain: For the account model.
 */

package store

import (
	"context"
	"sync"

	"github.com/vaultpay/accounts-service/internal/domain"
)

// MemoryRepository is a process-lifetime, map-backed account store.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewMemoryRepository creates an empty in-memory account store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts: make(map[string]domain.Account),
	}
}

// CreateAccount inserts the account if no account with the same ID exists.
// The duplicate check and the insert happen under one write lock, so of two
// concurrent creates with the same ID exactly one succeeds.
func (r *MemoryRepository) CreateAccount(ctx context.Context, account domain.Account) error {
	if account.Balance.Sign() < 0 {
		return ErrNegativeBalance
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		return ErrDuplicateAccountID
	}
	r.accounts[account.ID] = account
	return nil
}

// GetAccount returns a copy of the current account state for id.
func (r *MemoryRepository) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := account
	return &cp, nil
}

// UpdateAccount replaces the stored state for account.ID.
func (r *MemoryRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID]; !ok {
		return ErrAccountNotFound
	}
	r.accounts[account.ID] = account
	return nil
}

// ClearAccounts removes every account. Test isolation only.
func (r *MemoryRepository) ClearAccounts(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[string]domain.Account)
	return nil
}
