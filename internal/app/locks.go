/**
 * @description
 * This file implements the per-account lock table used by the transfer engine.
 * Each account gets its own exclusive mutex, keyed by account ID, so transfers
 * over disjoint account pairs run fully in parallel while mutations to any
 * single account stay serialized.
 *
 * @notes
 * - Entries are created lazily on first use and never removed: the store has no
 *   delete operation, so the table only grows with the account population.
 * - The table itself is guarded by one mutex that is held only for the map
 *   lookup, never while an account lock is held.
 */

package app

import "sync"

// accountLockTable hands out one exclusive mutex per account ID.
type accountLockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLockTable() *accountLockTable {
	return &accountLockTable{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for id, creating it on first use.
func (t *accountLockTable) get(id string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	return l
}
