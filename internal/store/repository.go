/**
 * @description
 * This file defines the `Repository` interface, which specifies the contract for
 * all account storage operations required by the accounts-service. By defining an
 * interface, we decouple the transfer engine from the specific storage
 * implementation, making the code more modular and easier to test.
 *
 * @dependencies
 * - context: Standard Go library.
 * - internal/domain: For the service's domain models.
 */

package store

import (
	"context"
	"errors"

	"github.com/vaultpay/accounts-service/internal/domain"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateAccountID = errors.New("account id already exists")
	ErrNegativeBalance    = errors.New("initial balance must not be negative")
	ErrInsufficientFunds  = errors.New("insufficient funds")
)

// Repository defines the set of methods for interacting with account storage.
type Repository interface {
	// CreateAccount inserts a new account. The insert-if-absent check is atomic:
	// of two concurrent creates with the same ID, exactly one succeeds and the
	// other receives ErrDuplicateAccountID.
	CreateAccount(ctx context.Context, account domain.Account) error

	// GetAccount returns a snapshot copy of the account, or ErrAccountNotFound.
	// Callers never observe a half-updated account.
	GetAccount(ctx context.Context, id string) (*domain.Account, error)

	// UpdateAccount replaces the stored state for account.ID. Used only by the
	// transfer engine while holding the account's lock; assumes the account
	// already exists.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// ClearAccounts removes all accounts. Supports test isolation; not used in
	// normal operation.
	ClearAccounts(ctx context.Context) error
}
