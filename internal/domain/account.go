/**
 * @description
 * This file defines the core domain models for the accounts-service.
 * These structs represent the main entities and data transfer objects (DTOs)
 * used throughout the service's business logic, storage, and API layers.
 *
 * @notes
 * - Balances use `decimal.Decimal` so monetary amounts keep arbitrary
 *   precision and never suffer floating-point drift.
 * - Accounts are identified by an opaque string ID chosen by the caller;
 *   the identity never changes after creation.
 */

package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a monetary account: an immutable string identity plus a
// balance that stays non-negative after every completed operation.
type Account struct {
	ID      string          `json:"account_id"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateAccountRequest is the DTO for incoming account creation API requests.
type CreateAccountRequest struct {
	AccountID      string          `json:"account_id"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// TransferRequest is the DTO for incoming balance transfer API requests.
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id"`
	ToAccountID   string          `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
}
