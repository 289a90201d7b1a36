/**
 * @description
 * This file defines the transfer engine's error variants. Each failure kind is a
 * distinct, inspectable value so handlers and tests can branch on kind with
 * errors.Is / errors.As instead of matching message text.
 *
 * @dependencies
 * - errors, fmt: Standard Go libraries.
 * - internal/store: For the insufficient-funds sentinel.
 */

package app

import (
	"errors"
	"fmt"

	"github.com/vaultpay/accounts-service/internal/store"
)

// ErrInvalidAmount is returned when a transfer amount is not strictly positive.
var ErrInvalidAmount = errors.New("transfer amount must be greater than zero")

// InsufficientFundsError is returned when the source account's balance does not
// cover the requested amount. It names the offending account and matches
// store.ErrInsufficientFunds under errors.Is.
type InsufficientFundsError struct {
	AccountID string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance in account %s", e.AccountID)
}

func (e *InsufficientFundsError) Unwrap() error {
	return store.ErrInsufficientFunds
}
