/**
 * @description
 * This file contains the core business logic for the accounts-service. The
 * `Service` struct orchestrates account creation, balance lookup, and atomic
 * balance transfers, coordinating between the account repository and the
 * notification collaborator.
 *
 * Key features:
 * - Deadlock-free transfers: both account locks are always acquired in
 *   lexicographic ID order, regardless of transfer direction, so no two
 *   concurrent transfers can hold locks in reverse order of each other.
 * - Atomic debit/credit: both balance mutations are written back to the store
 *   while both locks are held, so no third party ever observes a half-done
 *   transfer.
 * - Best-effort notification: the collaborator is told about each side of a
 *   completed transfer after the locks are released; failures there are logged
 *   and never surfaced as transfer failure.
 *
 * @dependencies
 * - context, fmt, log, sync: Standard Go libraries.
 * - github.com/shopspring/decimal: Arbitrary-precision balances.
 * - internal/domain, internal/store: Domain models and account storage.
 */

package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vaultpay/accounts-service/internal/domain"
	"github.com/vaultpay/accounts-service/internal/store"
)

// Service provides the core business logic for accounts and transfers.
type Service struct {
	repo     store.Repository
	notifier Notifier
	locks    *accountLockTable
}

// NewService creates a new accounts service instance.
func NewService(repo store.Repository, notifier Notifier) *Service {
	if notifier == nil {
		notifier = &LogNotifier{}
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		locks:    newAccountLockTable(),
	}
}

// CreateAccount registers a new account. The edge layer validates the request
// shape, but a negative initial balance is rejected here as well since that
// guarantee cannot be trusted across every caller.
func (s *Service) CreateAccount(ctx context.Context, account domain.Account) error {
	if account.Balance.Sign() < 0 {
		return store.ErrNegativeBalance
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return err
	}
	log.Printf("level=info component=app operation=create_account account_id=%s balance=%s", account.ID, account.Balance)
	return nil
}

// GetAccount returns the current state of the account with the given ID.
func (s *Service) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.GetAccount(ctx, id)
}

// Transfer atomically moves amount from the source account's balance to the
// destination account's balance.
//
// Validation happens before any mutation, in order: the amount must be
// strictly positive, and both accounts must exist. The funds check is
// performed again inside the critical section, since the initial read happens
// before the locks are taken.
//
// A transfer between an account and itself is a validated no-op: the amount
// and funds checks still apply, balances are unchanged, and both
// notifications are still emitted.
func (s *Service) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	// 1. Reject non-positive amounts before touching the store.
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	// 2. Both accounts must resolve before anything is locked.
	if _, err := s.repo.GetAccount(ctx, fromID); err != nil {
		return fmt.Errorf("source account %s: %w", fromID, err)
	}
	if _, err := s.repo.GetAccount(ctx, toID); err != nil {
		return fmt.Errorf("destination account %s: %w", toID, err)
	}

	// 3. Acquire both locks in lexicographic ID order, independent of transfer
	// direction. Every multi-account mutator follows this order, so circular
	// wait between concurrent transfers is impossible. Equal IDs need a single
	// lock; Go mutexes are not reentrant.
	firstID, secondID := fromID, toID
	if firstID > secondID {
		firstID, secondID = secondID, firstID
	}

	first := s.locks.get(firstID)
	first.Lock()
	var second *sync.Mutex
	if secondID != firstID {
		second = s.locks.get(secondID)
		second.Lock()
	}
	unlock := func() {
		if second != nil {
			second.Unlock()
		}
		first.Unlock()
	}

	// 4. Atomic section: re-read both accounts, re-check funds, mutate, and
	// write both results back before either lock is released.
	from, err := s.repo.GetAccount(ctx, fromID)
	if err != nil {
		unlock()
		return fmt.Errorf("source account %s: %w", fromID, err)
	}
	to, err := s.repo.GetAccount(ctx, toID)
	if err != nil {
		unlock()
		return fmt.Errorf("destination account %s: %w", toID, err)
	}

	if from.Balance.LessThan(amount) {
		unlock()
		return &InsufficientFundsError{AccountID: fromID}
	}

	if fromID != toID {
		from.Balance = from.Balance.Sub(amount)
		to.Balance = to.Balance.Add(amount)

		if err := s.repo.UpdateAccount(ctx, *from); err != nil {
			unlock()
			return fmt.Errorf("persist source account %s: %w", fromID, err)
		}
		if err := s.repo.UpdateAccount(ctx, *to); err != nil {
			unlock()
			return fmt.Errorf("persist destination account %s: %w", toID, err)
		}
	}

	unlock()

	log.Printf("level=info component=app operation=transfer outcome=completed from=%s to=%s amount=%s", fromID, toID, amount)

	// 5. The transfer is committed; notification failures must not undo it.
	s.notify(ctx, *from, fmt.Sprintf("Transferred %s to %s", amount, toID))
	s.notify(ctx, *to, fmt.Sprintf("Received %s from %s", amount, fromID))

	return nil
}

func (s *Service) notify(ctx context.Context, account domain.Account, message string) {
	if err := s.notifier.NotifyTransfer(ctx, account, message); err != nil {
		log.Printf("level=warn component=app operation=notify_transfer account_id=%s err=%v", account.ID, err)
	}
}
