package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vaultpay/accounts-service/internal/domain"
)

func TestCreateAndGetAccount(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	account := domain.Account{ID: "Id-123", Balance: decimal.NewFromInt(1000)}
	if err := repo.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	got, err := repo.GetAccount(ctx, "Id-123")
	if err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}
	if got.ID != "Id-123" {
		t.Fatalf("expected account id Id-123, got %q", got.ID)
	}
	if !got.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected balance 1000, got %s", got.Balance)
	}
}

func TestCreateAccountRejectsDuplicateAndKeepsFirstState(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := domain.Account{ID: "Id-777", Balance: decimal.NewFromInt(250)}
	if err := repo.CreateAccount(ctx, first); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	second := domain.Account{ID: "Id-777", Balance: decimal.NewFromInt(9999)}
	if err := repo.CreateAccount(ctx, second); !errors.Is(err, ErrDuplicateAccountID) {
		t.Fatalf("expected ErrDuplicateAccountID, got %v", err)
	}

	got, err := repo.GetAccount(ctx, "Id-777")
	if err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected first account's balance 250 to survive, got %s", got.Balance)
	}
}

func TestCreateAccountRejectsNegativeInitialBalance(t *testing.T) {
	repo := NewMemoryRepository()

	account := domain.Account{ID: "Id-neg", Balance: decimal.NewFromInt(-1)}
	if err := repo.CreateAccount(context.Background(), account); !errors.Is(err, ErrNegativeBalance) {
		t.Fatalf("expected ErrNegativeBalance, got %v", err)
	}
}

func TestGetAccountReturnsNotFoundForUnknownID(t *testing.T) {
	repo := NewMemoryRepository()

	if _, err := repo.GetAccount(context.Background(), "no-such-account"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestGetAccountReturnsSnapshotCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.CreateAccount(ctx, domain.Account{ID: "Id-snap", Balance: decimal.NewFromInt(100)}); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	got, err := repo.GetAccount(ctx, "Id-snap")
	if err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}

	// Mutating the returned copy must not leak into the store.
	got.Balance = decimal.NewFromInt(0)

	again, err := repo.GetAccount(ctx, "Id-snap")
	if err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}
	if !again.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected stored balance 100 to be unaffected, got %s", again.Balance)
	}
}

func TestUpdateAccountReplacesState(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.CreateAccount(ctx, domain.Account{ID: "Id-upd", Balance: decimal.NewFromInt(500)}); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	if err := repo.UpdateAccount(ctx, domain.Account{ID: "Id-upd", Balance: decimal.NewFromInt(300)}); err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}

	got, err := repo.GetAccount(ctx, "Id-upd")
	if err != nil {
		t.Fatalf("GetAccount returned error: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected balance 300 after update, got %s", got.Balance)
	}
}

func TestUpdateAccountRejectsUnknownID(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.UpdateAccount(context.Background(), domain.Account{ID: "ghost", Balance: decimal.NewFromInt(1)})
	if !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestClearAccountsResetsStore(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.CreateAccount(ctx, domain.Account{ID: "Id-clear", Balance: decimal.NewFromInt(10)}); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	if err := repo.ClearAccounts(ctx); err != nil {
		t.Fatalf("ClearAccounts returned error: %v", err)
	}
	if _, err := repo.GetAccount(ctx, "Id-clear"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound after clear, got %v", err)
	}
}

func TestConcurrentCreateSameIDExactlyOneWins(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const attempts = 64
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	duplicates := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := repo.CreateAccount(ctx, domain.Account{ID: "Id-race", Balance: decimal.NewFromInt(int64(n))})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrDuplicateAccountID):
				duplicates++
			default:
				t.Errorf("unexpected error from concurrent create: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("expected exactly one concurrent create to succeed, got %d", successes)
	}
	if duplicates != attempts-1 {
		t.Fatalf("expected %d duplicate rejections, got %d", attempts-1, duplicates)
	}
}
