package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/raffle/internal/services/raffle/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "raffle.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPoolStartsEmpty(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	balance, err := store.Balance(context.Background())
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("balance = %d, want 0", balance)
	}
}

func TestDepositAccumulates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	balance, err := store.Deposit(ctx, "alice", 100)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if balance != 100 {
		t.Fatalf("balance after first deposit = %d, want 100", balance)
	}
	balance, err = store.Deposit(ctx, "bob", 150)
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if balance != 250 {
		t.Fatalf("balance after second deposit = %d, want 250", balance)
	}

	balance, err = store.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 250 {
		t.Fatalf("balance = %d, want 250", balance)
	}
}

func TestDepositValidation(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if _, err := store.Deposit(ctx, " ", 100); err == nil {
		t.Fatal("expected participant id error")
	}
	if _, err := store.Deposit(ctx, "alice", 0); err == nil {
		t.Fatal("expected zero amount error")
	}
}

func TestPayoutAllCreditsWinnerAndZeroesPool(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if _, err := store.Deposit(ctx, "alice", 100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := store.Deposit(ctx, "bob", 200); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	amount, err := store.PayoutAll(ctx, "bob")
	if err != nil {
		t.Fatalf("payout: %v", err)
	}
	if amount != 300 {
		t.Fatalf("payout amount = %d, want 300", amount)
	}

	balance, err := store.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 0 {
		t.Fatalf("pool balance = %d after payout", balance)
	}

	credited, err := store.AccountBalance(ctx, "bob")
	if err != nil {
		t.Fatalf("account balance: %v", err)
	}
	if credited != 300 {
		t.Fatalf("account balance = %d, want 300", credited)
	}
}

func TestPayoutAllAccumulatesAcrossRounds(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	if _, err := store.Deposit(ctx, "alice", 100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := store.PayoutAll(ctx, "alice"); err != nil {
		t.Fatalf("payout: %v", err)
	}
	if _, err := store.Deposit(ctx, "alice", 50); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := store.PayoutAll(ctx, "alice"); err != nil {
		t.Fatalf("payout: %v", err)
	}

	credited, err := store.AccountBalance(ctx, "alice")
	if err != nil {
		t.Fatalf("account balance: %v", err)
	}
	if credited != 150 {
		t.Fatalf("account balance = %d, want 150", credited)
	}
}

func TestAccountBalanceNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.AccountBalance(context.Background(), "ghost")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventJournalRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	events := []storage.Event{
		{Type: storage.EventRaffleEntered, ParticipantID: "alice", Amount: 100, CreatedAt: now},
		{Type: storage.EventDrawRequested, RequestID: "req-1", CreatedAt: now.Add(time.Hour)},
		{Type: storage.EventWinnerPicked, ParticipantID: "alice", Amount: 100, RequestID: "req-1", CreatedAt: now.Add(2 * time.Hour)},
	}
	for _, event := range events {
		if err := store.AppendEvent(ctx, event); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	got, err := store.ListEvents(ctx, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("events = %d, want 3", len(got))
	}
	// Newest first.
	if got[0].Type != storage.EventWinnerPicked || got[2].Type != storage.EventRaffleEntered {
		t.Fatalf("event order = %v, %v, %v", got[0].Type, got[1].Type, got[2].Type)
	}
	if got[0].ParticipantID != "alice" || got[0].Amount != 100 || got[0].RequestID != "req-1" {
		t.Fatalf("winner event = %+v", got[0])
	}
	if !got[0].CreatedAt.Equal(now.Add(2 * time.Hour)) {
		t.Fatalf("created_at = %v", got[0].CreatedAt)
	}
}

func TestListEventsHonorsLimit(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.AppendEvent(ctx, storage.Event{Type: storage.EventRaffleEntered, ParticipantID: "alice", Amount: 100}); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	got, err := store.ListEvents(ctx, 2)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
}

func TestAppendEventRequiresType(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.AppendEvent(context.Background(), storage.Event{}); err == nil {
		t.Fatal("expected event type error")
	}
}

func TestStoreReopensWithState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "raffle.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := store.Deposit(ctx, "alice", 100); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	balance, err := reopened.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance != 100 {
		t.Fatalf("balance = %d after reopen, want 100", balance)
	}
}
