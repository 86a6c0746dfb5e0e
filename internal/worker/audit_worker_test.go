package worker

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"mindledger/internal/amqp"
	"mindledger/internal/core"
	"mindledger/internal/ledger"
	"mindledger/internal/memory"
)

func seedAccount(t *testing.T, store *memory.Store, amounts ...string) core.Account {
	t.Helper()
	ctx := context.Background()
	account, err := core.NewAccount("Checking", core.MustCurrency("USD"), core.TypeCash, time.Now())
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := store.SaveAccount(ctx, account); err != nil {
		t.Fatalf("save account: %v", err)
	}
	for _, amount := range amounts {
		m, err := core.ParseMoney(amount, account.Currency)
		if err != nil {
			t.Fatalf("parse money: %v", err)
		}
		tx, err := core.NewTransaction(account.ID, core.NewDate(2026, 1, 15), core.Inflow, m, "", time.Now())
		if err != nil {
			t.Fatalf("new transaction: %v", err)
		}
		if err := store.SaveTransaction(ctx, tx); err != nil {
			t.Fatalf("save transaction: %v", err)
		}
	}
	return account
}

func TestHandleTransactionRecorded(t *testing.T) {
	store := memory.New()
	account := seedAccount(t, store, "10.00", "5.00")
	w := NewAuditWorker(ledger.NewService(store, store))

	msg := amqp.NewTransactionRecordedMessage(uuid.New(), account.ID)
	if err := w.HandleTransactionRecorded(context.Background(), msg); err != nil {
		t.Fatalf("handle: %v", err)
	}
}

func TestHandleTransactionRecordedUnknownAccountIsAcked(t *testing.T) {
	store := memory.New()
	w := NewAuditWorker(ledger.NewService(store, store))

	// Unknown account must not requeue, so the handler returns nil.
	msg := amqp.NewTransactionRecordedMessage(uuid.New(), uuid.New())
	if err := w.HandleTransactionRecorded(context.Background(), msg); err != nil {
		t.Fatalf("expected nil for unknown account, got %v", err)
	}
}

func TestLogNetWorthSnapshot(t *testing.T) {
	store := memory.New()
	seedAccount(t, store, "10.00")
	w := NewAuditWorker(ledger.NewService(store, store))

	if err := w.LogNetWorthSnapshot(context.Background()); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
}

func TestLogNetWorthSnapshotEmpty(t *testing.T) {
	store := memory.New()
	w := NewAuditWorker(ledger.NewService(store, store))

	if err := w.LogNetWorthSnapshot(context.Background()); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
}
