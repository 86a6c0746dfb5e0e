package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mindledger/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAccountRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := core.NewAccount("Checking", core.MustCurrency("USD"), core.TypeCash, time.Now())
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := repo.SaveAccount(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := repo.FindAccount(ctx, a.ID)
	if err != nil || !found {
		t.Fatalf("find: found=%v err=%v", found, err)
	}
	if got.ID != a.ID || got.Name != a.Name || got.Currency != a.Currency ||
		got.Type != a.Type || got.Status != a.Status {
		t.Fatalf("round trip mismatch: %+v != %+v", got, a)
	}
}

func TestSaveAccountUpdatesStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := core.NewAccount("Savings", core.MustCurrency("EUR"), core.TypeDeposit, time.Now())
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := repo.SaveAccount(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveAccount(ctx, a.Archive()); err != nil {
		t.Fatalf("save archived: %v", err)
	}

	accounts, err := repo.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("got %d accounts, expected 1", len(accounts))
	}
	if accounts[0].Status != core.StatusArchived {
		t.Fatalf("status = %s, expected ARCHIVED", accounts[0].Status)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := core.NewAccount("Checking", core.MustCurrency("USD"), core.TypeCash, time.Now())
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := repo.SaveAccount(ctx, a); err != nil {
		t.Fatalf("save account: %v", err)
	}

	amount, err := core.ParseMoney("123.45", core.MustCurrency("USD"))
	if err != nil {
		t.Fatalf("parse money: %v", err)
	}
	tx, err := core.NewTransaction(a.ID, core.NewDate(2026, 3, 10), core.Outflow, amount, "rent", time.Now())
	if err != nil {
		t.Fatalf("new transaction: %v", err)
	}
	if err := repo.SaveTransaction(ctx, tx); err != nil {
		t.Fatalf("save transaction: %v", err)
	}

	txs, err := repo.ListTransactions(ctx, a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, expected 1", len(txs))
	}
	got := txs[0]
	if got.ID != tx.ID || got.Direction != core.Outflow || got.Memo != "rent" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.OccurredOn.String() != "2026-03-10" {
		t.Fatalf("occurred on = %s", got.OccurredOn)
	}
	// The exact decimal survives storage, sign semantics included.
	if !got.Amount.Equal(tx.Amount) {
		t.Fatalf("amount = %v, expected %v", got.Amount, tx.Amount)
	}
	if got.SignedAmount().Amount() != "-123.45" {
		t.Fatalf("signed amount = %q", got.SignedAmount().Amount())
	}
}

func TestListTransactionsInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := core.NewAccount("Checking", core.MustCurrency("USD"), core.TypeCash, time.Now())
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	if err := repo.SaveAccount(ctx, a); err != nil {
		t.Fatalf("save account: %v", err)
	}

	memos := []string{"first", "second", "third"}
	base := time.Now()
	for i, memo := range memos {
		amount, err := core.ParseMoney("1.00", core.MustCurrency("USD"))
		if err != nil {
			t.Fatalf("parse money: %v", err)
		}
		tx, err := core.NewTransaction(a.ID, core.NewDate(2026, 1, 15), core.Inflow, amount, memo, base.Add(time.Duration(i)*time.Millisecond))
		if err != nil {
			t.Fatalf("new transaction: %v", err)
		}
		if err := repo.SaveTransaction(ctx, tx); err != nil {
			t.Fatalf("save transaction: %v", err)
		}
	}

	txs, err := repo.ListTransactions(ctx, a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != len(memos) {
		t.Fatalf("got %d transactions, expected %d", len(txs), len(memos))
	}
	for i, memo := range memos {
		if txs[i].Memo != memo {
			t.Fatalf("position %d = %q, expected %q", i, txs[i].Memo, memo)
		}
	}
}

func TestGoalRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	target, err := core.ParseMoney("25000.00", core.MustCurrency("USD"))
	if err != nil {
		t.Fatalf("parse money: %v", err)
	}
	g, err := core.NewLifeGoal("House down payment", target, core.NewDate(2028, 6, 1), "stretch", time.Now())
	if err != nil {
		t.Fatalf("new goal: %v", err)
	}
	if err := repo.SaveGoal(ctx, g); err != nil {
		t.Fatalf("save goal: %v", err)
	}

	goals, err := repo.ListGoals(ctx)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("got %d goals, expected 1", len(goals))
	}
	got := goals[0]
	if got.ID != g.ID || got.Title != g.Title || got.Notes != "stretch" || got.Status != core.GoalActive {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !got.Target.Equal(g.Target) {
		t.Fatalf("target = %v, expected %v", got.Target, g.Target)
	}
	if got.TargetDate.String() != "2028-06-01" {
		t.Fatalf("target date = %s", got.TargetDate)
	}
}
