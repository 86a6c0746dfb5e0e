package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"mindledger/internal/core"
)

// fakeStore implements the reader ports in memory for aggregation tests.
type fakeStore struct {
	accounts     []core.Account
	transactions map[uuid.UUID][]core.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{transactions: make(map[uuid.UUID][]core.Transaction)}
}

func (f *fakeStore) FindAccount(_ context.Context, id uuid.UUID) (core.Account, bool, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, true, nil
		}
	}
	return core.Account{}, false, nil
}

func (f *fakeStore) ListAccounts(_ context.Context) ([]core.Account, error) {
	return f.accounts, nil
}

func (f *fakeStore) ListTransactions(_ context.Context, accountID uuid.UUID) ([]core.Transaction, error) {
	return f.transactions[accountID], nil
}

func (f *fakeStore) addAccount(t *testing.T, name, code string, status core.AccountStatus) core.Account {
	t.Helper()
	a, err := core.NewAccount(name, core.MustCurrency(code), core.TypeCash, time.Now())
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	a.Status = status
	f.accounts = append(f.accounts, a)
	return a
}

func (f *fakeStore) addTransaction(t *testing.T, accountID uuid.UUID, direction core.Direction, amount, code string) {
	t.Helper()
	m, err := core.ParseMoney(amount, core.MustCurrency(code))
	if err != nil {
		t.Fatalf("parse money: %v", err)
	}
	tx, err := core.NewTransaction(accountID, core.NewDate(2026, 1, 15), direction, m, "", time.Now())
	if err != nil {
		t.Fatalf("new transaction: %v", err)
	}
	f.transactions[accountID] = append(f.transactions[accountID], tx)
}

func TestBalanceFold(t *testing.T) {
	store := newFakeStore()
	account := store.addAccount(t, "Checking", "USD", core.StatusActive)
	store.addTransaction(t, account.ID, core.Inflow, "100.00", "USD")
	store.addTransaction(t, account.ID, core.Outflow, "12.34", "USD")

	svc := NewService(store, store)
	balance, err := svc.Balance(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance.String() != "87.66 USD" {
		t.Fatalf("balance = %q, expected 87.66 USD", balance.String())
	}
}

func TestBalanceEmptyAccountIsZero(t *testing.T) {
	store := newFakeStore()
	account := store.addAccount(t, "Empty", "EUR", core.StatusActive)

	svc := NewService(store, store)
	balance, err := svc.Balance(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.IsZero() || balance.Currency().Code != "EUR" {
		t.Fatalf("balance = %v, expected zero EUR", balance)
	}
}

func TestBalanceAccountNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeStore())
	missing := uuid.New()

	_, err := svc.Balance(context.Background(), missing)
	var notFound *core.AccountNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected AccountNotFoundError, got %v", err)
	}
	if notFound.ID != missing {
		t.Fatalf("error carries id %s, expected %s", notFound.ID, missing)
	}
}

func TestBalanceCurrencyMismatch(t *testing.T) {
	store := newFakeStore()
	account := store.addAccount(t, "Checking", "USD", core.StatusActive)
	store.addTransaction(t, account.ID, core.Inflow, "10.00", "EUR")

	svc := NewService(store, store)
	_, err := svc.Balance(context.Background(), account.ID)
	var mismatch *core.CurrencyMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CurrencyMismatchError, got %v", err)
	}
	if mismatch.Left != "USD" || mismatch.Right != "EUR" {
		t.Fatalf("mismatch = %v, expected USD != EUR", mismatch)
	}
}

func TestNetWorthGroupsByCurrency(t *testing.T) {
	store := newFakeStore()
	checking := store.addAccount(t, "Checking", "USD", core.StatusActive)
	savings := store.addAccount(t, "Savings", "USD", core.StatusActive)
	travel := store.addAccount(t, "Travel", "EUR", core.StatusActive)
	store.addTransaction(t, checking.ID, core.Inflow, "80.00", "USD")
	store.addTransaction(t, savings.ID, core.Inflow, "70.00", "USD")
	store.addTransaction(t, travel.ID, core.Inflow, "25.00", "EUR")

	svc := NewService(store, store)
	totals, err := svc.NetWorth(context.Background())
	if err != nil {
		t.Fatalf("net worth: %v", err)
	}

	if len(totals) != 2 {
		t.Fatalf("got %d buckets, expected 2", len(totals))
	}
	if got := totals[core.MustCurrency("USD")].Amount(); got != "150.00" {
		t.Fatalf("USD total = %q, expected 150.00", got)
	}
	if got := totals[core.MustCurrency("EUR")].Amount(); got != "25.00" {
		t.Fatalf("EUR total = %q, expected 25.00", got)
	}
}

func TestNetWorthSkipsArchivedAccounts(t *testing.T) {
	store := newFakeStore()
	active := store.addAccount(t, "Active", "USD", core.StatusActive)
	archived := store.addAccount(t, "Old", "USD", core.StatusArchived)
	store.addTransaction(t, active.ID, core.Inflow, "50.00", "USD")
	store.addTransaction(t, archived.ID, core.Inflow, "999.00", "USD")

	svc := NewService(store, store)
	totals, err := svc.NetWorth(context.Background())
	if err != nil {
		t.Fatalf("net worth: %v", err)
	}
	if got := totals[core.MustCurrency("USD")].Amount(); got != "50.00" {
		t.Fatalf("USD total = %q, expected 50.00 (archived excluded)", got)
	}
}

func TestNetWorthEmpty(t *testing.T) {
	svc := NewService(newFakeStore(), newFakeStore())
	totals, err := svc.NetWorth(context.Background())
	if err != nil {
		t.Fatalf("net worth: %v", err)
	}
	if len(totals) != 0 {
		t.Fatalf("expected empty map, got %d buckets", len(totals))
	}
}

func TestNetWorthIsRecomputed(t *testing.T) {
	store := newFakeStore()
	account := store.addAccount(t, "Checking", "USD", core.StatusActive)
	store.addTransaction(t, account.ID, core.Inflow, "10.00", "USD")

	svc := NewService(store, store)
	first, err := svc.NetWorth(context.Background())
	if err != nil {
		t.Fatalf("net worth: %v", err)
	}

	store.addTransaction(t, account.ID, core.Inflow, "5.00", "USD")
	second, err := svc.NetWorth(context.Background())
	if err != nil {
		t.Fatalf("net worth: %v", err)
	}

	usd := core.MustCurrency("USD")
	if first[usd].Amount() != "10.00" || second[usd].Amount() != "15.00" {
		t.Fatalf("snapshots = %q then %q, expected 10.00 then 15.00",
			first[usd].Amount(), second[usd].Amount())
	}
}
