// Package memory provides a mutex-guarded in-memory store. It is the default
// backend for local development and the fixture store for handler tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"mindledger/internal/core"
)

type Store struct {
	mu           sync.Mutex
	accounts     []core.Account
	transactions map[uuid.UUID][]core.Transaction
	goals        []core.LifeGoal
}

func New() *Store {
	return &Store{
		transactions: make(map[uuid.UUID][]core.Transaction),
	}
}

// SaveAccount inserts the account or replaces an existing one with the same
// id (used when archiving).
func (s *Store) SaveAccount(_ context.Context, a core.Account) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == a.ID {
			s.accounts[i] = a
			return nil
		}
	}
	s.accounts = append(s.accounts, a)
	return nil
}

// FindAccount implements ledger.AccountReader.
func (s *Store) FindAccount(_ context.Context, id uuid.UUID) (core.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true, nil
		}
	}
	return core.Account{}, false, nil
}

// ListAccounts implements ledger.AccountReader. Returns a copy in insertion
// order; callers get a stable snapshot per call.
func (s *Store) ListAccounts(_ context.Context) ([]core.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Account(nil), s.accounts...), nil
}

// SaveTransaction appends the transaction to its account's history.
func (s *Store) SaveTransaction(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions[t.AccountID] = append(s.transactions[t.AccountID], t)
	return nil
}

// ListTransactions implements ledger.TransactionReader.
func (s *Store) ListTransactions(_ context.Context, accountID uuid.UUID) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions[accountID]...), nil
}

// SaveGoal appends a life goal.
func (s *Store) SaveGoal(_ context.Context, g core.LifeGoal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, g)
	return nil
}

// ListGoals returns all goals in insertion order.
func (s *Store) ListGoals(_ context.Context) ([]core.LifeGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.LifeGoal(nil), s.goals...), nil
}

// Close implements the backend cleanup contract; nothing to release.
func (s *Store) Close() error { return nil }
