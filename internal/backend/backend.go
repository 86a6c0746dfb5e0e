// Package backend selects and wires the storage implementation the service
// runs against.
package backend

import (
	"context"

	"mindledger/internal/core"
	"mindledger/internal/ledger"
)

// Store is the unified storage surface: the ledger read contracts plus the
// write operations the HTTP layer needs.
type Store interface {
	ledger.AccountReader
	ledger.TransactionReader

	SaveAccount(ctx context.Context, a core.Account) error
	SaveTransaction(ctx context.Context, t core.Transaction) error
	SaveGoal(ctx context.Context, g core.LifeGoal) error
	ListGoals(ctx context.Context) ([]core.LifeGoal, error)
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result contains the store and an optional cleanup function.
type Result struct {
	Store   Store
	Cleanup CleanupFunc
}

// Type selects the storage implementation.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string { return string(t) }

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds what the factory needs to build a store.
type Config struct {
	Type         Type
	SQLiteDBPath string
}
