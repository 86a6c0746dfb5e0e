// Package ledger implements the balance and net-worth aggregations over the
// read contracts a storage backend provides. The aggregators own no state and
// perform no I/O beyond the reads; they are pure folds over domain values.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"mindledger/internal/core"
)

// Ports for the storage collaborator.
type (
	// AccountReader resolves accounts. FindAccount reports absence through
	// the boolean so storage stays ignorant of the domain error taxonomy.
	AccountReader interface {
		FindAccount(ctx context.Context, id uuid.UUID) (core.Account, bool, error)
		ListAccounts(ctx context.Context) ([]core.Account, error)
	}

	// TransactionReader lists the transactions recorded against an account,
	// in insertion order. The aggregation does not depend on the order.
	TransactionReader interface {
		ListTransactions(ctx context.Context, accountID uuid.UUID) ([]core.Transaction, error)
	}
)
