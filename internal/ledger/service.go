package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"mindledger/internal/core"
)

// Service exposes the two aggregation use cases: a single account's balance
// and the currency-grouped net worth across all active accounts.
type Service struct {
	accounts     AccountReader
	transactions TransactionReader
}

func NewService(accounts AccountReader, transactions TransactionReader) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
	}
}

// Balance folds an account's transactions into one signed total in the
// account's currency. It fails with AccountNotFoundError when the account
// cannot be resolved and with CurrencyMismatchError when a stored transaction
// disagrees with the account's currency.
func (s *Service) Balance(ctx context.Context, accountID uuid.UUID) (core.Money, error) {
	account, ok, err := s.accounts.FindAccount(ctx, accountID)
	if err != nil {
		return core.Money{}, fmt.Errorf("find account: %w", err)
	}
	if !ok {
		return core.Money{}, &core.AccountNotFoundError{ID: accountID}
	}

	txs, err := s.transactions.ListTransactions(ctx, accountID)
	if err != nil {
		return core.Money{}, fmt.Errorf("list transactions: %w", err)
	}

	balance := core.Zero(account.Currency)
	for _, tx := range txs {
		if tx.Amount.Currency() != account.Currency {
			return core.Money{}, &core.CurrencyMismatchError{
				Left:  account.Currency.Code,
				Right: tx.Amount.Currency().Code,
			}
		}
		balance, err = balance.Add(tx.SignedAmount())
		if err != nil {
			return core.Money{}, err
		}
	}
	return balance, nil
}

// NetWorth folds every active account's balance into one bucket per
// currency. Archived accounts contribute nothing even if they still hold
// transactions; currencies with no active account are absent from the map.
// The result is a snapshot recomputed from the source of truth on every call.
func (s *Service) NetWorth(ctx context.Context) (map[core.Currency]core.Money, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	totals := make(map[core.Currency]core.Money)
	for _, account := range accounts {
		if !account.IsActive() {
			continue
		}
		balance, err := s.Balance(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		// Insert-or-combine; the combine function is Money.Add.
		if existing, ok := totals[account.Currency]; ok {
			sum, err := existing.Add(balance)
			if err != nil {
				return nil, err
			}
			totals[account.Currency] = sum
		} else {
			totals[account.Currency] = balance
		}
	}
	return totals, nil
}
