package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Inflow  Direction = "INFLOW"
	Outflow Direction = "OUTFLOW"
)

type (
	// Direction tells whether money flowed into or out of an account.
	Direction string

	// Transaction is a signed movement of money against an account. The
	// stored amount is always strictly positive and unsigned; Direction
	// supplies the sign semantics.
	Transaction struct {
		ID         uuid.UUID
		AccountID  uuid.UUID
		OccurredOn Date
		Direction  Direction
		Amount     Money
		Memo       string
		CreatedAt  time.Time
	}
)

// IsValid reports whether the direction is INFLOW or OUTFLOW.
func (d Direction) IsValid() bool {
	return d == Inflow || d == Outflow
}

// NewTransaction builds a transaction with a fresh id. A blank memo is
// normalized to the empty string, a non-blank memo is trimmed.
func NewTransaction(accountID uuid.UUID, occurredOn Date, direction Direction, amount Money, memo string, now time.Time) (Transaction, error) {
	t := Transaction{
		ID:         uuid.New(),
		AccountID:  accountID,
		OccurredOn: occurredOn,
		Direction:  direction,
		Amount:     amount,
		Memo:       strings.TrimSpace(memo),
		CreatedAt:  now,
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func (t Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrMissingAccountID
	}
	if t.OccurredOn.IsZero() {
		return ErrMissingOccurredOn
	}
	if !t.Direction.IsValid() {
		return ErrInvalidDirection
	}
	if !t.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	return nil
}

// SignedAmount maps the unsigned amount and the direction to the signed
// value used in aggregation: inflows stay positive, outflows are negated.
func (t Transaction) SignedAmount() Money {
	if t.Direction == Inflow {
		return t.Amount
	}
	return t.Amount.Negated()
}
