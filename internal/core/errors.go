package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validation errors raised by the entity constructors.
var (
	ErrEmptyAccountName     = errors.New("account name cannot be empty")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrMissingAccountID     = errors.New("transaction account id is required")
	ErrInvalidDirection     = errors.New("invalid transaction direction")
	ErrNonPositiveAmount    = errors.New("transaction amount must be positive")
	ErrMissingOccurredOn    = errors.New("transaction occurred-on date is required")
	ErrEmptyGoalTitle       = errors.New("goal title cannot be empty")
	ErrInvalidGoalStatus    = errors.New("invalid goal status")
	ErrNonPositiveTarget    = errors.New("goal target amount must be positive")
	ErrMissingTargetDate    = errors.New("goal target date is required")
)

// InvalidMoneyError reports a Money construction failure: missing currency,
// bad fraction-digit metadata, or an amount with more decimal places than the
// currency allows. Over-precise amounts are rejected, never rounded.
type InvalidMoneyError struct {
	Reason         string
	Currency       string
	Scale          int
	FractionDigits int
}

func (e *InvalidMoneyError) Error() string {
	if e.Currency == "" {
		return "invalid money: " + e.Reason
	}
	return fmt.Sprintf("invalid money: %s (currency=%s scale=%d fraction_digits=%d)",
		e.Reason, e.Currency, e.Scale, e.FractionDigits)
}

// CurrencyMismatchError reports arithmetic or aggregation attempted across
// two different currencies.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s != %s", e.Left, e.Right)
}

// AccountNotFoundError reports a balance request for an account the storage
// collaborator cannot resolve.
type AccountNotFoundError struct {
	ID uuid.UUID
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.ID)
}
