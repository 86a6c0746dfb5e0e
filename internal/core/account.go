package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusArchived AccountStatus = "ARCHIVED"
)

const (
	TypeCash      AccountType = "CASH"
	TypeDeposit   AccountType = "DEPOSIT"
	TypeFund      AccountType = "FUND"
	TypeBrokerage AccountType = "BROKERAGE"
)

type (
	AccountStatus string
	AccountType   string

	// Account is a financial account consumed read-only by the aggregators.
	Account struct {
		ID        uuid.UUID
		Name      string
		Currency  Currency
		Type      AccountType
		Status    AccountStatus
		CreatedAt time.Time
	}
)

// IsValid reports whether the type is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case TypeCash, TypeDeposit, TypeFund, TypeBrokerage:
		return true
	default:
		return false
	}
}

// IsValid reports whether the status is one of the known account statuses.
func (s AccountStatus) IsValid() bool {
	return s == StatusActive || s == StatusArchived
}

// NewAccount builds an active account with a fresh id.
func NewAccount(name string, currency Currency, typ AccountType, now time.Time) (Account, error) {
	a := Account{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Currency:  currency,
		Type:      typ,
		Status:    StatusActive,
		CreatedAt: now,
	}
	if err := a.Validate(); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAccountName
	}
	if a.Currency.Code == "" {
		return &InvalidMoneyError{Reason: "account currency is required"}
	}
	if !a.Type.IsValid() {
		return ErrInvalidAccountType
	}
	if !a.Status.IsValid() {
		return ErrInvalidAccountStatus
	}
	return nil
}

// IsActive reports whether the account contributes to net worth.
func (a Account) IsActive() bool {
	return a.Status == StatusActive
}

// Archive returns a copy of the account with status ARCHIVED.
func (a Account) Archive() Account {
	a.Status = StatusArchived
	return a
}
