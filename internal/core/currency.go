package core

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is reference data: a 3-letter code plus the number of decimal
// places its minor unit supports (2 for USD, 0 for JPY).
type Currency struct {
	Code           string
	FractionDigits int
}

// CurrencyResolver looks up currency metadata by code. It is an injected
// dependency so the core does not hard-code any currency table.
type CurrencyResolver interface {
	Resolve(code string) (Currency, error)
}

// ISOCurrencies resolves codes against the bundled ISO 4217 table.
type ISOCurrencies struct{}

// Resolve implements CurrencyResolver. Codes are matched case-insensitively.
func (ISOCurrencies) Resolve(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	def := money.GetCurrency(code)
	if def == nil {
		return Currency{}, fmt.Errorf("unknown currency code %q", code)
	}
	return Currency{Code: def.Code, FractionDigits: def.Fraction}, nil
}

// MustCurrency resolves a code from the ISO table and panics on failure.
// Intended for tests and static initialization only.
func MustCurrency(code string) Currency {
	c, err := ISOCurrencies{}.Resolve(code)
	if err != nil {
		panic(err)
	}
	return c
}
