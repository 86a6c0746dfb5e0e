// Package core holds the domain value types of the ledger: exact-decimal
// Money, accounts, transactions and life goals. Everything here is an
// immutable value; operations return new values and never mutate in place.
package core

import (
	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount tied to a currency. The amount's scale is
// validated against the currency's fraction digits at construction time, so a
// Money value can always be rendered with exactly that many decimal places.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney builds a Money value. It fails when the currency is absent, when
// the currency metadata carries a negative fraction-digit count, or when the
// supplied amount has more decimal places than the currency allows. Amounts
// with fewer decimal places are accepted and padded on rendering; amounts
// with more are rejected because rounding would silently alter the value.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency.Code == "" {
		return Money{}, &InvalidMoneyError{Reason: "currency is required"}
	}
	if currency.FractionDigits < 0 {
		return Money{}, &InvalidMoneyError{
			Reason:         "currency has a negative fraction-digit count",
			Currency:       currency.Code,
			FractionDigits: currency.FractionDigits,
		}
	}
	if scale := int(-amount.Exponent()); scale > currency.FractionDigits {
		return Money{}, &InvalidMoneyError{
			Reason:         "amount has more decimal places than the currency allows",
			Currency:       currency.Code,
			Scale:          scale,
			FractionDigits: currency.FractionDigits,
		}
	}
	return Money{amount: amount, currency: currency}, nil
}

// ParseMoney builds a Money value from a decimal string such as "12.34".
// The supplied scale is taken literally: "100.00" has scale 2 even though the
// trailing zeros carry no value, so it is rejected for a zero-fraction
// currency like JPY.
func ParseMoney(s string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, &InvalidMoneyError{Reason: "amount is not a decimal number", Currency: currency.Code}
	}
	return NewMoney(d, currency)
}

// Zero returns the additive identity for the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount renders the amount with exactly the currency's fraction digits,
// e.g. "100.00" for USD, "100" for JPY. Exact by construction: the stored
// scale never exceeds the fraction digits.
func (m Money) Amount() string {
	return m.amount.StringFixed(int32(m.currency.FractionDigits))
}

// Decimal returns the underlying exact decimal value.
func (m Money) Decimal() decimal.Decimal { return m.amount }

// Currency returns the currency the amount is denominated in.
func (m Money) Currency() Currency { return m.currency }

// Add returns the exact sum of two amounts in the same currency.
func (m Money) Add(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, &CurrencyMismatchError{Left: m.currency.Code, Right: n.currency.Code}
	}
	return Money{amount: m.amount.Add(n.amount), currency: m.currency}, nil
}

// Sub returns the exact difference of two amounts in the same currency.
func (m Money) Sub(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, &CurrencyMismatchError{Left: m.currency.Code, Right: n.currency.Code}
	}
	return Money{amount: m.amount.Sub(n.amount), currency: m.currency}, nil
}

// Negated returns the amount with its sign flipped.
func (m Money) Negated() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// Signum returns -1, 0 or 1 for negative, zero and positive amounts.
func (m Money) Signum() int { return m.amount.Sign() }

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// Equal reports whether two Money values have the same currency and the same
// normalized amount: Money(100, USD) equals Money(100.00, USD).
func (m Money) Equal(n Money) bool {
	return m.currency == n.currency && m.amount.Equal(n.amount)
}

// String renders the amount followed by the currency code, e.g. "87.66 USD".
func (m Money) String() string {
	return m.Amount() + " " + m.currency.Code
}
