package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewAccount(t *testing.T) {
	a, err := NewAccount("  Checking  ", MustCurrency("USD"), TypeCash, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Name != "Checking" {
		t.Fatalf("name = %q, expected trimmed", a.Name)
	}
	if a.Status != StatusActive || !a.IsActive() {
		t.Fatalf("new account should be active, got %s", a.Status)
	}

	if _, err := NewAccount("   ", MustCurrency("USD"), TypeCash, time.Now()); !errors.Is(err, ErrEmptyAccountName) {
		t.Fatalf("expected ErrEmptyAccountName, got %v", err)
	}
	if _, err := NewAccount("a", MustCurrency("USD"), AccountType("PIGGYBANK"), time.Now()); !errors.Is(err, ErrInvalidAccountType) {
		t.Fatalf("expected ErrInvalidAccountType, got %v", err)
	}
}

func TestAccountArchive(t *testing.T) {
	a, err := NewAccount("Savings", MustCurrency("EUR"), TypeDeposit, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	archived := a.Archive()
	if archived.Status != StatusArchived || archived.IsActive() {
		t.Fatalf("archived account still active")
	}
	// Archive returns a copy; the original is untouched.
	if a.Status != StatusActive {
		t.Fatalf("original account mutated")
	}
}
