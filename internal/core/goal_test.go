package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewLifeGoal(t *testing.T) {
	target := mustMoney(t, "25000.00", "USD")
	g, err := NewLifeGoal("House down payment", target, NewDate(2028, 6, 1), "  stretch goal  ", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Status != GoalActive || !g.IsActive() {
		t.Fatalf("new goal should be active, got %s", g.Status)
	}
	if g.Notes != "stretch goal" {
		t.Fatalf("notes = %q, expected trimmed", g.Notes)
	}
}

func TestNewLifeGoalValidation(t *testing.T) {
	target := mustMoney(t, "100.00", "USD")
	date := NewDate(2028, 6, 1)

	if _, err := NewLifeGoal("  ", target, date, "", time.Now()); !errors.Is(err, ErrEmptyGoalTitle) {
		t.Fatalf("expected ErrEmptyGoalTitle, got %v", err)
	}
	if _, err := NewLifeGoal("a", Zero(MustCurrency("USD")), date, "", time.Now()); !errors.Is(err, ErrNonPositiveTarget) {
		t.Fatalf("expected ErrNonPositiveTarget, got %v", err)
	}
	if _, err := NewLifeGoal("a", target, Date{}, "", time.Now()); !errors.Is(err, ErrMissingTargetDate) {
		t.Fatalf("expected ErrMissingTargetDate, got %v", err)
	}
}
