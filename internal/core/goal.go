package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	GoalActive   GoalStatus = "ACTIVE"
	GoalAchieved GoalStatus = "ACHIEVED"
	GoalArchived GoalStatus = "ARCHIVED"
)

type (
	GoalStatus string

	// LifeGoal is a savings target the user is working towards, like a house
	// down payment. It does not participate in balance or net-worth math.
	LifeGoal struct {
		ID         uuid.UUID
		Title      string
		Target     Money
		TargetDate Date
		Status     GoalStatus
		Notes      string
		CreatedAt  time.Time
	}
)

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalActive, GoalAchieved, GoalArchived:
		return true
	default:
		return false
	}
}

// NewLifeGoal builds an active goal with a fresh id. Blank notes are
// normalized to the empty string.
func NewLifeGoal(title string, target Money, targetDate Date, notes string, now time.Time) (LifeGoal, error) {
	g := LifeGoal{
		ID:         uuid.New(),
		Title:      strings.TrimSpace(title),
		Target:     target,
		TargetDate: targetDate,
		Status:     GoalActive,
		Notes:      strings.TrimSpace(notes),
		CreatedAt:  now,
	}
	if err := g.Validate(); err != nil {
		return LifeGoal{}, err
	}
	return g, nil
}

func (g LifeGoal) Validate() error {
	if g.Title == "" {
		return ErrEmptyGoalTitle
	}
	if !g.Target.IsPositive() {
		return ErrNonPositiveTarget
	}
	if g.TargetDate.IsZero() {
		return ErrMissingTargetDate
	}
	if !g.Status.IsValid() {
		return ErrInvalidGoalStatus
	}
	return nil
}

// IsActive reports whether the goal is still being worked towards.
func (g LifeGoal) IsActive() bool {
	return g.Status == GoalActive
}
