package http

import (
	"net/http"
	"time"

	"mindledger/internal/core"
	"mindledger/internal/log"
)

type createGoalRequest struct {
	Title      string `json:"title"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	TargetDate string `json:"targetDate"`
	Notes      string `json:"notes"`
}

type createGoalResponse struct {
	GoalID string `json:"goalId"`
}

type goalDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	TargetDate string `json:"targetDate"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	currency, err := s.currencies.Resolve(req.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	target, err := core.ParseMoney(req.Amount, currency)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	targetDate, err := core.ParseDate(req.TargetDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid targetDate, expected YYYY-MM-DD")
		return
	}

	goal, err := core.NewLifeGoal(req.Title, target, targetDate, req.Notes, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.store.SaveGoal(r.Context(), goal); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to save goal", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Goal created", log.FieldGoalID, goal.ID)
	writeJSON(w, http.StatusCreated, createGoalResponse{GoalID: goal.ID.String()})
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := s.store.ListGoals(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to list goals", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	dtos := make([]goalDTO, len(goals))
	for i, g := range goals {
		dtos[i] = goalDTO{
			ID:         g.ID.String(),
			Title:      g.Title,
			Amount:     g.Target.Amount(),
			Currency:   g.Target.Currency().Code,
			TargetDate: g.TargetDate.String(),
			Status:     string(g.Status),
			Notes:      g.Notes,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}
