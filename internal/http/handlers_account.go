package http

import (
	"net/http"
	"time"

	"mindledger/internal/core"
	"mindledger/internal/log"
)

type createAccountRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Type     string `json:"type"`
}

type createAccountResponse struct {
	AccountID string `json:"accountId"`
}

type accountDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

func toAccountDTO(a core.Account) accountDTO {
	return accountDTO{
		ID:       a.ID.String(),
		Name:     a.Name,
		Currency: a.Currency.Code,
		Type:     string(a.Type),
		Status:   string(a.Status),
	}
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	currency, err := s.currencies.Resolve(req.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	account, err := core.NewAccount(req.Name, currency, core.AccountType(req.Type), time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.store.SaveAccount(r.Context(), account); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to save account", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Account created",
		log.FieldAccountID, account.ID,
		log.FieldCurrency, account.Currency.Code)

	writeJSON(w, http.StatusCreated, createAccountResponse{AccountID: account.ID.String()})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.ListAccounts(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to list accounts", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	dtos := make([]accountDTO, len(accounts))
	for i, a := range accounts {
		dtos[i] = toAccountDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleArchiveAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathAccountID(w, r)
	if !ok {
		return
	}

	account, found, err := s.store.FindAccount(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !found {
		writeDomainError(w, &core.AccountNotFoundError{ID: id})
		return
	}

	archived := account.Archive()
	if err := s.store.SaveAccount(r.Context(), archived); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to archive account", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Account archived", log.FieldAccountID, id)
	writeJSON(w, http.StatusOK, toAccountDTO(archived))
}
