package http

import (
	"net/http"
	"time"

	"mindledger/internal/core"
	"mindledger/internal/log"
)

type createTransactionRequest struct {
	OccurredOn string `json:"occurredOn"`
	Direction  string `json:"direction"`
	Amount     string `json:"amount"`
	Memo       string `json:"memo"`
}

type createTransactionResponse struct {
	TransactionID string `json:"transactionId"`
}

type transactionDTO struct {
	ID         string `json:"id"`
	OccurredOn string `json:"occurredOn"`
	Direction  string `json:"direction"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	Memo       string `json:"memo,omitempty"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathAccountID(w, r)
	if !ok {
		return
	}

	var req createTransactionRequest
	if !decodeJSON(w, r, &req) {
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

	occurredOn, err := core.ParseDate(req.OccurredOn)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid occurredOn date, expected YYYY-MM-DD")
		return
	}

	// The amount is denominated in the account's currency.
	amount, err := core.ParseMoney(req.Amount, account.Currency)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	tx, err := core.NewTransaction(account.ID, occurredOn, core.Direction(req.Direction), amount, req.Memo, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.store.SaveTransaction(r.Context(), tx); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to save transaction", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Transaction recorded",
		log.FieldTransactionID, tx.ID,
		log.FieldAccountID, account.ID,
		log.FieldDirection, string(tx.Direction),
		log.FieldAmount, tx.Amount.String())

	// Event publishing is best-effort; the transaction is already saved.
	if s.events != nil {
		if err := s.events.PublishTransactionRecorded(r.Context(), tx.ID, account.ID); err != nil {
			s.logger.WarnContext(r.Context(), "Failed to publish transaction event",
				log.FieldTransactionID, tx.ID,
				log.FieldError, err)
		}
	}

	writeJSON(w, http.StatusCreated, createTransactionResponse{TransactionID: tx.ID.String()})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathAccountID(w, r)
	if !ok {
		return
	}

	_, found, err := s.store.FindAccount(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !found {
		writeDomainError(w, &core.AccountNotFoundError{ID: id})
		return
	}

	txs, err := s.store.ListTransactions(r.Context(), id)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to list transactions", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	dtos := make([]transactionDTO, len(txs))
	for i, tx := range txs {
		dtos[i] = transactionDTO{
			ID:         tx.ID.String(),
			OccurredOn: tx.OccurredOn.String(),
			Direction:  string(tx.Direction),
			Amount:     tx.Amount.Amount(),
			Currency:   tx.Amount.Currency().Code,
			Memo:       tx.Memo,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}
