package http

import (
	"net/http"

	"mindledger/internal/log"
)

type moneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathAccountID(w, r)
	if !ok {
		return
	}

	balance, err := s.ledger.Balance(r.Context(), id)
	if err != nil {
		s.logger.WarnContext(r.Context(), "Balance computation failed",
			log.FieldAccountID, id,
			log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, moneyDTO{
		Amount:   balance.Amount(),
		Currency: balance.Currency().Code,
	})
}

func (s *Server) handleNetWorth(w http.ResponseWriter, r *http.Request) {
	totals, err := s.ledger.NetWorth(r.Context())
	if err != nil {
		s.logger.WarnContext(r.Context(), "Net worth computation failed", log.FieldError, err)
		writeDomainError(w, err)
		return
	}

	// One bucket per currency code; encoding/json emits map keys sorted.
	out := make(map[string]string, len(totals))
	for currency, total := range totals {
		out[currency.Code] = total.Amount()
	}
	writeJSON(w, http.StatusOK, out)
}
