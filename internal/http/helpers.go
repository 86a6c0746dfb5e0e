package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"mindledger/internal/core"
)

// apiError is the JSON error body: a machine-readable code plus a message.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}

// writeDomainError translates the domain error taxonomy to HTTP statuses:
// missing account -> 404, invalid input -> 400, a currency mismatch found in
// stored data -> 409.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		notFound *core.AccountNotFoundError
		invalid  *core.InvalidMoneyError
		mismatch *core.CurrencyMismatchError
	)
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.As(err, &mismatch):
		writeError(w, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, core.ErrEmptyAccountName),
		errors.Is(err, core.ErrInvalidAccountType),
		errors.Is(err, core.ErrInvalidAccountStatus),
		errors.Is(err, core.ErrInvalidDirection),
		errors.Is(err, core.ErrNonPositiveAmount),
		errors.Is(err, core.ErrMissingOccurredOn),
		errors.Is(err, core.ErrMissingAccountID),
		errors.Is(err, core.ErrEmptyGoalTitle),
		errors.Is(err, core.ErrNonPositiveTarget),
		errors.Is(err, core.ErrMissingTargetDate),
		errors.Is(err, core.ErrInvalidGoalStatus):
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

// decodeJSON decodes a request body into v, capping the body at 1 MiB and
// rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body: "+err.Error())
		return false
	}
	return true
}

// pathAccountID parses the {id} path segment as a UUID.
func pathAccountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid account id")
		return uuid.Nil, false
	}
	return id, true
}
