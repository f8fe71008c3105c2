package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/apetrini/todolist-backend/internal/domain"
)

// handleError maps domain errors onto HTTP status codes. Ownership failures
// are reported as 403, distinct from 404, so a caller probing someone else's
// IDs can tell the resource exists but learns nothing more about it.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotRegistered):
		writeError(w, http.StatusUnauthorized, "email not registered")
	case errors.Is(err, domain.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, "wrong password")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
