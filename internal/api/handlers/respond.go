package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskline/notion-sync/internal/models"
	"github.com/taskline/notion-sync/internal/repository"
	"github.com/taskline/notion-sync/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the error taxonomy onto HTTP statuses:
// validation → 400, unknown id → 404, missing credentials → 400 with a
// distinct message, anything else (store failures) → 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrNotConfigured):
		writeError(w, http.StatusBadRequest, "Notion is not configured")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
