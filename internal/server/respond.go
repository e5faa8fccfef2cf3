package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Veraticus/spice-bridge/internal/model"
	"github.com/Veraticus/spice-bridge/internal/plaid"
)

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

// errorBody is the uniform error response shape.
func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// failures are 422, provider rejections forward the provider's status, and
// anything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	var providerErr *plaid.ProviderError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &providerErr):
		status = providerErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
	}

	slog.ErrorContext(r.Context(), "Request failed",
		"method", r.Method,
		"url", r.URL.Path,
		"status", status,
		"error", err)

	s.writeJSON(w, status, errorBody(err.Error()))
}
