package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glossarygateway/backend/internal/services"
	"github.com/glossarygateway/backend/internal/translation"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a service error to its HTTP status.
// Client errors carry the error message; other failures get the generic message.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, message string) {
	var (
		apiErr       *translation.APIError
		transportErr *translation.TransportError
		integrityErr *translation.IntegrityError
	)

	switch {
	case errors.Is(err, services.ErrAggregateNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidTexts),
		errors.Is(err, services.ErrAggregateIdentifierSet),
		errors.Is(err, services.ErrInvalidLanguage):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &apiErr), errors.As(err, &transportErr), errors.As(err, &integrityErr):
		h.logger.Error(message, zap.Error(err))
		h.respondError(w, http.StatusBadGateway, message)
	default:
		h.logger.Error(message, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, message)
	}
}

// decodeJSON decodes the request body into target, rejecting unknown fields
func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}
