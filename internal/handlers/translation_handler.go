package handlers

import (
	"context"
	"net/http"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TranslationService is the interface that wraps the translate business logic.
type TranslationService interface {
	// Method Translate translates the request texts into the target language.
	//
	// The response keeps the keys and the order of the request texts. When the provider
	// rejects the request the texts are returned unchanged with the "degraded" outcome.
	Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResponse, error)
}

// TranslationHandler handles HTTP requests for translations
type TranslationHandler struct {
	BaseHandler
	service TranslationService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(svc TranslationService, logger *zap.Logger) *TranslationHandler {
	return &TranslationHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all translation handler routes
func (h *TranslationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/translate", h.Translate)
}

// Translate handles POST /api/v1/translate
// @Summary Translate texts
// @Description Translate a keyed set of texts, applying the glossary of the language pair when one is ready
// @Tags translation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.TranslateRequest true "Texts and languages"
// @Success 200 {object} models.TranslateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/translate [post]
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.service.Translate(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "failed to translate texts")
		return
	}

	h.respondJSON(w, http.StatusOK, response)
}
