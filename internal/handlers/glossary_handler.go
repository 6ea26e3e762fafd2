package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GlossaryService is the interface that wraps methods for glossary entry business logic.
type GlossaryService interface {
	// Method Languages returns the configured glossary languages, source languages first.
	Languages() []string
	// Method ListAggregates retrieves all entry aggregates sorted by the configured sort language.
	ListAggregates(ctx context.Context) ([]models.EntryAggregate, error)
	// Method Create adds an aggregate with a text for every configured language.
	//
	// "aggregateIdentifier" must be empty; the identifier is generated.
	Create(ctx context.Context, aggregateIdentifier string, texts map[string]string) (*models.EntryAggregate, error)
	// Method Update changes the texts of an existing aggregate and adds missing languages.
	Update(ctx context.Context, aggregateIdentifier string, texts map[string]string) (*models.EntryAggregate, error)
	// Method Delete removes every entry of an aggregate.
	Delete(ctx context.Context, aggregateIdentifier string) error
}

// GlossarySyncService is the interface that wraps the provider glossary synchronisation.
type GlossarySyncService interface {
	// Method Sync replaces the provider glossaries with the stored entries.
	Sync(ctx context.Context) ([]models.GlossarySyncResult, error)
	// Method Status reports the state of the provider glossary of every usable language pair.
	Status(ctx context.Context) ([]models.GlossaryStatus, error)
}

// LanguagePairService returns the usable glossary language pairs
type LanguagePairService interface {
	LanguagePairs(ctx context.Context, limitTo []string) (*models.LanguagePairsResponse, error)
}

// GlossaryHandler handles HTTP requests for glossary administration
type GlossaryHandler struct {
	BaseHandler
	service     GlossaryService
	syncService GlossarySyncService
	pairs       LanguagePairService
}

// NewGlossaryHandler creates a new glossary handler
func NewGlossaryHandler(svc GlossaryService, syncSvc GlossarySyncService, pairs LanguagePairService, logger *zap.Logger) *GlossaryHandler {
	return &GlossaryHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		syncService: syncSvc,
		pairs:       pairs,
	}
}

// RegisterRoutes registers all glossary handler routes
func (h *GlossaryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/glossary", func(r chi.Router) {
		r.Route("/entries", func(r chi.Router) {
			r.Get("/", h.ListEntries)
			r.Post("/", h.CreateEntry)
			r.Put("/{aggregateIdentifier}", h.UpdateEntry)
			r.Delete("/{aggregateIdentifier}", h.DeleteEntry)
		})
		r.Get("/language-pairs", h.GetLanguagePairs)
		r.Get("/status", h.GetStatus)
		r.Post("/sync", h.Sync)
	})
}

// ListEntries handles GET /api/v1/glossary/entries
// @Summary List glossary entries
// @Description Get all glossary entry aggregates with their texts per language
// @Tags glossary
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.EntriesResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/glossary/entries [get]
func (h *GlossaryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	aggregates, err := h.service.ListAggregates(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get glossary entries")
		return
	}

	h.respondJSON(w, http.StatusOK, models.EntriesResponse{
		Success:   true,
		Languages: h.service.Languages(),
		Entries:   aggregates,
	})
}

// CreateEntry handles POST /api/v1/glossary/entries
// @Summary Create glossary entry
// @Description Create an entry aggregate with a text for every configured language
// @Tags glossary
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.EntryTextsRequest true "Texts per language"
// @Success 201 {object} models.EntriesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/glossary/entries [post]
func (h *GlossaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.EntryTextsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Create(r.Context(), req.AggregateIdentifier, req.Texts); err != nil {
		h.respondServiceError(w, err, "failed to create glossary entry")
		return
	}

	h.respondEntries(w, r, http.StatusCreated)
}

// UpdateEntry handles PUT /api/v1/glossary/entries/{aggregateIdentifier}
// @Summary Update glossary entry
// @Description Update the texts of an entry aggregate; languages without an entry are added
// @Tags glossary
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param aggregateIdentifier path string true "Aggregate identifier"
// @Param request body models.EntryTextsRequest true "Texts per language"
// @Success 200 {object} models.EntriesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/glossary/entries/{aggregateIdentifier} [put]
func (h *GlossaryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	aggregateIdentifier := chi.URLParam(r, "aggregateIdentifier")
	if aggregateIdentifier == "" {
		h.respondError(w, http.StatusBadRequest, "aggregateIdentifier parameter is required")
		return
	}

	var req models.EntryTextsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AggregateIdentifier != "" && req.AggregateIdentifier != aggregateIdentifier {
		h.respondError(w, http.StatusBadRequest, "aggregateIdentifier does not match the path")
		return
	}

	if _, err := h.service.Update(r.Context(), aggregateIdentifier, req.Texts); err != nil {
		h.respondServiceError(w, err, "failed to update glossary entry")
		return
	}

	h.respondEntries(w, r, http.StatusOK)
}

// DeleteEntry handles DELETE /api/v1/glossary/entries/{aggregateIdentifier}
// @Summary Delete glossary entry
// @Description Delete every entry of an aggregate
// @Tags glossary
// @Produce json
// @Security ApiKeyAuth
// @Param aggregateIdentifier path string true "Aggregate identifier"
// @Success 200 {object} models.EntriesResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/glossary/entries/{aggregateIdentifier} [delete]
func (h *GlossaryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	aggregateIdentifier := chi.URLParam(r, "aggregateIdentifier")
	if aggregateIdentifier == "" {
		h.respondError(w, http.StatusBadRequest, "aggregateIdentifier parameter is required")
		return
	}

	if err := h.service.Delete(r.Context(), aggregateIdentifier); err != nil {
		h.respondServiceError(w, err, "failed to delete glossary entry")
		return
	}

	h.respondEntries(w, r, http.StatusOK)
}

// respondEntries answers a successful change with the refreshed entry listing
func (h *GlossaryHandler) respondEntries(w http.ResponseWriter, r *http.Request, status int) {
	aggregates, err := h.service.ListAggregates(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get glossary entries")
		return
	}

	h.respondJSON(w, status, models.EntriesResponse{
		Success: true,
		Entries: aggregates,
	})
}

// GetLanguagePairs handles GET /api/v1/glossary/language-pairs
// @Summary Get glossary language pairs
// @Description Get the configured language pairs the provider supports for glossaries
// @Tags glossary
// @Produce json
// @Security ApiKeyAuth
// @Param limit query string false "Comma-separated languages; only pairs containing one of them are returned"
// @Success 200 {object} models.LanguagePairsResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/glossary/language-pairs [get]
func (h *GlossaryHandler) GetLanguagePairs(w http.ResponseWriter, r *http.Request) {
	var limitTo []string
	if r.URL.Query().Has("limit") {
		limitTo = []string{}
		for _, language := range strings.Split(r.URL.Query().Get("limit"), ",") {
			if language = strings.TrimSpace(language); language != "" {
				limitTo = append(limitTo, language)
			}
		}
	}

	response, err := h.pairs.LanguagePairs(r.Context(), limitTo)
	if err != nil {
		h.respondServiceError(w, err, "failed to get glossary language pairs")
		return
	}

	h.respondJSON(w, http.StatusOK, response)
}

// GetStatus handles GET /api/v1/glossary/status
// @Summary Get glossary status
// @Description Report for every usable language pair whether its provider glossary is ready and up to date
// @Tags glossary
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.GlossaryStatus
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/glossary/status [get]
func (h *GlossaryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.syncService.Status(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to get glossary status")
		return
	}

	h.respondJSON(w, http.StatusOK, statuses)
}

// Sync handles POST /api/v1/glossary/sync
// @Summary Synchronise glossaries
// @Description Replace the provider glossary of every usable language pair with the stored entries
// @Tags glossary
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.GlossarySyncResult
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/glossary/sync [post]
func (h *GlossaryHandler) Sync(w http.ResponseWriter, r *http.Request) {
	results, err := h.syncService.Sync(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to synchronise glossaries")
		return
	}

	h.respondJSON(w, http.StatusOK, results)
}
