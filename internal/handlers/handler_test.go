package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/glossarygateway/backend/internal/services"
	"github.com/glossarygateway/backend/internal/translation"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockGlossaryService is a mock implementation of GlossaryService
type mockGlossaryService struct {
	languages  []string
	aggregates []models.EntryAggregate
	listErr    error
	err        error

	aggregateIdentifier string
	texts               map[string]string
}

func (m *mockGlossaryService) Languages() []string {
	return m.languages
}

func (m *mockGlossaryService) ListAggregates(ctx context.Context) ([]models.EntryAggregate, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.aggregates, nil
}

func (m *mockGlossaryService) Create(ctx context.Context, aggregateIdentifier string, texts map[string]string) (*models.EntryAggregate, error) {
	m.aggregateIdentifier = aggregateIdentifier
	m.texts = texts
	if m.err != nil {
		return nil, m.err
	}
	return &models.EntryAggregate{AggregateIdentifier: "new", Texts: texts}, nil
}

func (m *mockGlossaryService) Update(ctx context.Context, aggregateIdentifier string, texts map[string]string) (*models.EntryAggregate, error) {
	m.aggregateIdentifier = aggregateIdentifier
	m.texts = texts
	if m.err != nil {
		return nil, m.err
	}
	return &models.EntryAggregate{AggregateIdentifier: aggregateIdentifier, Texts: texts}, nil
}

func (m *mockGlossaryService) Delete(ctx context.Context, aggregateIdentifier string) error {
	m.aggregateIdentifier = aggregateIdentifier
	return m.err
}

// mockSyncService is a mock implementation of GlossarySyncService
type mockSyncService struct {
	results  []models.GlossarySyncResult
	statuses []models.GlossaryStatus
	err      error
}

func (m *mockSyncService) Sync(ctx context.Context) ([]models.GlossarySyncResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockSyncService) Status(ctx context.Context) ([]models.GlossaryStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.statuses, nil
}

// mockTranslationService is a mock implementation of TranslationService and LanguagePairService
type mockTranslationService struct {
	response  *models.TranslateResponse
	pairs     *models.LanguagePairsResponse
	err       error
	request   models.TranslateRequest
	limitTo   []string
	limitSeen bool
}

func (m *mockTranslationService) Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResponse, error) {
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockTranslationService) LanguagePairs(ctx context.Context, limitTo []string) (*models.LanguagePairsResponse, error) {
	m.limitTo = limitTo
	m.limitSeen = true
	if m.err != nil {
		return nil, m.err
	}
	return m.pairs, nil
}

func newTestRouter(glossarySvc *mockGlossaryService, syncSvc *mockSyncService, translationSvc *mockTranslationService) chi.Router {
	logger := zap.NewNop()
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		NewGlossaryHandler(glossarySvc, syncSvc, translationSvc, logger).RegisterRoutes(r)
		NewTranslationHandler(translationSvc, logger).RegisterRoutes(r)
	})
	return r
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGlossaryHandler_ListEntries(t *testing.T) {
	tests := []struct {
		name           string
		service        *mockGlossaryService
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			service: &mockGlossaryService{
				languages: []string{"EN", "DE"},
				aggregates: []models.EntryAggregate{
					{AggregateIdentifier: "a", Texts: map[string]string{"EN": "Hello", "DE": "Hallo"}},
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"languages":["EN","DE"],"entries":[{"aggregateIdentifier":"a","texts":{"DE":"Hallo","EN":"Hello"}}]}`,
		},
		{
			name:           "service error",
			service:        &mockGlossaryService{listErr: errors.New("database error")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to get glossary entries"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.service, &mockSyncService{}, &mockTranslationService{})

			w := serve(router, http.MethodGet, "/api/v1/glossary/entries", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestGlossaryHandler_CreateEntry(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *mockGlossaryService
		expectedStatus int
	}{
		{
			name:           "success",
			body:           `{"texts":{"EN":"Hello","DE":"Hallo"}}`,
			service:        &mockGlossaryService{},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid body",
			body:           `{"texts":`,
			service:        &mockGlossaryService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown field",
			body:           `{"text":{"EN":"Hello"}}`,
			service:        &mockGlossaryService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "identifier set",
			body:           `{"aggregateIdentifier":"x","texts":{"EN":"Hello"}}`,
			service:        &mockGlossaryService{err: services.ErrAggregateIdentifierSet},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid texts",
			body:           `{"texts":{"EN":"Hello"}}`,
			service:        &mockGlossaryService{err: services.ErrInvalidTexts},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			body:           `{"texts":{"EN":"Hello"}}`,
			service:        &mockGlossaryService{err: errors.New("database error")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.service, &mockSyncService{}, &mockTranslationService{})

			w := serve(router, http.MethodPost, "/api/v1/glossary/entries", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, map[string]string{"EN": "Hello", "DE": "Hallo"}, tt.service.texts)
				assert.Empty(t, tt.service.aggregateIdentifier)
				var response models.EntriesResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.True(t, response.Success)
			}
		})
	}
}

func TestGlossaryHandler_UpdateEntry(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           string
		service        *mockGlossaryService
		expectedStatus int
	}{
		{
			name:           "success",
			target:         "/api/v1/glossary/entries/agg-1",
			body:           `{"texts":{"DE":"Servus"}}`,
			service:        &mockGlossaryService{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "matching identifier in body",
			target:         "/api/v1/glossary/entries/agg-1",
			body:           `{"aggregateIdentifier":"agg-1","texts":{"DE":"Servus"}}`,
			service:        &mockGlossaryService{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "identifier mismatch",
			target:         "/api/v1/glossary/entries/agg-1",
			body:           `{"aggregateIdentifier":"agg-2","texts":{"DE":"Servus"}}`,
			service:        &mockGlossaryService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found",
			target:         "/api/v1/glossary/entries/agg-1",
			body:           `{"texts":{"DE":"Servus"}}`,
			service:        &mockGlossaryService{err: services.ErrAggregateNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid body",
			target:         "/api/v1/glossary/entries/agg-1",
			body:           `[]`,
			service:        &mockGlossaryService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.service, &mockSyncService{}, &mockTranslationService{})

			w := serve(router, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "agg-1", tt.service.aggregateIdentifier)
				assert.Equal(t, map[string]string{"DE": "Servus"}, tt.service.texts)
			}
		})
	}
}

func TestGlossaryHandler_DeleteEntry(t *testing.T) {
	tests := []struct {
		name           string
		service        *mockGlossaryService
		expectedStatus int
	}{
		{name: "success", service: &mockGlossaryService{}, expectedStatus: http.StatusOK},
		{name: "not found", service: &mockGlossaryService{err: services.ErrAggregateNotFound}, expectedStatus: http.StatusNotFound},
		{name: "service error", service: &mockGlossaryService{err: errors.New("database error")}, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.service, &mockSyncService{}, &mockTranslationService{})

			w := serve(router, http.MethodDelete, "/api/v1/glossary/entries/agg-1", "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "agg-1", tt.service.aggregateIdentifier)
		})
	}
}

func TestGlossaryHandler_GetLanguagePairs(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		service         *mockTranslationService
		expectedStatus  int
		expectedLimitTo []string
	}{
		{
			name:   "no limit",
			target: "/api/v1/glossary/language-pairs",
			service: &mockTranslationService{pairs: &models.LanguagePairsResponse{
				LanguagePairs: []models.LanguagePair{{Source: "EN", Target: "DE"}},
			}},
			expectedStatus:  http.StatusOK,
			expectedLimitTo: nil,
		},
		{
			name:   "with limit",
			target: "/api/v1/glossary/language-pairs?limit=EN,%20DE,",
			service: &mockTranslationService{pairs: &models.LanguagePairsResponse{
				LanguagePairs: []models.LanguagePair{{Source: "EN", Target: "DE"}},
				Languages:     []string{"EN", "DE"},
			}},
			expectedStatus:  http.StatusOK,
			expectedLimitTo: []string{"EN", "DE"},
		},
		{
			name:            "empty limit",
			target:          "/api/v1/glossary/language-pairs?limit=",
			service:         &mockTranslationService{pairs: &models.LanguagePairsResponse{}},
			expectedStatus:  http.StatusOK,
			expectedLimitTo: []string{},
		},
		{
			name:            "provider error",
			target:          "/api/v1/glossary/language-pairs",
			service:         &mockTranslationService{err: &translation.APIError{StatusCode: http.StatusForbidden, Reason: "Forbidden"}},
			expectedStatus:  http.StatusBadGateway,
			expectedLimitTo: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockGlossaryService{}, &mockSyncService{}, tt.service)

			w := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			require.True(t, tt.service.limitSeen)
			assert.Equal(t, tt.expectedLimitTo, tt.service.limitTo)
		})
	}
}

func TestGlossaryHandler_GetStatus(t *testing.T) {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		syncSvc := &mockSyncService{statuses: []models.GlossaryStatus{
			{SourceLang: "EN", TargetLang: "DE", GlossaryID: "id", CreationDate: &created, CanBeUsed: true},
			{SourceLang: "DE", TargetLang: "EN", IsOutdated: true},
		}}
		router := newTestRouter(&mockGlossaryService{}, syncSvc, &mockTranslationService{})

		w := serve(router, http.MethodGet, "/api/v1/glossary/status", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"sourceLang":"EN","targetLang":"DE","glossaryId":"id","creationDate":"2024-02-01T00:00:00Z","isOutdated":false,"canBeUsed":true},
			{"sourceLang":"DE","targetLang":"EN","isOutdated":true,"canBeUsed":false}
		]`, w.Body.String())
	})

	t.Run("transport error", func(t *testing.T) {
		syncSvc := &mockSyncService{err: &translation.TransportError{Operation: "list_glossaries", Err: errors.New("refused")}}
		router := newTestRouter(&mockGlossaryService{}, syncSvc, &mockTranslationService{})

		w := serve(router, http.MethodGet, "/api/v1/glossary/status", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestGlossaryHandler_Sync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		syncSvc := &mockSyncService{results: []models.GlossarySyncResult{
			{SourceLang: "EN", TargetLang: "DE", EntryCount: 2, Deleted: 1, Created: true},
		}}
		router := newTestRouter(&mockGlossaryService{}, syncSvc, &mockTranslationService{})

		w := serve(router, http.MethodPost, "/api/v1/glossary/sync", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"sourceLang":"EN","targetLang":"DE","entryCount":2,"deleted":1,"created":true}]`, w.Body.String())
	})

	t.Run("provider error", func(t *testing.T) {
		syncSvc := &mockSyncService{err: &translation.APIError{StatusCode: http.StatusBadRequest, Reason: "Bad Request"}}
		router := newTestRouter(&mockGlossaryService{}, syncSvc, &mockTranslationService{})

		w := serve(router, http.MethodPost, "/api/v1/glossary/sync", "")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"error":"failed to synchronise glossaries"}`, w.Body.String())
	})
}

func TestTranslationHandler_Translate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *mockTranslationService
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success keeps order",
			body: `{"texts":{"b":"World","a":"Hello"},"targetLanguage":"DE","sourceLanguage":"EN"}`,
			service: &mockTranslationService{response: &models.TranslateResponse{
				Translations: models.NewTexts("b", "Welt", "a", "Hallo"),
				Outcome:      "success",
			}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"translations":{"b":"Welt","a":"Hallo"},"outcome":"success"}` + "\n",
		},
		{
			name:           "invalid body",
			body:           `{"texts":["a"]}`,
			service:        &mockTranslationService{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}` + "\n",
		},
		{
			name:           "invalid language",
			body:           `{"texts":{"a":"Hello"}}`,
			service:        &mockTranslationService{err: services.ErrInvalidLanguage},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid language"}` + "\n",
		},
		{
			name:           "integrity error",
			body:           `{"texts":{"a":"Hello"},"targetLanguage":"DE"}`,
			service:        &mockTranslationService{err: &translation.IntegrityError{Expected: 1, Actual: 2}},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"failed to translate texts"}` + "\n",
		},
		{
			name:           "unexpected error",
			body:           `{"texts":{"a":"Hello"},"targetLanguage":"DE"}`,
			service:        &mockTranslationService{err: errors.New("boom")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to translate texts"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&mockGlossaryService{}, &mockSyncService{}, tt.service)

			w := serve(router, http.MethodPost, "/api/v1/translate", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestTranslationHandler_Translate_DecodesOrderedTexts(t *testing.T) {
	service := &mockTranslationService{response: &models.TranslateResponse{Outcome: "success"}}
	router := newTestRouter(&mockGlossaryService{}, &mockSyncService{}, service)

	w := serve(router, http.MethodPost, "/api/v1/translate", `{"texts":{"z":"1","a":"2","m":"3"},"targetLanguage":"de"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"z", "a", "m"}, service.request.Texts.Keys())
	assert.Equal(t, "de", service.request.TargetLanguage)
}

// pingerFunc adapts a function to the Pinger interface
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{name: "healthy", expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "database down", pingErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable, expectedBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(pingerFunc(func(ctx context.Context) error { return tt.pingErr }), zap.NewNop())

			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
