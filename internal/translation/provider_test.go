package translation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAuthKey = "test-key"

// fakeProvider records the requests it receives and answers with the configured handlers
type fakeProvider struct {
	mu       sync.Mutex
	requests []recordedRequest
	handlers map[string]http.HandlerFunc
}

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Form   url.Values
}

func newFakeProvider(t *testing.T, handlers map[string]http.HandlerFunc) (*fakeProvider, *httptest.Server) {
	t.Helper()

	provider := &fakeProvider{handlers: handlers}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		provider.mu.Lock()
		provider.requests = append(provider.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Form:   r.PostForm,
		})
		provider.mu.Unlock()

		handler, ok := handlers[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return provider, server
}

func (p *fakeProvider) requestsTo(method, path string) []recordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()

	var matched []recordedRequest
	for _, r := range p.requests {
		if r.Method == method && r.Path == path {
			matched = append(matched, r)
		}
	}
	return matched
}

func respondJSON(status int, payload any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(payload)
	}
}

func respondRaw(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func translationsPayload(texts ...string) map[string]any {
	translations := make([]map[string]string, 0, len(texts))
	for _, text := range texts {
		translations = append(translations, map[string]string{
			"detected_source_language": "EN",
			"text":                     text,
		})
	}
	return map[string]any{"translations": translations}
}

func newTestGateway(t *testing.T, server *httptest.Server, modify func(*Config)) *Gateway {
	t.Helper()

	cfg := Config{
		AuthKey: testAuthKey,
		BaseURI: server.URL + "/v2/",
		DefaultOptions: url.Values{
			"tag_handling":    {"xml"},
			"ignore_tags":     {"ignore"},
			"split_sentences": {"nonewlines"},
		},
		LanguagePairs: []models.LanguagePair{
			{Source: "EN", Target: "DE"},
			{Source: "DE", Target: "EN"},
		},
	}
	if modify != nil {
		modify(&cfg)
	}

	gateway, err := NewGateway(cfg, zap.NewNop())
	require.NoError(t, err)
	return gateway
}
