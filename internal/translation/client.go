package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/glossarygateway/backend/internal/models"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURI is the provider endpoint for standard accounts
	DefaultBaseURI = "https://api.deepl.com/v2/"
	// DefaultBaseURIFree is the provider endpoint for free accounts
	DefaultBaseURIFree = "https://api-free.deepl.com/v2/"

	freeKeySuffix       = ":fx"
	authorizationScheme = "DeepL-Auth-Key"
)

// Provider operations, used as metric labels and in transport errors
const (
	opTranslate      = "translate"
	opLanguagePairs  = "glossary_language_pairs"
	opListGlossaries = "list_glossaries"
	opCreateGlossary = "create_glossary"
	opDeleteGlossary = "delete_glossary"
)

// Config holds the immutable settings of a Gateway
type Config struct {
	// AuthKey is the provider authentication key. Keys ending in ":fx" belong to free accounts.
	AuthKey string
	// BaseURI is used for standard accounts. Defaults to DefaultBaseURI.
	BaseURI string
	// BaseURIFree is used for free accounts. Defaults to DefaultBaseURIFree.
	BaseURIFree string
	// DefaultOptions are sent with every translate request.
	DefaultOptions url.Values
	// IgnoredTerms are patterns the provider must not translate.
	IgnoredTerms []string
	// LanguagePairs are the configured glossary language pairs.
	LanguagePairs []models.LanguagePair
	// Timeout bounds every provider request. Zero disables the timeout.
	Timeout time.Duration
}

// IsFreeKey reports whether the authentication key belongs to a free account
func IsFreeKey(authKey string) bool {
	return strings.HasSuffix(authKey, freeKeySuffix)
}

// Endpoint returns the base URI matching the authentication key
func (c Config) Endpoint() string {
	if IsFreeKey(c.AuthKey) {
		if c.BaseURIFree == "" {
			return DefaultBaseURIFree
		}
		return c.BaseURIFree
	}
	if c.BaseURI == "" {
		return DefaultBaseURI
	}
	return c.BaseURI
}

// clone returns a deep copy so callers cannot mutate a gateway's configuration
func (c Config) clone() Config {
	out := c
	out.DefaultOptions = url.Values{}
	for key, values := range c.DefaultOptions {
		out.DefaultOptions[key] = append([]string(nil), values...)
	}
	out.IgnoredTerms = append([]string(nil), c.IgnoredTerms...)
	out.LanguagePairs = append([]models.LanguagePair(nil), c.LanguagePairs...)
	return out
}

// providerClient sends requests to the provider. The http.Client is shared between calls;
// headers and credentials are set on every request.
type providerClient struct {
	baseURI    string
	authKey    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newProviderClient(cfg Config, logger *zap.Logger) *providerClient {
	return &providerClient{
		baseURI: strings.TrimRight(cfg.Endpoint(), "/") + "/",
		authKey: cfg.AuthKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// newRequest builds a provider request. A non-nil form is sent url-encoded.
func (c *providerClient) newRequest(ctx context.Context, method, path string, form url.Values) (*http.Request, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURI+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", authorizationScheme+" "+c.authKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

// do sends one request and waits for the response. Failures to reach the provider are
// returned as *TransportError; the caller closes the response body.
func (c *providerClient) do(ctx context.Context, operation, method, path string, form url.Values) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, form)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		recordProviderRequest(operation, 0, duration)
		c.logger.Error("provider request failed",
			zap.String("operation", operation),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &TransportError{Operation: operation, Err: err}
	}

	recordProviderRequest(operation, resp.StatusCode, duration)
	c.logger.Debug("provider request completed",
		zap.String("operation", operation),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
	)
	return resp, nil
}

// getJSON sends a GET request and decodes a 200 response into target
func (c *providerClient) getJSON(ctx context.Context, operation, path string, target any) error {
	resp, err := c.do(ctx, operation, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.apiError(operation, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return nil
}

// expectStatus sends a request and fails with *APIError unless the provider answers with expected
func (c *providerClient) expectStatus(ctx context.Context, operation, method, path string, form url.Values, expected int) error {
	resp, err := c.do(ctx, operation, method, path, form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expected {
		return c.apiError(operation, resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// apiError builds an *APIError from a failed response, reading the provider "detail" if present
func (c *providerClient) apiError(operation string, resp *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
	}

	var content struct {
		Detail string `json:"detail"`
	}
	if body, err := io.ReadAll(resp.Body); err == nil && json.Unmarshal(body, &content) == nil {
		apiErr.Detail = content.Detail
	}

	c.logger.Error("provider API error",
		zap.String("operation", operation),
		zap.Int("status", apiErr.StatusCode),
		zap.String("reason", apiErr.Reason),
		zap.String("detail", apiErr.Detail),
	)
	return apiErr
}

// reasonPhrase extracts "Forbidden" from a "403 Forbidden" status line
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
