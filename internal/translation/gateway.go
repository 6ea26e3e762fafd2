package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/glossarygateway/backend/internal/models"
	"go.uber.org/zap"
)

// Outcome tells whether a translate call produced translations
type Outcome int

const (
	// OutcomeSuccess means the result holds the provider translations
	OutcomeSuccess Outcome = iota
	// OutcomeDegraded means the provider call did not succeed as expected and the result
	// holds the input texts unchanged
	OutcomeDegraded
)

func (o Outcome) String() string {
	if o == OutcomeDegraded {
		return "degraded"
	}
	return "success"
}

// Result is the non-fatal result of a translate call.
// Fatal failures (*TransportError, *IntegrityError) are returned as errors instead.
type Result struct {
	Outcome Outcome
	// Texts holds the translations keyed like the input, or the input itself when degraded.
	Texts models.Texts
	// Classification describes the provider status that caused a degraded outcome.
	Classification Classification
}

// Degraded reports whether the input was returned unchanged
func (r Result) Degraded() bool {
	return r.Outcome == OutcomeDegraded
}

// Gateway sends translation requests to the provider, attaching the glossary of the requested
// language pair and masking ignored terms.
type Gateway struct {
	cfg       Config
	masker    *TermMasker
	directory *GlossaryDirectory
	client    *providerClient
	logger    *zap.Logger
}

type translateResponse struct {
	Translations *[]struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// NewGateway creates a gateway from an immutable configuration
func NewGateway(cfg Config, logger *zap.Logger) (*Gateway, error) {
	if cfg.AuthKey == "" {
		return nil, fmt.Errorf("provider authentication key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.clone()

	masker, err := NewTermMasker(cfg.IgnoredTerms)
	if err != nil {
		return nil, err
	}

	client := newProviderClient(cfg, logger)
	logger.Info("translation gateway configured",
		zap.String("base_uri", client.baseURI),
		zap.Bool("free_account", IsFreeKey(cfg.AuthKey)),
		zap.Int("language_pairs", len(cfg.LanguagePairs)),
		zap.Int("ignored_terms", len(cfg.IgnoredTerms)),
		zap.Duration("timeout", cfg.Timeout),
	)

	return &Gateway{
		cfg:       cfg,
		masker:    masker,
		directory: &GlossaryDirectory{client: client, logger: logger},
		client:    client,
		logger:    logger,
	}, nil
}

// Glossaries returns the glossary directory of the provider account
func (g *Gateway) Glossaries() *GlossaryDirectory {
	return g.directory
}

// ConfiguredLanguagePairs returns a copy of the configured language pairs
func (g *Gateway) ConfiguredLanguagePairs() []models.LanguagePair {
	return append([]models.LanguagePair(nil), g.cfg.LanguagePairs...)
}

// LanguagePairs returns the configured pairs the provider supports, see ReconcileLanguagePairs
func (g *Gateway) LanguagePairs(ctx context.Context, limitTo []string) ([]models.LanguagePair, []string, error) {
	supported, err := g.directory.SupportedLanguagePairs(ctx)
	if err != nil {
		return nil, nil, err
	}
	pairs, languages := ReconcileLanguagePairs(g.cfg.LanguagePairs, supported, limitTo)
	return pairs, languages, nil
}

// Translate translates texts into targetLanguage. sourceLanguage may be empty to let the
// provider detect it.
//
// A non-200 status or an empty 200 body degrades to returning texts unchanged. Only transport
// failures and a translation count mismatch are returned as errors.
func (g *Gateway) Translate(ctx context.Context, texts models.Texts, targetLanguage, sourceLanguage string) (Result, error) {
	keys := texts.Keys()
	values := texts.Values()
	if len(keys) == 0 {
		return Result{Outcome: OutcomeSuccess, Texts: models.Texts{}}, nil
	}

	form := g.translateForm(values, targetLanguage, sourceLanguage)

	// without a source language the provider cannot apply a glossary
	if sourceLanguage != "" {
		glossaryID, err := g.directory.Resolve(ctx, PrimarySubtag(sourceLanguage), PrimarySubtag(targetLanguage))
		var transportErr *TransportError
		switch {
		case errors.As(err, &transportErr):
			return Result{}, err
		case err != nil:
			g.logger.Warn("glossary lookup failed, translating without glossary",
				zap.String("source_language", sourceLanguage),
				zap.String("target_language", targetLanguage),
				zap.Error(err),
			)
		case glossaryID != "":
			form.Set("glossary_id", glossaryID)
		}
	}

	resp, err := g.client.do(ctx, opTranslate, http.MethodPost, "translate", form)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	classification := Classify(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		g.logClassification(classification, sourceLanguage, targetLanguage)
		return g.degraded(texts, classification), nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &TransportError{Operation: opTranslate, Err: err}
	}

	var payload translateResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Translations == nil {
		g.logger.Warn("provider returned an empty translation response, keeping original texts",
			zap.Int("body_length", len(body)),
		)
		return g.degraded(texts, classification), nil
	}

	translations := *payload.Translations
	if len(translations) != len(keys) {
		err := &IntegrityError{Expected: len(keys), Actual: len(translations)}
		g.logger.Error("provider translation count mismatch", zap.Error(err))
		return Result{}, err
	}

	var translated models.Texts
	for i, key := range keys {
		translated.Set(key, Unmask(translations[i].Text))
	}
	recordTranslateOutcome(OutcomeSuccess, len(keys))

	return Result{Outcome: OutcomeSuccess, Texts: translated, Classification: classification}, nil
}

// translateForm builds the request body: default options, languages, then one masked text
// field per value in order.
func (g *Gateway) translateForm(values []string, targetLanguage, sourceLanguage string) url.Values {
	form := url.Values{}
	for key, optionValues := range g.cfg.DefaultOptions {
		form[key] = append([]string(nil), optionValues...)
	}
	if sourceLanguage != "" {
		form.Set("source_lang", sourceLanguage)
	}
	form.Set("target_lang", targetLanguage)
	form.Del("text")
	for _, value := range values {
		form.Add("text", g.masker.Mask(value))
	}
	return form
}

func (g *Gateway) degraded(texts models.Texts, classification Classification) Result {
	recordTranslateOutcome(OutcomeDegraded, texts.Len())
	return Result{Outcome: OutcomeDegraded, Texts: texts, Classification: classification}
}

func (g *Gateway) logClassification(c Classification, sourceLanguage, targetLanguage string) {
	fields := []zap.Field{
		zap.Int("status", c.StatusCode),
		zap.String("severity", c.Severity.String()),
	}
	if c.StatusCode == http.StatusBadRequest {
		fields = append(fields,
			zap.String("source_language", sourceLanguage),
			zap.String("target_language", targetLanguage),
		)
	}

	if c.Severity == SeverityCritical {
		g.logger.Error(c.Message, fields...)
		return
	}
	g.logger.Warn(c.Message, fields...)
}
