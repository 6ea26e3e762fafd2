package translation

import (
	"context"
	"net/http"
	"net/url"

	"github.com/glossarygateway/backend/internal/models"
	"go.uber.org/zap"
)

// GlossaryDirectory lists, creates and deletes provider glossaries and resolves the glossary of
// a language pair. Listings are fetched on every call and never cached.
type GlossaryDirectory struct {
	client *providerClient
	logger *zap.Logger
}

type glossariesResponse struct {
	Glossaries []models.Glossary `json:"glossaries"`
}

type languagePairsResponse struct {
	SupportedLanguages []struct {
		SourceLang string `json:"source_lang"`
		TargetLang string `json:"target_lang"`
	} `json:"supported_languages"`
}

// List fetches all glossaries of the provider account, in provider order
func (d *GlossaryDirectory) List(ctx context.Context) ([]models.Glossary, error) {
	var payload glossariesResponse
	if err := d.client.getJSON(ctx, opListGlossaries, "glossaries", &payload); err != nil {
		return nil, err
	}
	return payload.Glossaries, nil
}

// Resolve returns the id of the first ready glossary for the source/target pair, or "" if
// there is none. Regional subtags are ignored, so EN-US→DE resolves the EN-DE glossary.
func (d *GlossaryDirectory) Resolve(ctx context.Context, sourceLanguage, targetLanguage string) (string, error) {
	requestedKey := GlossaryKey(PrimarySubtag(sourceLanguage), PrimarySubtag(targetLanguage))

	glossaries, err := d.List(ctx)
	if err != nil {
		return "", err
	}

	for _, glossary := range glossaries {
		if !glossary.Ready {
			continue
		}
		if GlossaryKey(glossary.SourceLang, glossary.TargetLang) == requestedKey {
			return glossary.ID, nil
		}
	}

	d.logger.Debug("no ready glossary for language pair", zap.String("key", requestedKey))
	return "", nil
}

// Create creates a glossary from a url-encoded definition (name, source_lang, target_lang,
// entries, entries_format). It fails with *APIError unless the provider answers 201.
func (d *GlossaryDirectory) Create(ctx context.Context, definition url.Values) error {
	if err := d.client.expectStatus(ctx, opCreateGlossary, http.MethodPost, "glossaries", definition, http.StatusCreated); err != nil {
		return err
	}
	d.logger.Info("glossary created",
		zap.String("source_lang", definition.Get("source_lang")),
		zap.String("target_lang", definition.Get("target_lang")),
	)
	return nil
}

// Delete deletes a glossary by id. It fails with *APIError unless the provider answers 204.
func (d *GlossaryDirectory) Delete(ctx context.Context, glossaryID string) error {
	path := "glossaries/" + url.PathEscape(glossaryID)
	if err := d.client.expectStatus(ctx, opDeleteGlossary, http.MethodDelete, path, nil, http.StatusNoContent); err != nil {
		return err
	}
	d.logger.Info("glossary deleted", zap.String("glossary_id", glossaryID))
	return nil
}

// SupportedLanguagePairs fetches the language pairs the provider supports for glossaries
func (d *GlossaryDirectory) SupportedLanguagePairs(ctx context.Context) ([]models.LanguagePair, error) {
	var payload languagePairsResponse
	if err := d.client.getJSON(ctx, opLanguagePairs, "glossary-language-pairs", &payload); err != nil {
		return nil, err
	}

	pairs := make([]models.LanguagePair, 0, len(payload.SupportedLanguages))
	for _, p := range payload.SupportedLanguages {
		pairs = append(pairs, models.LanguagePair{Source: p.SourceLang, Target: p.TargetLang})
	}
	return pairs, nil
}
