package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/glossarygateway/backend/internal/translation"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// ErrInvalidLanguage is returned when a language code is missing or not a valid BCP 47 tag
var ErrInvalidLanguage = errors.New("invalid language")

// Translator is the interface that wraps the translation gateway operations
type Translator interface {
	// Method Translate translates texts keeping their keys and order.
	//
	// A degraded result carries the input texts; only transport and integrity failures are errors.
	Translate(ctx context.Context, texts models.Texts, targetLanguage, sourceLanguage string) (translation.Result, error)
	// Method LanguagePairs returns the configured pairs the provider supports for glossaries.
	LanguagePairs(ctx context.Context, limitTo []string) ([]models.LanguagePair, []string, error)
}

type translationService struct {
	translator Translator
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(translator Translator, logger *zap.Logger) *translationService {
	return &translationService{
		translator: translator,
		logger:     logger,
	}
}

// Translate validates the request languages and translates its texts
func (s *translationService) Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResponse, error) {
	targetLanguage, err := normalizeLanguage(req.TargetLanguage)
	if err != nil {
		return nil, fmt.Errorf("%w: target language: %v", ErrInvalidLanguage, err)
	}
	var sourceLanguage string
	if strings.TrimSpace(req.SourceLanguage) != "" {
		if sourceLanguage, err = normalizeLanguage(req.SourceLanguage); err != nil {
			return nil, fmt.Errorf("%w: source language: %v", ErrInvalidLanguage, err)
		}
	}

	result, err := s.translator.Translate(ctx, req.Texts, targetLanguage, sourceLanguage)
	if err != nil {
		s.logger.Error("failed to translate texts",
			zap.String("source_language", sourceLanguage),
			zap.String("target_language", targetLanguage),
			zap.Int("texts", req.Texts.Len()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to translate texts: %w", err)
	}

	return &models.TranslateResponse{
		Translations: result.Texts,
		Outcome:      result.Outcome.String(),
	}, nil
}

// LanguagePairs returns the usable glossary language pairs, optionally limited to some languages
func (s *translationService) LanguagePairs(ctx context.Context, limitTo []string) (*models.LanguagePairsResponse, error) {
	pairs, languages, err := s.translator.LanguagePairs(ctx, limitTo)
	if err != nil {
		s.logger.Error("failed to get glossary language pairs", zap.Error(err))
		return nil, fmt.Errorf("failed to get glossary language pairs: %w", err)
	}

	return &models.LanguagePairsResponse{
		LanguagePairs: pairs,
		Languages:     languages,
	}, nil
}

// normalizeLanguage upper-cases a language code after checking it is a valid BCP 47 tag
func normalizeLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", errors.New("language is required")
	}
	if _, err := language.Parse(code); err != nil {
		return "", err
	}
	return strings.ToUpper(code), nil
}
