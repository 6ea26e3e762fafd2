package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAggregateNotFound is returned when no entry carries the requested aggregate identifier
	ErrAggregateNotFound = errors.New("glossary entry aggregate not found")
	// ErrInvalidTexts is returned when the texts of an aggregate miss or add languages
	ErrInvalidTexts = errors.New("invalid glossary texts")
	// ErrAggregateIdentifierSet is returned when a create request already carries an identifier
	ErrAggregateIdentifierSet = errors.New("create must not have an aggregate identifier set")
)

// GlossaryEntryRepository is the interface that wraps methods for glossary_entries table data access
type GlossaryEntryRepository interface {
	// Method FindAll retrieves every entry ordered by id.
	FindAll(ctx context.Context) ([]models.GlossaryEntry, error)
	// Method FindByAggregateIdentifier retrieves the entries of one aggregate.
	//
	// An unknown identifier returns an empty slice and no error.
	FindByAggregateIdentifier(ctx context.Context, aggregateIdentifier string) ([]models.GlossaryEntry, error)
	// Method Add inserts an entry and sets its ID.
	Add(ctx context.Context, entry *models.GlossaryEntry) error
	// Method Update stores the text and modification time of an existing entry.
	Update(ctx context.Context, entry *models.GlossaryEntry) error
	// Method Remove deletes every entry of an aggregate and returns the number of deleted entries.
	Remove(ctx context.Context, aggregateIdentifier string) (int64, error)
}

type glossaryService struct {
	repo           GlossaryEntryRepository
	languagePairs  []models.LanguagePair
	sortByLanguage string
	now            func() time.Time
	logger         *zap.Logger
}

// NewGlossaryService creates a new glossary entry service for the configured language pairs
//
// sortByLanguage selects the text that orders aggregates in listings.
func NewGlossaryService(repo GlossaryEntryRepository, languagePairs []models.LanguagePair, sortByLanguage string, logger *zap.Logger) *glossaryService {
	return &glossaryService{
		repo:           repo,
		languagePairs:  slices.Clone(languagePairs),
		sortByLanguage: strings.ToUpper(sortByLanguage),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

// Languages returns the configured languages, every source language first, then the targets
func (s *glossaryService) Languages() []string {
	var languages []string
	add := func(language string) {
		language = strings.ToUpper(language)
		if language != "" && !slices.Contains(languages, language) {
			languages = append(languages, language)
		}
	}
	for _, pair := range s.languagePairs {
		add(pair.Source)
	}
	for _, pair := range s.languagePairs {
		add(pair.Target)
	}
	return languages
}

// ListAggregates groups all entries by aggregate identifier, sorted by their text in the sort language
func (s *glossaryService) ListAggregates(ctx context.Context) ([]models.EntryAggregate, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to get glossary entries", zap.Error(err))
		return nil, fmt.Errorf("failed to get glossary entries: %w", err)
	}

	aggregates := groupAggregates(entries)
	slices.SortStableFunc(aggregates, func(a, b models.EntryAggregate) int {
		return strings.Compare(a.Texts[s.sortByLanguage], b.Texts[s.sortByLanguage])
	})

	return aggregates, nil
}

// Create adds a new aggregate with one entry per configured language
//
// The aggregate identifier is generated; a non-empty aggregateIdentifier is rejected with
// ErrAggregateIdentifierSet. Every configured language needs a text.
func (s *glossaryService) Create(ctx context.Context, aggregateIdentifier string, texts map[string]string) (*models.EntryAggregate, error) {
	if aggregateIdentifier != "" {
		return nil, ErrAggregateIdentifierSet
	}

	normalized, err := s.normalizeTexts(texts)
	if err != nil {
		return nil, err
	}

	languages := s.Languages()
	for _, language := range languages {
		if _, ok := normalized[language]; !ok {
			return nil, fmt.Errorf("%w: there is no text for language %s", ErrInvalidTexts, language)
		}
	}

	aggregate := &models.EntryAggregate{
		AggregateIdentifier: uuid.New().String(),
		Texts:               make(map[string]string, len(languages)),
	}
	now := s.now()
	for _, language := range languages {
		entry := &models.GlossaryEntry{
			AggregateIdentifier:      aggregate.AggregateIdentifier,
			LastModificationDateTime: now,
			GlossaryLanguage:         language,
			Text:                     normalized[language],
		}
		if err := s.repo.Add(ctx, entry); err != nil {
			s.logger.Error("failed to add glossary entry",
				zap.String("aggregate_identifier", aggregate.AggregateIdentifier),
				zap.String("language", language),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to add glossary entry: %w", err)
		}
		aggregate.Texts[language] = entry.Text
	}

	s.logger.Info("glossary aggregate created", zap.String("aggregate_identifier", aggregate.AggregateIdentifier))
	return aggregate, nil
}

// Update changes the texts of an aggregate
//
// Entries whose text differs get the new text and the current time as modification time.
// Languages without an entry yet are added. Languages missing from texts are left untouched.
func (s *glossaryService) Update(ctx context.Context, aggregateIdentifier string, texts map[string]string) (*models.EntryAggregate, error) {
	normalized, err := s.normalizeTexts(texts)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindByAggregateIdentifier(ctx, aggregateIdentifier)
	if err != nil {
		s.logger.Error("failed to get glossary aggregate",
			zap.String("aggregate_identifier", aggregateIdentifier),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get glossary aggregate: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrAggregateNotFound
	}

	now := s.now()
	aggregate := &models.EntryAggregate{
		AggregateIdentifier: aggregateIdentifier,
		Texts:               make(map[string]string, len(entries)),
	}
	for i := range entries {
		entry := &entries[i]
		language := strings.ToUpper(entry.GlossaryLanguage)
		text, ok := normalized[language]
		delete(normalized, language)
		if ok && text != entry.Text {
			entry.Text = text
			entry.LastModificationDateTime = now
			if err := s.repo.Update(ctx, entry); err != nil {
				s.logger.Error("failed to update glossary entry", zap.Int("id", entry.ID), zap.Error(err))
				return nil, fmt.Errorf("failed to update glossary entry: %w", err)
			}
		}
		aggregate.Texts[language] = entry.Text
	}

	// languages without an entry, in configured order
	for _, language := range s.Languages() {
		text, ok := normalized[language]
		if !ok {
			continue
		}
		entry := &models.GlossaryEntry{
			AggregateIdentifier:      aggregateIdentifier,
			LastModificationDateTime: now,
			GlossaryLanguage:         language,
			Text:                     text,
		}
		if err := s.repo.Add(ctx, entry); err != nil {
			s.logger.Error("failed to add glossary entry",
				zap.String("aggregate_identifier", aggregateIdentifier),
				zap.String("language", language),
				zap.Error(err),
			)
			return nil, fmt.Errorf("failed to add glossary entry: %w", err)
		}
		aggregate.Texts[language] = text
	}

	s.logger.Info("glossary aggregate updated", zap.String("aggregate_identifier", aggregateIdentifier))
	return aggregate, nil
}

// Delete removes every entry of an aggregate
func (s *glossaryService) Delete(ctx context.Context, aggregateIdentifier string) error {
	removed, err := s.repo.Remove(ctx, aggregateIdentifier)
	if err != nil {
		s.logger.Error("failed to delete glossary aggregate",
			zap.String("aggregate_identifier", aggregateIdentifier),
			zap.Error(err),
		)
		return fmt.Errorf("failed to delete glossary aggregate: %w", err)
	}
	if removed == 0 {
		return ErrAggregateNotFound
	}

	s.logger.Info("glossary aggregate deleted",
		zap.String("aggregate_identifier", aggregateIdentifier),
		zap.Int64("entries", removed),
	)
	return nil
}

// normalizeTexts upper-cases the language keys and rejects languages that are not configured.
// Keys differing only in case are rejected instead of one silently winning.
func (s *glossaryService) normalizeTexts(texts map[string]string) (map[string]string, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: texts are required", ErrInvalidTexts)
	}

	languages := s.Languages()
	normalized := make(map[string]string, len(texts))
	for language, text := range texts {
		language = strings.ToUpper(strings.TrimSpace(language))
		if !slices.Contains(languages, language) {
			return nil, fmt.Errorf("%w: language %q is not configured", ErrInvalidTexts, language)
		}
		if _, exists := normalized[language]; exists {
			return nil, fmt.Errorf("%w: language %q given twice", ErrInvalidTexts, language)
		}
		normalized[language] = text
	}
	return normalized, nil
}

// groupAggregates groups entries by aggregate identifier in order of first appearance
func groupAggregates(entries []models.GlossaryEntry) []models.EntryAggregate {
	aggregates := make([]models.EntryAggregate, 0)
	positions := make(map[string]int)
	for _, entry := range entries {
		position, ok := positions[entry.AggregateIdentifier]
		if !ok {
			position = len(aggregates)
			positions[entry.AggregateIdentifier] = position
			aggregates = append(aggregates, models.EntryAggregate{
				AggregateIdentifier: entry.AggregateIdentifier,
				Texts:               make(map[string]string),
			})
		}
		aggregates[position].Texts[strings.ToUpper(entry.GlossaryLanguage)] = entry.Text
	}
	return aggregates
}
