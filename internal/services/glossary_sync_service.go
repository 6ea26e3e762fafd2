package services

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/glossarygateway/backend/internal/models"
	"github.com/glossarygateway/backend/internal/translation"
	"go.uber.org/zap"
)

const entriesFormatTSV = "tsv"

// LanguagePairProvider returns the configured language pairs the provider supports
type LanguagePairProvider interface {
	LanguagePairs(ctx context.Context, limitTo []string) ([]models.LanguagePair, []string, error)
}

// GlossaryDirectory is the interface that wraps the provider glossary operations
type GlossaryDirectory interface {
	// Method List fetches every glossary of the provider account.
	List(ctx context.Context) ([]models.Glossary, error)
	// Method Create creates a glossary from a url-encoded definition.
	Create(ctx context.Context, definition url.Values) error
	// Method Delete deletes a glossary by id.
	Delete(ctx context.Context, glossaryID string) error
}

type glossarySyncService struct {
	repo       GlossaryEntryRepository
	pairs      LanguagePairProvider
	directory  GlossaryDirectory
	namePrefix string
	logger     *zap.Logger
}

// NewGlossarySyncService creates a service that pushes the stored entries to the provider glossaries
func NewGlossarySyncService(repo GlossaryEntryRepository, pairs LanguagePairProvider, directory GlossaryDirectory, namePrefix string, logger *zap.Logger) *glossarySyncService {
	return &glossarySyncService{
		repo:       repo,
		pairs:      pairs,
		directory:  directory,
		namePrefix: namePrefix,
		logger:     logger,
	}
}

// Sync replaces the provider glossary of every usable language pair with the stored entries
//
// Only aggregates with a non-empty text in both languages of a pair become glossary entries.
// Existing glossaries of the pair are deleted once the new one exists; a pair without entries keeps no glossary.
func (s *glossarySyncService) Sync(ctx context.Context) ([]models.GlossarySyncResult, error) {
	pairs, _, err := s.pairs.LanguagePairs(ctx, nil)
	if err != nil {
		s.logger.Error("failed to get usable language pairs", zap.Error(err))
		return nil, fmt.Errorf("failed to get usable language pairs: %w", err)
	}

	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to get glossary entries", zap.Error(err))
		return nil, fmt.Errorf("failed to get glossary entries: %w", err)
	}
	aggregates := groupAggregates(entries)

	glossaries, err := s.directory.List(ctx)
	if err != nil {
		s.logger.Error("failed to list provider glossaries", zap.Error(err))
		return nil, fmt.Errorf("failed to list provider glossaries: %w", err)
	}

	results := make([]models.GlossarySyncResult, 0, len(pairs))
	for _, pair := range pairs {
		result, err := s.syncPair(ctx, pair, aggregates, glossaries)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

// syncPair creates the new glossary of a pair before deleting the previous ones,
// so a failed create leaves the old glossary in use.
func (s *glossarySyncService) syncPair(ctx context.Context, pair models.LanguagePair, aggregates []models.EntryAggregate, glossaries []models.Glossary) (models.GlossarySyncResult, error) {
	source := strings.ToUpper(pair.Source)
	target := strings.ToUpper(pair.Target)
	key := translation.GlossaryKey(source, target)
	result := models.GlossarySyncResult{SourceLang: source, TargetLang: target}

	lines := tsvLines(aggregates, source, target)
	result.EntryCount = len(lines)
	if len(lines) == 0 {
		s.logger.Info("no complete glossary entries for language pair", zap.String("key", key))
	} else {
		definition := url.Values{
			"name":           {s.namePrefix + "-" + key},
			"source_lang":    {source},
			"target_lang":    {target},
			"entries":        {strings.Join(lines, "\n")},
			"entries_format": {entriesFormatTSV},
		}
		if err := s.directory.Create(ctx, definition); err != nil {
			s.logger.Error("failed to create glossary", zap.String("key", key), zap.Error(err))
			return result, fmt.Errorf("failed to create glossary %s: %w", key, err)
		}
		result.Created = true
	}

	for _, glossary := range glossaries {
		if translation.GlossaryKey(glossary.SourceLang, glossary.TargetLang) != key {
			continue
		}
		if err := s.directory.Delete(ctx, glossary.ID); err != nil {
			s.logger.Error("failed to delete outdated glossary",
				zap.String("key", key),
				zap.String("glossary_id", glossary.ID),
				zap.Error(err),
			)
			return result, fmt.Errorf("failed to delete glossary %s: %w", glossary.ID, err)
		}
		result.Deleted++
	}

	s.logger.Info("glossary synchronised",
		zap.String("key", key),
		zap.Int("entries", result.EntryCount),
		zap.Int("deleted", result.Deleted),
	)
	return result, nil
}

// Status reports for every usable language pair whether its provider glossary is usable and current
func (s *glossarySyncService) Status(ctx context.Context) ([]models.GlossaryStatus, error) {
	pairs, _, err := s.pairs.LanguagePairs(ctx, nil)
	if err != nil {
		s.logger.Error("failed to get usable language pairs", zap.Error(err))
		return nil, fmt.Errorf("failed to get usable language pairs: %w", err)
	}

	glossaries, err := s.directory.List(ctx)
	if err != nil {
		s.logger.Error("failed to list provider glossaries", zap.Error(err))
		return nil, fmt.Errorf("failed to list provider glossaries: %w", err)
	}

	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to get glossary entries", zap.Error(err))
		return nil, fmt.Errorf("failed to get glossary entries: %w", err)
	}

	newest := make(map[string]models.Glossary)
	for _, glossary := range glossaries {
		key := translation.GlossaryKey(glossary.SourceLang, glossary.TargetLang)
		if current, ok := newest[key]; !ok || glossary.CreationDate.After(current.CreationDate) {
			newest[key] = glossary
		}
	}

	statuses := make([]models.GlossaryStatus, 0, len(pairs))
	for _, pair := range pairs {
		source := strings.ToUpper(pair.Source)
		target := strings.ToUpper(pair.Target)
		key := translation.GlossaryKey(source, target)

		status := models.GlossaryStatus{SourceLang: source, TargetLang: target, IsOutdated: true}
		if glossary, ok := newest[key]; ok {
			creationDate := glossary.CreationDate
			status.GlossaryID = glossary.ID
			status.CreationDate = &creationDate
			status.CanBeUsed = glossary.Ready
			status.IsOutdated = modifiedAfter(entries, creationDate, source, target)
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// tsvLines builds one "source<TAB>target" line per aggregate with both texts set
func tsvLines(aggregates []models.EntryAggregate, source, target string) []string {
	var lines []string
	for _, aggregate := range aggregates {
		sourceText := tsvField(aggregate.Texts[source])
		targetText := tsvField(aggregate.Texts[target])
		if sourceText == "" || targetText == "" {
			continue
		}
		lines = append(lines, sourceText+"\t"+targetText)
	}
	return lines
}

var tsvReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func tsvField(text string) string {
	return strings.TrimSpace(tsvReplacer.Replace(text))
}

// modifiedAfter reports whether an entry in one of the languages changed after since
func modifiedAfter(entries []models.GlossaryEntry, since time.Time, languages ...string) bool {
	for _, entry := range entries {
		if !slices.ContainsFunc(languages, func(language string) bool {
			return strings.EqualFold(language, entry.GlossaryLanguage)
		}) {
			continue
		}
		if entry.LastModificationDateTime.After(since) {
			return true
		}
	}
	return false
}
