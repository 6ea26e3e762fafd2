package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/glossarygateway/backend/internal/models"
	"go.uber.org/zap"
)

const glossaryEntryColumns = "id, aggregate_identifier, last_modification_date_time, glossary_language, text"

type glossaryEntryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewGlossaryEntryRepository creates a new glossary entry repository backed by MySQL
func NewGlossaryEntryRepository(db *sql.DB, logger *zap.Logger) *glossaryEntryRepository {
	return &glossaryEntryRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll retrieves every glossary entry ordered by id
func (r *glossaryEntryRepository) FindAll(ctx context.Context) ([]models.GlossaryEntry, error) {
	query := `
		SELECT ` + glossaryEntryColumns + `
		FROM glossary_entries
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query glossary entries", zap.Error(err))
		return nil, fmt.Errorf("failed to query glossary entries: %w", err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// FindByAggregateIdentifier retrieves the entries of one aggregate ordered by id
func (r *glossaryEntryRepository) FindByAggregateIdentifier(ctx context.Context, aggregateIdentifier string) ([]models.GlossaryEntry, error) {
	query := `
		SELECT ` + glossaryEntryColumns + `
		FROM glossary_entries
		WHERE aggregate_identifier = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, aggregateIdentifier)
	if err != nil {
		r.logger.Error("failed to query glossary entries by aggregate",
			zap.String("aggregate_identifier", aggregateIdentifier),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to query glossary entries: %w", err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

func (r *glossaryEntryRepository) scanEntries(rows *sql.Rows) ([]models.GlossaryEntry, error) {
	var entries []models.GlossaryEntry
	for rows.Next() {
		var entry models.GlossaryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.AggregateIdentifier,
			&entry.LastModificationDateTime,
			&entry.GlossaryLanguage,
			&entry.Text,
		); err != nil {
			r.logger.Error("failed to scan glossary entry", zap.Error(err))
			return nil, fmt.Errorf("failed to scan glossary entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}

// Add inserts a glossary entry and sets its ID
func (r *glossaryEntryRepository) Add(ctx context.Context, entry *models.GlossaryEntry) error {
	query := `
		INSERT INTO glossary_entries (aggregate_identifier, last_modification_date_time, glossary_language, text)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.AggregateIdentifier,
		entry.LastModificationDateTime,
		entry.GlossaryLanguage,
		entry.Text,
	)
	if err != nil {
		r.logger.Error("failed to insert glossary entry", zap.Error(err))
		return fmt.Errorf("failed to insert glossary entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	entry.ID = int(id)

	return nil
}

// Update stores the text and modification time of an existing entry
func (r *glossaryEntryRepository) Update(ctx context.Context, entry *models.GlossaryEntry) error {
	query := `
		UPDATE glossary_entries
		SET text = ?, last_modification_date_time = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, entry.Text, entry.LastModificationDateTime, entry.ID)
	if err != nil {
		r.logger.Error("failed to update glossary entry", zap.Int("id", entry.ID), zap.Error(err))
		return fmt.Errorf("failed to update glossary entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	// MySQL reports 0 rows when the values did not change, so a missing row is checked separately
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM glossary_entries WHERE id = ?)", entry.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check glossary entry: %w", err)
		}
		if !exists {
			return fmt.Errorf("glossary entry not found")
		}
	}

	return nil
}

// Remove deletes every entry of an aggregate and returns how many were deleted
func (r *glossaryEntryRepository) Remove(ctx context.Context, aggregateIdentifier string) (int64, error) {
	query := `DELETE FROM glossary_entries WHERE aggregate_identifier = ?`

	result, err := r.db.ExecContext(ctx, query, aggregateIdentifier)
	if err != nil {
		r.logger.Error("failed to delete glossary entries",
			zap.String("aggregate_identifier", aggregateIdentifier),
			zap.Error(err),
		)
		return 0, fmt.Errorf("failed to delete glossary entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
