// Package catalog provides the exercise catalog and metadata the program generator selects exercises from.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/liftplan/internal/program"
	"github.com/myrjola/liftplan/internal/sqlite"
)

// SQLiteReader lists the exercise catalog stored in SQLite.
type SQLiteReader struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewSQLiteReader creates a catalog reader querying the read-only pool of db.
func NewSQLiteReader(db *sqlite.Database, logger *slog.Logger) *SQLiteReader {
	return &SQLiteReader{
		db:     db,
		logger: logger,
	}
}

// ListExercises returns every exercise ordered by ID. Primary muscle groups come first in each muscle list.
func (r *SQLiteReader) ListExercises(ctx context.Context) (_ []program.CatalogEntry, err error) {
	start := time.Now()
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT e.id, e.name, e.equipment, COALESCE(emg.muscle_group_name, '')
		FROM exercises e
		         LEFT JOIN exercise_muscle_groups emg ON emg.exercise_id = e.id
		ORDER BY e.id, emg.is_primary DESC, emg.muscle_group_name`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var entries []program.CatalogEntry
	for rows.Next() {
		var (
			id        int
			name      string
			equipment string
			muscle    string
		)
		if err = rows.Scan(&id, &name, &equipment, &muscle); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if len(entries) == 0 || entries[len(entries)-1].ID != id {
			entries = append(entries, program.CatalogEntry{
				ID:        id,
				Name:      name,
				Muscles:   nil,
				Equipment: equipment,
			})
		}
		if muscle != "" {
			last := &entries[len(entries)-1]
			last.Muscles = append(last.Muscles, muscle)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	r.logger.LogAttrs(ctx, slog.LevelDebug, "listed exercises",
		slog.Int("count", len(entries)),
		slog.Duration("duration", time.Since(start)))
	return entries, nil
}

// Description returns the Markdown description of an exercise, or an empty string if it has none.
func (r *SQLiteReader) Description(ctx context.Context, exerciseID int) (string, error) {
	var description string
	err := r.db.ReadOnly.QueryRowContext(ctx,
		"SELECT description_markdown FROM exercises WHERE id = ?", exerciseID).Scan(&description)
	if err != nil {
		return "", fmt.Errorf("query exercise description %d: %w", exerciseID, err)
	}
	return description, nil
}
