// Package program turns a training profile into a multi-week resistance-training program.
//
// Generation is a fixed pipeline: choose a split, lay out the weekly schedule, compute weekly volume,
// distribute it over the sessions, then select exercises for every session from the exercise catalog.
// Every step except the catalog fetch is pure.
package program

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/liftplan/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Config configures a Generator.
type Config struct {
	// Catalog lists the exercises to choose from. Required.
	Catalog CatalogReader
	// Metadata classifies the catalog exercises. Required.
	Metadata MetadataTable
	// Tables are the reference tables. Zero value means DefaultTables.
	Tables Tables
	// Logger defaults to a logger that discards everything.
	Logger *slog.Logger
	// Now stamps the program creation time. Defaults to time.Now.
	Now func() time.Time
	// NewID returns the program identifier. Defaults to a random UUID.
	NewID func() string
	// MaxConcurrency bounds the number of sessions built at once. Values below 1 mean sequential.
	MaxConcurrency int
	// Classifier decides compound versus isolation. Defaults to ClassifyByPosition.
	Classifier Classifier
}

// Generator generates training programs. It holds only immutable configuration and is safe for
// concurrent use.
type Generator struct {
	catalog        CatalogReader
	metadata       MetadataTable
	tables         Tables
	logger         *slog.Logger
	now            func() time.Time
	newID          func() string
	maxConcurrency int
	classify       Classifier
}

// NewGenerator validates the configuration and fills in defaults.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("catalog reader is required")
	}
	if len(cfg.Metadata) == 0 {
		return nil, errors.New("exercise metadata cannot be empty")
	}

	tables := cfg.Tables
	if tables.Volume == nil {
		tables = DefaultTables()
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("validate tables: %w", err)
	}

	g := &Generator{
		catalog:        cfg.Catalog,
		metadata:       cfg.Metadata,
		tables:         tables,
		logger:         cfg.Logger,
		now:            cfg.Now,
		newID:          cfg.NewID,
		maxConcurrency: max(cfg.MaxConcurrency, 1),
		classify:       cfg.Classifier,
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.newID == nil {
		g.newID = uuid.NewString
	}
	if g.classify == nil {
		g.classify = ClassifyByPosition
	}
	return g, nil
}

// Tables returns the reference tables the generator uses.
func (g *Generator) Tables() Tables {
	return g.tables
}

// Generate builds a program for the profile. The profile is not validated; see TrainingProfile.Validate.
func (g *Generator) Generate(ctx context.Context, profile TrainingProfile) (GeneratedProgram, error) {
	id := g.newID()
	split := g.tables.DetermineSplit(profile)
	ctx = logging.WithAttrs(ctx, slog.String("program_id", id), slog.String("split", string(split)))

	schedule := g.tables.BuildWeeklySchedule(split, profile.DaysPerWeek)
	weekly := g.tables.CalcWeeklyVolume(profile)
	plans := g.tables.DistributeVolume(weekly, schedule)

	sessions, err := g.buildSessions(ctx, plans, profile, split)
	if err != nil {
		return GeneratedProgram{}, err
	}

	program := GeneratedProgram{
		ID:           id,
		CreatedAt:    g.now(),
		Profile:      profile,
		Split:        split,
		CycleWeeks:   g.tables.Limits.CycleWeeks,
		Sessions:     sessions,
		WeeklyVolume: weekly,
	}

	totalSets := 0
	for _, s := range sessions {
		totalSets += s.TotalSets
	}
	g.logger.LogAttrs(ctx, slog.LevelInfo, "generated program",
		slog.Int("sessions", len(sessions)),
		slog.Int("weekly_sets", totalSets),
		slog.Int("cycle_weeks", program.CycleWeeks))

	return program, nil
}

// buildSessions builds one session per plan. Results are stored by day index so the output does not
// depend on the order the sessions finish in.
func (g *Generator) buildSessions(
	ctx context.Context,
	plans []SessionVolumePlan,
	profile TrainingProfile,
	split SplitType,
) ([]GeneratedSession, error) {
	sessions := make([]GeneratedSession, len(plans))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.maxConcurrency)
	for i, plan := range plans {
		eg.Go(func() error {
			session, err := g.BuildSession(egCtx, i, plan, profile, split)
			if err != nil {
				return fmt.Errorf("generate session day %d: %w", i+1, err)
			}
			sessions[i] = session
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck // already wrapped with the day
	}
	return sessions, nil
}
