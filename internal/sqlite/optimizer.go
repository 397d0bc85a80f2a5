package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Optimize gathers query planner statistics. Short-lived processes should call it before Close.
// See https://www.sqlite.org/pragma.html#pragma_optimize.
func (db *Database) Optimize(ctx context.Context) error {
	start := time.Now()
	if _, err := db.ReadWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
		return fmt.Errorf("optimize database: %w", err)
	}
	db.logger.LogAttrs(ctx, slog.LevelDebug, "optimized database", slog.Duration("duration", time.Since(start)))
	return nil
}
