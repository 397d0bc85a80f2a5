package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/myrjola/liftplan/internal/catalog"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/program"
	"github.com/myrjola/liftplan/internal/sqlite"
)

// openCatalog opens the catalog database. The returned close function optimizes and closes it.
func (app *application) openCatalog(ctx context.Context) (*catalog.SQLiteReader, func() error, error) {
	db, err := sqlite.NewDatabase(ctx, app.cfg.SqliteURL, app.logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open db", slog.String("url", app.cfg.SqliteURL))
	}
	closeDB := func() error {
		optimizeErr := db.Optimize(context.WithoutCancel(ctx))
		if closeErr := db.Close(); closeErr != nil {
			return errors.Join(optimizeErr, fmt.Errorf("close db: %w", closeErr))
		}
		return optimizeErr
	}
	return catalog.NewSQLiteReader(db, app.logger), closeDB, nil
}

func (app *application) loadMetadata() (program.MetadataTable, error) {
	if app.cfg.MetadataPath == "" {
		metadata, err := catalog.DefaultMetadata()
		if err != nil {
			return nil, errors.Wrap(err, "load embedded metadata")
		}
		return metadata, nil
	}

	f, err := os.Open(app.cfg.MetadataPath)
	if err != nil {
		return nil, errors.Wrap(err, "open metadata", slog.String("path", app.cfg.MetadataPath))
	}
	defer f.Close()
	metadata, err := catalog.LoadMetadata(f)
	if err != nil {
		return nil, errors.Wrap(err, "load metadata", slog.String("path", app.cfg.MetadataPath))
	}
	return metadata, nil
}
