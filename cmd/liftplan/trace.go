package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/flightrecorder"
)

// startRecorder starts the flight recorder when a traces directory is configured. It returns nil otherwise.
func (app *application) startRecorder(ctx context.Context) (*flightrecorder.Service, error) {
	if app.cfg.TracesDirectory == "" {
		return nil, nil //nolint:nilnil // recording is optional
	}
	recorder, err := flightrecorder.New(flightrecorder.Config{
		Logger:          app.logger,
		MinAge:          0,
		MaxBytes:        0,
		TracesDirectory: app.cfg.TracesDirectory,
		Now:             nil,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new flight recorder")
	}
	if err = recorder.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "start flight recorder")
	}
	return recorder, nil
}

// captureTrace stops the recorder, first writing a trace if the run failed or took too long.
func (app *application) captureTrace(
	ctx context.Context,
	recorder *flightrecorder.Service,
	elapsed time.Duration,
	runErr error,
) {
	if recorder == nil {
		return
	}
	defer recorder.Stop(ctx)

	var reason string
	switch {
	case runErr != nil:
		reason = "failed"
	case elapsed >= time.Duration(app.cfg.SlowGenerationMillis)*time.Millisecond:
		reason = "slow"
	default:
		return
	}
	if _, err := recorder.Capture(ctx, reason); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "failed to capture trace",
			slog.Duration("elapsed", elapsed), errors.SlogError(err))
	}
}
