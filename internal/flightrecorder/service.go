// Package flightrecorder captures execution traces of slow or failed program generation runs.
package flightrecorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"time"
)

const (
	// defaultMinAge is the minimum age of trace events to keep.
	defaultMinAge = 10 * time.Second

	// defaultMaxBytes is the maximum size of the trace buffer.
	defaultMaxBytes = 16 * 1024 * 1024 // 16MB
)

// Service keeps a rolling execution trace in memory and writes it to disk on demand.
type Service struct {
	logger          *slog.Logger
	flightRecorder  *trace.FlightRecorder
	tracesDirectory string
	now             func() time.Time
}

// Config configures the flight recorder service.
type Config struct {
	Logger          *slog.Logger
	MinAge          time.Duration // Minimum age of trace events
	MaxBytes        uint64        // Maximum size of trace buffer
	TracesDirectory string        // Directory where trace files are written
	// Now names the trace files. Defaults to time.Now.
	Now func() time.Time
}

// New creates a new flight recorder service. The traces directory is created if it does not exist.
func New(cfg Config) (*Service, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}

	if cfg.TracesDirectory == "" {
		return nil, errors.New("traces directory is required")
	}

	if stat, err := os.Stat(cfg.TracesDirectory); err != nil {
		if err = os.MkdirAll(cfg.TracesDirectory, 0o750); err != nil { //nolint:mnd // owner and group
			return nil, fmt.Errorf("create traces directory: %w", err)
		}
	} else if !stat.IsDir() {
		return nil, fmt.Errorf("traces path is not a directory: %s", cfg.TracesDirectory)
	}

	minAge := cfg.MinAge
	if minAge == 0 {
		minAge = defaultMinAge
	}

	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		logger: cfg.Logger,
		flightRecorder: trace.NewFlightRecorder(trace.FlightRecorderConfig{
			MinAge:   minAge,
			MaxBytes: maxBytes,
		}),
		tracesDirectory: cfg.TracesDirectory,
		now:             now,
	}, nil
}

// Start begins flight recording.
func (s *Service) Start(ctx context.Context) error {
	if err := s.flightRecorder.Start(); err != nil {
		return fmt.Errorf("start flight recorder: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "flight recorder started",
		slog.String("traces_directory", s.tracesDirectory))
	return nil
}

// Stop ends flight recording.
func (s *Service) Stop(ctx context.Context) {
	s.flightRecorder.Stop()
	s.logger.LogAttrs(ctx, slog.LevelDebug, "flight recorder stopped")
}

// Capture writes the recorded trace to <reason>-<timestamp>.trace in the traces directory and returns its path.
func (s *Service) Capture(ctx context.Context, reason string) (_ string, err error) {
	timestamp := s.now().UTC().Format("20060102-150405")
	fPath := filepath.Join(s.tracesDirectory, fmt.Sprintf("%s-%s.trace", reason, timestamp))

	file, err := os.Create(fPath)
	if err != nil {
		return "", fmt.Errorf("create trace file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close trace file: %w", closeErr))
		}
	}()

	bytesWritten, err := s.flightRecorder.WriteTo(file)
	if err != nil {
		return "", fmt.Errorf("write trace: %w", err)
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "captured trace",
		slog.String("file", fPath),
		slog.String("reason", reason),
		slog.Int64("bytes", bytesWritten))
	return fPath, nil
}
