package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/myrjola/liftplan/internal/envstruct"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/i18n"
	"github.com/myrjola/liftplan/internal/logging"
	"github.com/spf13/cobra"
)

var errUnsupportedLanguage = errors.NewSentinel("unsupported language")

type application struct {
	cfg    config
	logger *slog.Logger
	lang   i18n.Language
}

type config struct {
	// SqliteURL is the URL to the SQLite catalog. The default in-memory database holds only the seed catalog.
	SqliteURL string `env:"LIFTPLAN_SQLITE_URL" envDefault:":memory:"`
	// MetadataPath optionally replaces the embedded exercise metadata with a YAML file.
	MetadataPath   string `env:"LIFTPLAN_METADATA_PATH" envDefault:""`
	LogLevel       string `env:"LIFTPLAN_LOG_LEVEL" envDefault:"warn"`
	LogFormat      string `env:"LIFTPLAN_LOG_FORMAT" envDefault:"text"`
	MaxConcurrency int    `env:"LIFTPLAN_MAX_CONCURRENCY" envDefault:"1"`
	// Language is the default language of exported plans. The --lang flag overrides it.
	Language string `env:"LIFTPLAN_LANG" envDefault:"en"`
	NoColor  bool   `env:"LIFTPLAN_NO_COLOR" envDefault:"false"`
	// TracesDirectory enables the flight recorder. Slow or failed generation runs write a trace there.
	TracesDirectory string `env:"LIFTPLAN_TRACES_DIR" envDefault:""`
	// SlowGenerationMillis is the generation time after which a run counts as slow.
	SlowGenerationMillis int `env:"LIFTPLAN_SLOW_GENERATION_MS" envDefault:"2000"`
}

func run(
	ctx context.Context,
	args []string,
	stdout io.Writer,
	stderr io.Writer,
	lookupEnv func(string) (string, bool),
) (err error) {
	var cancel context.CancelFunc
	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	defer func() {
		if panicErr := errors.DecoratePanic(recover()); panicErr != nil {
			err = panicErr
		}
	}()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "parse log level", slog.String("level", cfg.LogLevel))
	}
	logger, err := logging.NewLogger(stderr, cfg.LogFormat, level)
	if err != nil {
		return errors.Wrap(err, "new logger", slog.String("format", cfg.LogFormat))
	}

	lang := i18n.Language(cfg.Language)
	if !i18n.IsSupported(lang) {
		return errors.Wrap(errUnsupportedLanguage, "check language", slog.String("language", cfg.Language))
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	app := &application{
		cfg:    cfg,
		logger: logger,
		lang:   lang,
	}
	root := app.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err = root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	return nil
}

func (app *application) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "liftplan",
		Short:         "Generate resistance-training programs offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(app.generateCommand(), app.catalogCommand(), app.tablesCommand())
	return root
}

func main() {
	ctx := context.Background()
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	})))
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelWarn, "failed to load .env", errors.SlogError(err))
	}
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "liftplan failed", errors.SlogError(err))
		os.Exit(1)
	}
}
