package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/myrjola/liftplan/internal/catalog"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/i18n"
	"github.com/myrjola/liftplan/internal/planexport"
	"github.com/myrjola/liftplan/internal/program"
	"github.com/myrjola/liftplan/internal/ptr"
	"github.com/spf13/cobra"
)

// Output formats of the generate command.
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

var (
	errUnknownFormat     = errors.NewSentinel("unknown output format")
	errUnknownProfileKey = errors.NewSentinel("unknown profile key")
)

type generateOptions struct {
	profilePath string
	tablesPath  string
	format      string
	outputPath  string
	lang        string
	quiet       bool
}

func (app *application) generateCommand() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a training program from a TOML profile",
		Example: `  liftplan generate --profile profile.toml
  liftplan generate --profile profile.toml --format html --output plan.html --lang fi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.generate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.profilePath, "profile", "p", "", "training profile TOML file")
	flags.StringVar(&opts.tablesPath, "tables", "", "YAML file overriding the reference tables")
	flags.StringVarP(&opts.format, "format", "f", formatJSON, "output format: json, markdown or html")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "write the plan to this file instead of stdout")
	flags.StringVar(&opts.lang, "lang", "", "language of the plan, defaults to LIFTPLAN_LANG")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the summary")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func (app *application) generate(ctx context.Context, stdout, stderr io.Writer, opts generateOptions) (err error) {
	lang := app.lang
	if opts.lang != "" {
		lang = i18n.Language(opts.lang)
		if !i18n.IsSupported(lang) {
			return errors.Wrap(errUnsupportedLanguage, "check language", slog.String("language", opts.lang))
		}
	}
	switch opts.format {
	case formatJSON, formatMarkdown, formatHTML:
	default:
		return errors.Wrap(errUnknownFormat, "check format", slog.String("format", opts.format))
	}

	profile, err := loadProfile(opts.profilePath)
	if err != nil {
		return errors.Wrap(err, "load profile", slog.String("path", opts.profilePath))
	}
	tables, err := loadTables(opts.tablesPath)
	if err != nil {
		return errors.Wrap(err, "load tables", slog.String("path", opts.tablesPath))
	}
	metadata, err := app.loadMetadata()
	if err != nil {
		return err
	}

	reader, closeDB, err := app.openCatalog(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeDB())
	}()

	generator, err := program.NewGenerator(program.Config{
		Catalog:        catalog.NewShared(reader),
		Metadata:       metadata,
		Tables:         tables,
		Logger:         app.logger,
		Now:            nil,
		NewID:          nil,
		MaxConcurrency: app.cfg.MaxConcurrency,
		Classifier:     nil,
	})
	if err != nil {
		return errors.Wrap(err, "new generator")
	}
	recorder, err := app.startRecorder(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	generated, err := generator.Generate(ctx, profile)
	app.captureTrace(ctx, recorder, time.Since(start), err)
	if err != nil {
		return errors.Wrap(err, "generate program")
	}
	plan := program.ToPlan(generated, lang)

	out := stdout
	if opts.outputPath != "" {
		var f *os.File
		if f, err = os.Create(opts.outputPath); err != nil {
			return errors.Wrap(err, "create output", slog.String("path", opts.outputPath))
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("close output: %w", closeErr))
			}
		}()
		out = f
	}
	if err = writePlan(out, plan, opts.format, lang); err != nil {
		return errors.Wrap(err, "write plan", slog.String("format", opts.format))
	}

	if !opts.quiet {
		printSummary(stderr, generated, plan)
	}
	return nil
}

func loadProfile(path string) (program.TrainingProfile, error) {
	var profile program.TrainingProfile
	md, err := toml.DecodeFile(path, &profile)
	if err != nil {
		return profile, fmt.Errorf("decode profile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return profile, fmt.Errorf("%w: %s", errUnknownProfileKey, strings.Join(keys, ", "))
	}
	if err = profile.Validate(); err != nil {
		return profile, fmt.Errorf("validate profile: %w", err)
	}
	return profile, nil
}

func loadTables(path string) (program.Tables, error) {
	if path == "" {
		return program.DefaultTables(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return program.Tables{}, fmt.Errorf("open tables: %w", err)
	}
	defer f.Close()
	tables, err := program.LoadTables(f)
	if err != nil {
		return program.Tables{}, fmt.Errorf("load tables: %w", err)
	}
	return tables, nil
}

func writePlan(w io.Writer, plan program.Plan, format string, lang i18n.Language) error {
	switch format {
	case formatMarkdown:
		return planexport.WriteMarkdown(w, plan, lang) //nolint:wrapcheck // wrapped by the caller
	case formatHTML:
		return planexport.WriteHTML(w, plan, lang) //nolint:wrapcheck // wrapped by the caller
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func printSummary(w io.Writer, generated program.GeneratedProgram, plan program.Plan) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	bold.Fprintf(w, "%s\n", plan.Name)
	fmt.Fprintf(w, "  %s %s, %d days per week, %d minutes per session\n",
		cyan.Sprint("profile:"), generated.Profile.Goal, generated.Profile.DaysPerWeek,
		generated.Profile.MinutesPerSession)
	if b := generated.Profile.Biometrics; b != nil {
		fmt.Fprintf(w, "  %s %.1f kg, %.0f cm, age %d\n", cyan.Sprint("biometrics:"),
			ptr.ValueOr(b.WeightKg, 0), ptr.ValueOr(b.HeightCm, 0), ptr.ValueOr(b.Age, 0))
	}
	for i, s := range generated.Sessions {
		day := plan.Days[i]
		fmt.Fprintf(w, "  %s %-20s %2d sets  ~%d min\n",
			cyan.Sprintf("%-12s", day.DayName), day.Focus, s.TotalSets, s.EstimatedMinutes)
		if missing := s.Uncovered(); len(missing) > 0 {
			yellow.Fprintf(w, "    no exercises for %v\n", missing)
		}
	}
	fmt.Fprintf(w, "  %s %d weeks, program %s\n", cyan.Sprint("cycle:"), generated.CycleWeeks, generated.ID)
}
