package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/program"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (app *application) tablesCommand() *cobra.Command {
	var tablesPath string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the effective reference tables as YAML",
		Long: "Print the reference tables the generator uses. With --tables the overrides are merged over the " +
			"defaults and validated first, so the output is a good starting point for a custom tables file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.printTables(cmd.OutOrStdout(), tablesPath)
		},
	}
	cmd.Flags().StringVar(&tablesPath, "tables", "", "YAML file overriding the reference tables")
	return cmd
}

func (app *application) printTables(w io.Writer, tablesPath string) error {
	tables, err := loadTables(tablesPath)
	if err != nil {
		return errors.Wrap(err, "load tables", slog.String("path", tablesPath))
	}
	return encodeTables(w, tables)
}

// encodeTables writes tables as YAML. The encoder is closed even when encoding fails.
func encodeTables(w io.Writer, tables program.Tables) (err error) {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // spaces
	defer func() {
		if closeErr := enc.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close encoder: %w", closeErr))
		}
	}()
	if err = enc.Encode(tables); err != nil {
		return fmt.Errorf("encode tables: %w", err)
	}
	return nil
}
