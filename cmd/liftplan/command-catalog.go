package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/myrjola/liftplan/internal/errors"
	"github.com/myrjola/liftplan/internal/planexport"
	"github.com/spf13/cobra"
)

func (app *application) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the exercise catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog exercises and whether the generator can select them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.listCatalog(cmd.Context(), cmd.OutOrStdout())
		},
	}

	var asHTML bool
	show := &cobra.Command{
		Use:   "show <exercise-id>",
		Short: "Print the description of an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "parse exercise id", slog.String("id", args[0]))
			}
			return app.showExercise(cmd.Context(), cmd.OutOrStdout(), id, asHTML)
		},
	}
	show.Flags().BoolVar(&asHTML, "html", false, "render the description as HTML")

	cmd.AddCommand(list, show)
	return cmd
}

func (app *application) listCatalog(ctx context.Context, w io.Writer) (err error) {
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

	entries, err := reader.ListExercises(ctx)
	if err != nil {
		return errors.Wrap(err, "list exercises")
	}

	red := color.New(color.FgRed)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // column padding
	fmt.Fprintln(tw, "ID\tNAME\tEQUIPMENT\tMUSCLES\tLEVEL")
	for _, e := range entries {
		level := red.Sprint("no metadata")
		if md, ok := metadata.Lookup(e.Name); ok {
			level = string(md.MinLevel)
		}
		equipment := e.Equipment
		if equipment == "" {
			equipment = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Name, equipment, strings.Join(e.Muscles, ", "), level)
	}
	if err = tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

func (app *application) showExercise(ctx context.Context, w io.Writer, id int, asHTML bool) (err error) {
	reader, closeDB, err := app.openCatalog(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeDB())
	}()

	description, err := reader.Description(ctx, id)
	if err != nil {
		return errors.Wrap(err, "get description", slog.Int("exercise_id", id))
	}
	if asHTML {
		if description, err = planexport.MarkdownToHTML(description); err != nil {
			return errors.Wrap(err, "render description")
		}
	}
	if _, err = fmt.Fprintln(w, strings.TrimSpace(description)); err != nil {
		return fmt.Errorf("write description: %w", err)
	}
	return nil
}
