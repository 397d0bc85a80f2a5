// Package planexport renders training plans as Markdown and HTML documents.
package planexport

import (
	"fmt"
	"io"
	"strings"

	"github.com/myrjola/liftplan/internal/i18n"
	"github.com/myrjola/liftplan/internal/program"
)

var columns = []string{
	"plan.column.order",
	"plan.column.exercise",
	"plan.column.sets",
	"plan.column.reps",
	"plan.column.rest",
	"plan.column.rpe",
	"plan.column.tempo",
}

// WriteMarkdown writes plan as a Markdown document with one table per training day. Labels are in lang.
func WriteMarkdown(w io.Writer, plan program.Plan, lang i18n.Language) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escape(plan.Name))
	fmt.Fprintf(&b, "- **%s:** %s\n", i18n.Translate(lang, "plan.split"), program.SplitName(plan.Split, lang))
	fmt.Fprintf(&b, "- **%s:** %d\n", i18n.Translate(lang, "plan.cycle_weeks"), plan.CycleWeeks)

	for _, day := range plan.Days {
		fmt.Fprintf(&b, "\n## %s: %s\n\n", day.DayName, day.Focus)
		fmt.Fprintf(&b, "%s: %d\n", i18n.Translate(lang, "plan.estimated_minutes"), day.EstimatedMinutes)
		if len(day.Exercises) == 0 {
			continue
		}

		b.WriteString("\n|")
		for _, key := range columns {
			fmt.Fprintf(&b, " %s |", i18n.Translate(lang, key))
		}
		b.WriteString("\n|")
		for range columns {
			b.WriteString(" --- |")
		}
		b.WriteString("\n")
		for _, ex := range day.Exercises {
			fmt.Fprintf(&b, "| %d | %s | %d | %s | %d | %d | %s |\n",
				ex.Order, escape(ex.Name), ex.Sets, ex.Reps, ex.RestSeconds, ex.RPE, ex.Tempo)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// escape keeps catalog names from breaking table cells or emphasis.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`).Replace(s)
}
