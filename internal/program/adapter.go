package program

import (
	"fmt"
	"strconv"

	"github.com/myrjola/liftplan/internal/i18n"
)

// maxRPE is the rating of a set taken to failure.
const maxRPE = 10

// Plan is the flattened, display-ready form of a GeneratedProgram handed to the persistence layer.
type Plan struct {
	ProgramID  string    `json:"program_id"`
	Name       string    `json:"name"`
	Split      SplitType `json:"split"`
	CycleWeeks int       `json:"cycle_weeks"`
	Days       []PlanDay `json:"days"`
}

// PlanDay is one training day of a Plan.
type PlanDay struct {
	DayOfWeek        int            `json:"day_of_week"`
	DayName          string         `json:"day_name"`
	Focus            string         `json:"focus"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Exercises        []PlanExercise `json:"exercises"`
}

// PlanExercise is one exercise of a PlanDay.
type PlanExercise struct {
	Order       int    `json:"order"`
	ExerciseID  int    `json:"exercise_id"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	RPE         int    `json:"rpe"`
	// Tempo is written as eccentric-pause-concentric-pause seconds, e.g. 3-0-1-0.
	Tempo string `json:"tempo"`
}

// ToPlan converts a program to its persisted plan format with day and focus names in lang.
func ToPlan(p GeneratedProgram, lang i18n.Language) Plan {
	plan := Plan{
		ProgramID:  p.ID,
		Name:       fmt.Sprintf("%s: %s", i18n.Translate(lang, "plan.title"), SplitName(p.Split, lang)),
		Split:      p.Split,
		CycleWeeks: p.CycleWeeks,
		Days:       make([]PlanDay, 0, len(p.Sessions)),
	}
	for _, s := range p.Sessions {
		day := PlanDay{
			DayOfWeek:        s.DayOfWeek,
			DayName:          i18n.DayName(lang, s.DayOfWeek),
			Focus:            i18n.Translate(lang, "focus."+s.Focus),
			EstimatedMinutes: s.EstimatedMinutes,
			Exercises:        make([]PlanExercise, 0, len(s.Exercises)),
		}
		for _, ex := range s.Exercises {
			day.Exercises = append(day.Exercises, PlanExercise{
				Order:       ex.Order,
				ExerciseID:  ex.Candidate.ExerciseID,
				Name:        ex.Candidate.Name,
				Sets:        ex.Params.Sets,
				Reps:        strconv.Itoa(ex.Params.MinReps) + "-" + strconv.Itoa(ex.Params.MaxReps),
				RestSeconds: ex.Params.RestSeconds,
				RPE:         maxRPE - ex.Params.RIR,
				Tempo:       strconv.Itoa(ex.Params.TempoEccentric) + "-0-1-0",
			})
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

// SplitName returns the localised name of a split.
func SplitName(split SplitType, lang i18n.Language) string {
	return i18n.Translate(lang, "split."+string(split))
}
