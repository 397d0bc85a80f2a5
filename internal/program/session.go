package program

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

const secondsPerMinute = 60

// Classifier decides whether the candidate at index of a ranked list of total candidates is trained as a
// compound or an isolation movement.
type Classifier func(index, total int, c Candidate) ExerciseClass

// ClassifyByPosition treats the first half of the ranked candidates as compound movements. It relies on
// the selector ranking heavier movements first and ignores the candidate itself.
func ClassifyByPosition(index, total int, _ Candidate) ExerciseClass {
	if index < total/2 {
		return ClassCompound
	}
	return ClassIsolation
}

// BuildSession selects exercises for one scheduled day and assigns their sets, reps, rest and tempo.
//
// Exercises are taken in rank order until the session cap is reached. Each exercise gets the sets planned
// for its primary muscle, or the default when the muscle is not in the plan, trimmed to the room left in
// the session. A session with too few candidates ends up shorter than planned.
func (g *Generator) BuildSession(
	ctx context.Context,
	dayIndex int,
	plan SessionVolumePlan,
	profile TrainingProfile,
	split SplitType,
) (GeneratedSession, error) {
	planned := plan.Muscles()
	candidates, err := g.SelectExercises(ctx, planned, profile)
	if err != nil {
		return GeneratedSession{}, fmt.Errorf("select exercises: %w", err)
	}

	params := g.tables.Params[profile.Goal]
	limits := g.tables.Limits

	var (
		exercises = make([]PlannedExercise, 0, len(candidates))
		covered   []MuscleGroup
		total     int
	)
	for i, c := range candidates {
		if total >= limits.MaxSetsPerSession {
			break
		}
		sets := limits.DefaultSetsPerExercise
		if primary, ok := c.PrimaryMuscle(); ok {
			if plannedSets, inPlan := plan[primary]; inPlan {
				sets = plannedSets
			}
		}
		sets = min(sets, limits.MaxSetsPerSession-total)
		if sets <= 0 {
			break
		}

		class := g.classify(i, len(candidates), c)
		rest := params.RestIsolation
		if class == ClassCompound {
			rest = params.RestCompound
		}

		exercises = append(exercises, PlannedExercise{
			Candidate: c,
			Params: SetParams{
				Sets:           sets,
				MinReps:        params.MinReps,
				MaxReps:        params.MaxReps,
				RestSeconds:    rest,
				RIR:            params.RIR,
				TempoEccentric: params.TempoEccentric,
			},
			Class: class,
			Order: len(exercises) + 1,
		})
		total += sets
		for _, m := range c.Muscles {
			if planned.Contains(m) {
				covered = append(covered, m)
			}
		}
	}

	session := GeneratedSession{
		DayOfWeek:        dayIndex + 1,
		Split:            split,
		Focus:            g.tables.Focus(split, dayIndex),
		PlannedMuscles:   planned,
		Muscles:          newMuscleSet(covered...),
		TotalSets:        total,
		EstimatedMinutes: EstimateMinutes(exercises),
		Exercises:        exercises,
	}

	if uncovered := session.Uncovered(); len(uncovered) > 0 {
		g.logger.LogAttrs(ctx, slog.LevelDebug, "session does not cover all planned muscles",
			slog.Int("day_of_week", session.DayOfWeek),
			slog.Any("uncovered", uncovered))
	}

	return session, nil
}

// EstimateMinutes sums the time under tension and rest of every set and rounds to whole minutes.
func EstimateMinutes(exercises []PlannedExercise) int {
	seconds := 0
	for _, ex := range exercises {
		perSet := ex.Params.TempoEccentric*ex.Params.MaxReps + ex.Params.RestSeconds
		seconds += ex.Params.Sets * perSet
	}
	return int(math.Round(float64(seconds) / secondsPerMinute))
}
