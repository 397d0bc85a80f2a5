package program

import (
	"math"
	"slices"
)

// CalcWeeklyVolume computes the weekly working sets of every muscle group for a profile.
//
// The optimal tier of the goal and level is adjusted in order:
//
//  1. short sessions drop the isolation muscles to zero,
//  2. postural issues boost the posterior chain,
//  3. small muscles are scaled down but never below the small-muscle floor.
//
// Muscles zeroed by the first step stay zero.
func (t Tables) CalcWeeklyVolume(p TrainingProfile) WeeklyVolume {
	base := t.Volume[p.Goal][p.Level].Optimal
	limits := t.Limits

	volume := make(WeeklyVolume, len(AllMuscleGroups()))
	zeroed := make(map[MuscleGroup]bool)
	for _, m := range AllMuscleGroups() {
		volume[m] = max(base, 0)
	}

	if p.MinutesPerSession < limits.ShortSessionMinutes {
		for _, m := range t.IsolationMuscles {
			volume[m] = 0
			zeroed[m] = true
		}
	}

	if p.PosturalIssues {
		for _, m := range t.PosteriorChain {
			if zeroed[m] {
				continue
			}
			volume[m] = roundSets(float64(volume[m]) * limits.PosturalMultiplier)
		}
	}

	for _, m := range AllMuscleGroups() {
		if zeroed[m] || !slices.Contains(t.SmallMuscles, m) {
			continue
		}
		volume[m] = max(roundSets(float64(volume[m])*limits.SmallMuscleMultiplier), limits.MinSmallMuscleSets)
	}

	return volume
}

// roundSets rounds half away from zero, which for non-negative volumes is rounding half up.
func roundSets(v float64) int {
	return int(math.Round(v))
}
