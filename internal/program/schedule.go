package program

import "slices"

// BuildWeeklySchedule expands a split into the targeted muscles of each training day. Rotating patterns
// cycle by day index, so a week shorter than the rotation simply truncates it.
func (t Tables) BuildWeeklySchedule(split SplitType, days int) WeeklySchedule {
	rotation := t.rotation(split)
	schedule := make(WeeklySchedule, 0, max(days, 0))
	for i := range max(days, 0) {
		schedule = append(schedule, slices.Clone(rotation[i%len(rotation)].muscles))
	}
	return schedule
}

// Focus names the session type of a day in the given split.
func (t Tables) Focus(split SplitType, dayIndex int) string {
	rotation := t.rotation(split)
	return rotation[dayIndex%len(rotation)].focus
}

type scheduledDay struct {
	focus   string
	muscles MuscleSet
}

// rotation returns the repeating day templates of a split. Unknown splits train the full body.
func (t Tables) rotation(split SplitType) []scheduledDay {
	switch split {
	case SplitHalfBody:
		return []scheduledDay{
			{focus: "push_core", muscles: t.musclesWithPattern(PatternPush, PatternCore)},
			{focus: "pull_legs", muscles: t.musclesWithPattern(PatternPull, PatternLegs)},
		}
	case SplitPushPull:
		return []scheduledDay{
			{focus: "push", muscles: t.musclesWithPattern(PatternPush)},
			{focus: "pull", muscles: t.musclesWithPattern(PatternPull)},
		}
	case SplitPushPullLegs:
		return []scheduledDay{
			{focus: "push", muscles: t.musclesWithPattern(PatternPush)},
			{focus: "pull", muscles: t.musclesWithPattern(PatternPull)},
			{focus: "legs", muscles: t.musclesWithPattern(PatternLegs)},
		}
	case SplitBodyPart:
		return []scheduledDay{
			{focus: "chest_triceps", muscles: newMuscleSet(MuscleChest, MuscleTriceps, MuscleCore)},
			{focus: "back_biceps", muscles: newMuscleSet(MuscleBack, MuscleBiceps, MuscleTraps)},
			{focus: "lower", muscles: newMuscleSet(MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves)},
			{focus: "shoulders", muscles: newMuscleSet(MuscleShoulders, MuscleTraps, MuscleCore)},
		}
	case SplitFullBody:
		fallthrough
	default:
		return []scheduledDay{
			{focus: "full_body", muscles: t.musclesWithPattern(PatternPush, PatternPull, PatternLegs, PatternCore)},
		}
	}
}
