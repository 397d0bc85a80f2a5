package program

// Day counts that the split rules branch on.
const (
	beginnerFullBodyMaxDays = 4
	specialisationMinDays   = 4
	strengthPPLMinDays      = 5
	halfBodyDays            = 4
)

// DetermineSplit chooses the split archetype for a profile. The first matching rule wins:
//
//  1. beginners training at most 4 days get full body,
//  2. advanced strength trainees with 4 or more days get a body-part split,
//  3. non-beginner strength trainees with 5 or more days get push/pull/legs,
//  4. non-beginners training exactly 4 days get half body,
//  5. otherwise the default split for the day count, falling back to full body.
func (t Tables) DetermineSplit(p TrainingProfile) SplitType {
	switch {
	case p.Level == LevelBeginner && p.DaysPerWeek <= beginnerFullBodyMaxDays:
		return SplitFullBody
	case p.Goal == GoalStrength && p.Level == LevelAdvanced && p.DaysPerWeek >= specialisationMinDays:
		return SplitBodyPart
	case p.Goal == GoalStrength && p.Level != LevelBeginner && p.DaysPerWeek >= strengthPPLMinDays:
		return SplitPushPullLegs
	case p.DaysPerWeek == halfBodyDays && p.Level != LevelBeginner:
		return SplitHalfBody
	}
	if split, ok := t.DefaultSplits[p.DaysPerWeek]; ok {
		return split
	}
	return SplitFullBody
}
