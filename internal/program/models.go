package program

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Goal is the primary training objective of a profile.
type Goal string

const (
	GoalHypertrophy    Goal = "hypertrophy"
	GoalStrength       Goal = "strength"
	GoalFatLoss        Goal = "fat_loss"
	GoalGeneralFitness Goal = "general_fitness"
)

// Level is the training experience of a profile.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Rank returns the ordinal position of the level. Unknown levels rank below beginner.
func (l Level) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2 //nolint:mnd // ordinal
	case LevelAdvanced:
		return 3 //nolint:mnd // ordinal
	default:
		return 0
	}
}

// MuscleGroup is one of the eleven muscle groups the engine plans volume for.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleCore       MuscleGroup = "core"
	MuscleTraps      MuscleGroup = "traps"
)

// AllMuscleGroups returns the muscle groups in canonical order.
func AllMuscleGroups() []MuscleGroup {
	return []MuscleGroup{
		MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
		MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleCore, MuscleTraps,
	}
}

// ParseMuscleGroup maps a catalog muscle tag to a MuscleGroup, ignoring case and surrounding space.
func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	m := MuscleGroup(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(AllMuscleGroups(), m) {
		return m, true
	}
	return "", false
}

// MovementPattern is the coarse push/pull/legs/core grouping of muscles.
type MovementPattern string

const (
	PatternPush MovementPattern = "push"
	PatternPull MovementPattern = "pull"
	PatternLegs MovementPattern = "legs"
	PatternCore MovementPattern = "core"
)

// SplitType is the weekly template deciding which muscles are trained on which day.
type SplitType string

const (
	SplitFullBody     SplitType = "full_body"
	SplitHalfBody     SplitType = "half_body"
	SplitPushPull     SplitType = "push_pull"
	SplitPushPullLegs SplitType = "push_pull_legs"
	SplitBodyPart     SplitType = "split"
)

// Biometrics are optional body measurements. The engine carries them through untouched.
type Biometrics struct {
	WeightKg *float64 `json:"weight_kg,omitempty" toml:"weight_kg"`
	HeightCm *float64 `json:"height_cm,omitempty" toml:"height_cm"`
	Age      *int     `json:"age,omitempty" toml:"age"`
}

// TrainingProfile is the input of one generation run.
type TrainingProfile struct {
	Goal              Goal        `json:"goal" toml:"goal"`
	Level             Level       `json:"level" toml:"level"`
	DaysPerWeek       int         `json:"days_per_week" toml:"days_per_week"`
	MinutesPerSession int         `json:"minutes_per_session" toml:"minutes_per_session"`
	Equipment         []string    `json:"equipment" toml:"equipment"`
	Injuries          []string    `json:"injuries" toml:"injuries"`
	PosturalIssues    bool        `json:"postural_issues" toml:"postural_issues"`
	Biometrics        *Biometrics `json:"biometrics,omitempty" toml:"biometrics"`
}

var (
	ErrInvalidGoal    = errors.New("invalid goal")
	ErrInvalidLevel   = errors.New("invalid level")
	ErrInvalidDays    = errors.New("days per week out of range")
	ErrInvalidMinutes = errors.New("minutes per session must be positive")
)

// Minimum and maximum supported training days per week.
const (
	MinDaysPerWeek = 2
	MaxDaysPerWeek = 6
)

// Validate checks the profile against the supported input ranges. The generator itself does not call it;
// it is meant for the code collecting the profile.
func (p TrainingProfile) Validate() error {
	var errs []error
	switch p.Goal {
	case GoalHypertrophy, GoalStrength, GoalFatLoss, GoalGeneralFitness:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidGoal, p.Goal))
	}
	if p.Level.Rank() == 0 {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLevel, p.Level))
	}
	if p.DaysPerWeek < MinDaysPerWeek || p.DaysPerWeek > MaxDaysPerWeek {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidDays, p.DaysPerWeek))
	}
	if p.MinutesPerSession <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidMinutes, p.MinutesPerSession))
	}
	return errors.Join(errs...)
}

// MuscleSet is an ordered, de-duplicated list of muscle groups.
type MuscleSet []MuscleGroup

// Contains reports whether m is in the set.
func (s MuscleSet) Contains(m MuscleGroup) bool {
	return slices.Contains(s, m)
}

// newMuscleSet returns the muscles de-duplicated and sorted in canonical order.
func newMuscleSet(muscles ...MuscleGroup) MuscleSet {
	set := make(MuscleSet, 0, len(muscles))
	for _, m := range AllMuscleGroups() {
		if slices.Contains(muscles, m) {
			set = append(set, m)
		}
	}
	return set
}

// WeeklySchedule holds the targeted muscles for each training day.
type WeeklySchedule []MuscleSet

// WeeklyVolume maps each muscle group to its target working sets per week.
type WeeklyVolume map[MuscleGroup]int

// SessionVolumePlan maps the muscles targeted on one day to the sets assigned to them.
type SessionVolumePlan map[MuscleGroup]int

// Total returns the sum of all sets in the plan.
func (p SessionVolumePlan) Total() int {
	total := 0
	for _, sets := range p {
		total += sets
	}
	return total
}

// Muscles returns the muscles present in the plan in canonical order.
func (p SessionVolumePlan) Muscles() MuscleSet {
	muscles := make([]MuscleGroup, 0, len(p))
	for m := range p {
		muscles = append(muscles, m)
	}
	return newMuscleSet(muscles...)
}

// Candidate is a catalog exercise enriched with metadata and eligible for a session.
type Candidate struct {
	ExerciseID     int             `json:"exercise_id"`
	Name           string          `json:"name"`
	Muscles        MuscleSet       `json:"muscles"`
	PrimaryMuscles []MuscleGroup   `json:"primary_muscles"`
	NervousDemand  int             `json:"nervous_demand"`
	Pattern        MovementPattern `json:"pattern"`
	MinLevel       Level           `json:"min_level"`
	Equipment      string          `json:"equipment,omitempty"`
	InjuryRisks    []string        `json:"injury_risks,omitempty"`
	// Order is the 1-based position in the ranked candidate list.
	Order int `json:"order"`
}

// PrimaryMuscle returns the first primary muscle, or false if the exercise has none.
func (c Candidate) PrimaryMuscle() (MuscleGroup, bool) {
	if len(c.PrimaryMuscles) == 0 {
		return "", false
	}
	return c.PrimaryMuscles[0], true
}

// ExerciseClass tells the session builder how to rest between sets.
type ExerciseClass string

const (
	ClassCompound  ExerciseClass = "compound"
	ClassIsolation ExerciseClass = "isolation"
)

// SetParams are the prescribed working parameters of one exercise.
type SetParams struct {
	Sets           int `json:"sets"`
	MinReps        int `json:"min_reps"`
	MaxReps        int `json:"max_reps"`
	RestSeconds    int `json:"rest_seconds"`
	RIR            int `json:"rir"`
	TempoEccentric int `json:"tempo_eccentric"`
}

// PlannedExercise is a candidate with its assigned parameters.
type PlannedExercise struct {
	Candidate Candidate     `json:"candidate"`
	Params    SetParams     `json:"params"`
	Class     ExerciseClass `json:"class"`
	Order     int           `json:"order"`
}

// GeneratedSession is one training day of the program.
type GeneratedSession struct {
	// DayOfWeek is 1-based with Monday as 1.
	DayOfWeek int       `json:"day_of_week"`
	Split     SplitType `json:"split"`
	Focus     string    `json:"focus"`
	// PlannedMuscles are the muscles the schedule targeted on this day.
	PlannedMuscles MuscleSet `json:"planned_muscles"`
	// Muscles are the muscles the chosen exercises actually cover.
	Muscles          MuscleSet         `json:"muscles"`
	TotalSets        int               `json:"total_sets"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	Exercises        []PlannedExercise `json:"exercises"`
}

// Uncovered returns the planned muscles that no chosen exercise covers.
func (s GeneratedSession) Uncovered() MuscleSet {
	var missing MuscleSet
	for _, m := range s.PlannedMuscles {
		if !s.Muscles.Contains(m) {
			missing = append(missing, m)
		}
	}
	return missing
}

// GeneratedProgram is the result of one generation run.
type GeneratedProgram struct {
	ID           string             `json:"id"`
	CreatedAt    time.Time          `json:"created_at"`
	Profile      TrainingProfile    `json:"profile"`
	Split        SplitType          `json:"split"`
	CycleWeeks   int                `json:"cycle_weeks"`
	Sessions     []GeneratedSession `json:"sessions"`
	WeeklyVolume WeeklyVolume       `json:"weekly_volume"`
}

// Weeks returns the sessions of every week in the cycle. Each week repeats the same sessions.
func (p GeneratedProgram) Weeks() [][]GeneratedSession {
	weeks := make([][]GeneratedSession, p.CycleWeeks)
	for i := range weeks {
		weeks[i] = slices.Clone(p.Sessions)
	}
	return weeks
}
