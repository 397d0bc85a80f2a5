package program

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// VolumeTier is a weekly working-set range for one goal and level. Only Optimal drives generation;
// Min and Max are kept for tuning.
type VolumeTier struct {
	Min     int `yaml:"min"`
	Optimal int `yaml:"optimal"`
	Max     int `yaml:"max"`
}

// GoalParams are the execution parameters shared by every exercise of a goal.
type GoalParams struct {
	MinReps        int `yaml:"min_reps"`
	MaxReps        int `yaml:"max_reps"`
	RestCompound   int `yaml:"rest_compound"`
	RestIsolation  int `yaml:"rest_isolation"`
	RIR            int `yaml:"rir"`
	TempoEccentric int `yaml:"tempo_eccentric"`
}

// Limits are the numeric caps and adjustment factors of the engine.
type Limits struct {
	MaxSetsPerSession            int     `yaml:"max_sets_per_session"`
	MaxSetsPerMusclePerSession   int     `yaml:"max_sets_per_muscle_per_session"`
	MaxExercisesPerPrimaryMuscle int     `yaml:"max_exercises_per_primary_muscle"`
	DefaultSetsPerExercise       int     `yaml:"default_sets_per_exercise"`
	MinSmallMuscleSets           int     `yaml:"min_small_muscle_sets"`
	ShortSessionMinutes          int     `yaml:"short_session_minutes"`
	PosturalMultiplier           float64 `yaml:"postural_multiplier"`
	SmallMuscleMultiplier        float64 `yaml:"small_muscle_multiplier"`
	CycleWeeks                   int     `yaml:"cycle_weeks"`
}

// Tables is the reference data the generator is configured with.
type Tables struct {
	Volume         map[Goal]map[Level]VolumeTier   `yaml:"volume"`
	Params         map[Goal]GoalParams             `yaml:"params"`
	DefaultSplits  map[int]SplitType               `yaml:"default_splits"`
	MusclePatterns map[MuscleGroup]MovementPattern `yaml:"muscle_patterns"`
	// SmallMuscles get the small-muscle multiplier and floor.
	SmallMuscles []MuscleGroup `yaml:"small_muscles"`
	// IsolationMuscles are dropped entirely from short sessions.
	IsolationMuscles []MuscleGroup `yaml:"isolation_muscles"`
	// PosteriorChain muscles get extra volume for profiles with postural issues.
	PosteriorChain []MuscleGroup `yaml:"posterior_chain"`
	// Priority is the order in which muscles claim room in a session.
	Priority []MuscleGroup `yaml:"priority"`
	// EquipmentAliases maps profile equipment choices and catalog tags to a shared equipment tag.
	EquipmentAliases map[string]string `yaml:"equipment_aliases"`
	// BodyweightTag is the equipment tag that makes untagged exercises available.
	BodyweightTag string `yaml:"bodyweight_tag"`
	// InjuryZoneAliases maps exercise risk zones and declared injuries to a shared body zone.
	InjuryZoneAliases map[string]string `yaml:"injury_zone_aliases"`
	// MovementTiers maps a metadata movement type to its nervous-demand tier.
	MovementTiers map[string]int `yaml:"movement_tiers"`
	Limits        Limits         `yaml:"limits"`
}

// DefaultTables returns a fresh copy of the built-in reference tables.
func DefaultTables() Tables {
	return Tables{
		Volume: map[Goal]map[Level]VolumeTier{
			GoalHypertrophy: {
				LevelBeginner:     {Min: 8, Optimal: 10, Max: 12},
				LevelIntermediate: {Min: 10, Optimal: 14, Max: 18},
				LevelAdvanced:     {Min: 12, Optimal: 18, Max: 22},
			},
			GoalStrength: {
				LevelBeginner:     {Min: 6, Optimal: 8, Max: 10},
				LevelIntermediate: {Min: 8, Optimal: 10, Max: 14},
				LevelAdvanced:     {Min: 10, Optimal: 12, Max: 16},
			},
			GoalFatLoss: {
				LevelBeginner:     {Min: 6, Optimal: 8, Max: 10},
				LevelIntermediate: {Min: 8, Optimal: 10, Max: 12},
				LevelAdvanced:     {Min: 10, Optimal: 12, Max: 14},
			},
			GoalGeneralFitness: {
				LevelBeginner:     {Min: 6, Optimal: 8, Max: 10},
				LevelIntermediate: {Min: 8, Optimal: 10, Max: 12},
				LevelAdvanced:     {Min: 8, Optimal: 12, Max: 14},
			},
		},
		Params: map[Goal]GoalParams{
			GoalHypertrophy: {
				MinReps: 8, MaxReps: 12, RestCompound: 120, RestIsolation: 75, RIR: 2, TempoEccentric: 3,
			},
			GoalStrength: {
				MinReps: 3, MaxReps: 6, RestCompound: 180, RestIsolation: 120, RIR: 2, TempoEccentric: 2,
			},
			GoalFatLoss: {
				MinReps: 12, MaxReps: 15, RestCompound: 60, RestIsolation: 45, RIR: 2, TempoEccentric: 2,
			},
			GoalGeneralFitness: {
				MinReps: 10, MaxReps: 12, RestCompound: 90, RestIsolation: 60, RIR: 3, TempoEccentric: 2,
			},
		},
		DefaultSplits: map[int]SplitType{
			2: SplitFullBody,
			3: SplitFullBody,
			4: SplitHalfBody,
			5: SplitPushPullLegs,
			6: SplitPushPullLegs,
		},
		MusclePatterns: map[MuscleGroup]MovementPattern{
			MuscleChest:      PatternPush,
			MuscleShoulders:  PatternPush,
			MuscleTriceps:    PatternPush,
			MuscleBack:       PatternPull,
			MuscleBiceps:     PatternPull,
			MuscleTraps:      PatternPull,
			MuscleQuads:      PatternLegs,
			MuscleHamstrings: PatternLegs,
			MuscleGlutes:     PatternLegs,
			MuscleCalves:     PatternLegs,
			MuscleCore:       PatternCore,
		},
		SmallMuscles:     []MuscleGroup{MuscleBiceps, MuscleTriceps, MuscleCalves, MuscleTraps},
		IsolationMuscles: []MuscleGroup{MuscleCore, MuscleCalves, MuscleTraps},
		PosteriorChain:   []MuscleGroup{MuscleBack, MuscleGlutes, MuscleCore},
		Priority: []MuscleGroup{
			MuscleChest, MuscleBack, MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleShoulders,
			MuscleBiceps, MuscleTriceps, MuscleCalves, MuscleCore, MuscleTraps,
		},
		EquipmentAliases: map[string]string{
			"barbell":       "free_weight",
			"dumbbell":      "free_weight",
			"kettlebell":    "free_weight",
			"ez_bar":        "free_weight",
			"free_weight":   "free_weight",
			"machine":       "machine",
			"smith_machine": "machine",
			"cable":         "cable",
			"bands":         "bands",
			"bodyweight":    "bodyweight",
			"pullup_bar":    "bodyweight",
			"trx":           "bodyweight",
		},
		BodyweightTag: "bodyweight",
		InjuryZoneAliases: map[string]string{
			"lumbar":    "lower_back",
			"spine":     "lower_back",
			"knees":     "knee",
			"shoulders": "shoulder",
			"wrists":    "wrist",
			"elbows":    "elbow",
			"hips":      "hip",
			"ankles":    "ankle",
			"cervical":  "neck",
		},
		MovementTiers: map[string]int{
			"heavy_compound": 3, //nolint:mnd // tier
			"compound":       2, //nolint:mnd // tier
			"isolation":      1,
		},
		Limits: Limits{
			MaxSetsPerSession:            25, //nolint:mnd // cap
			MaxSetsPerMusclePerSession:   8,  //nolint:mnd // cap
			MaxExercisesPerPrimaryMuscle: 2,  //nolint:mnd // cap
			DefaultSetsPerExercise:       3,  //nolint:mnd // default
			MinSmallMuscleSets:           4,  //nolint:mnd // floor
			ShortSessionMinutes:          45, //nolint:mnd // threshold
			PosturalMultiplier:           1.3,
			SmallMuscleMultiplier:        0.7,
			CycleWeeks:                   4, //nolint:mnd // weeks
		},
	}
}

// LoadTables reads a YAML document and overlays it on DefaultTables. Top-level maps merge by key, but each
// entry given replaces the default entry as a whole: overriding params for a goal must list every parameter.
// Lists are replaced and limits override field by field.
func LoadTables(r io.Reader) (Tables, error) {
	tables := DefaultTables()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tables); err != nil && !errors.Is(err, io.EOF) {
		return Tables{}, fmt.Errorf("decode tables: %w", err)
	}
	if err := tables.Validate(); err != nil {
		return Tables{}, fmt.Errorf("validate tables: %w", err)
	}
	return tables, nil
}

// ErrInvalidTables is returned when reference tables cannot drive generation.
var ErrInvalidTables = errors.New("invalid tables")

// Validate checks that every goal, level and muscle group has an entry and that the limits are usable.
func (t Tables) Validate() error {
	var errs []error
	for _, goal := range []Goal{GoalHypertrophy, GoalStrength, GoalFatLoss, GoalGeneralFitness} {
		for _, level := range []Level{LevelBeginner, LevelIntermediate, LevelAdvanced} {
			tier, ok := t.Volume[goal][level]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: no volume for %s/%s", ErrInvalidTables, goal, level))
				continue
			}
			if tier.Optimal < 0 {
				errs = append(errs, fmt.Errorf("%w: negative volume for %s/%s", ErrInvalidTables, goal, level))
			}
		}
		params, ok := t.Params[goal]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: no params for %s", ErrInvalidTables, goal))
			continue
		}
		if params.MinReps <= 0 || params.MinReps > params.MaxReps {
			errs = append(errs, fmt.Errorf("%w: rep range %d-%d for %s",
				ErrInvalidTables, params.MinReps, params.MaxReps, goal))
		}
		if params.RestCompound <= 0 || params.RestIsolation <= 0 {
			errs = append(errs, fmt.Errorf("%w: rest %d/%d seconds for %s",
				ErrInvalidTables, params.RestCompound, params.RestIsolation, goal))
		}
		if params.TempoEccentric <= 0 {
			errs = append(errs, fmt.Errorf("%w: eccentric tempo %d for %s", ErrInvalidTables, params.TempoEccentric, goal))
		}
		if params.RIR < 0 || params.RIR > maxRPE {
			errs = append(errs, fmt.Errorf("%w: reps in reserve %d for %s", ErrInvalidTables, params.RIR, goal))
		}
	}
	for _, m := range AllMuscleGroups() {
		if _, ok := t.MusclePatterns[m]; !ok {
			errs = append(errs, fmt.Errorf("%w: no movement pattern for %s", ErrInvalidTables, m))
		}
		if !slices.Contains(t.Priority, m) {
			errs = append(errs, fmt.Errorf("%w: %s missing from priority", ErrInvalidTables, m))
		}
	}
	if t.Limits.MaxSetsPerSession <= 0 || t.Limits.MaxSetsPerMusclePerSession <= 0 {
		errs = append(errs, fmt.Errorf("%w: set caps must be positive", ErrInvalidTables))
	}
	if t.Limits.MaxExercisesPerPrimaryMuscle <= 0 {
		errs = append(errs, fmt.Errorf("%w: diversity cap must be positive", ErrInvalidTables))
	}
	if t.Limits.CycleWeeks <= 0 {
		errs = append(errs, fmt.Errorf("%w: cycle weeks must be positive", ErrInvalidTables))
	}
	return errors.Join(errs...)
}

// patternOf returns the movement pattern of a muscle.
func (t Tables) patternOf(m MuscleGroup) MovementPattern {
	return t.MusclePatterns[m]
}

// musclesWithPattern returns the muscles classified under the given patterns, in canonical order.
func (t Tables) musclesWithPattern(patterns ...MovementPattern) MuscleSet {
	var muscles []MuscleGroup
	for _, m := range AllMuscleGroups() {
		if slices.Contains(patterns, t.patternOf(m)) {
			muscles = append(muscles, m)
		}
	}
	return newMuscleSet(muscles...)
}

// equipmentTag resolves a profile choice or catalog tag to its shared equipment tag.
func (t Tables) equipmentTag(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if tag, ok := t.EquipmentAliases[key]; ok {
		return tag
	}
	return key
}

// bodyZone resolves an injury-risk zone or declared injury to its shared body zone.
func (t Tables) bodyZone(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if zone, ok := t.InjuryZoneAliases[key]; ok {
		return zone
	}
	return key
}

// nervousDemand returns the tier of a movement type. Unknown types are treated as isolation.
func (t Tables) nervousDemand(movementType string) int {
	if tier, ok := t.MovementTiers[strings.ToLower(movementType)]; ok {
		return tier
	}
	return 1
}
