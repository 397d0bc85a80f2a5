package program

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/myrjola/liftplan/internal/testhelpers"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testCatalog is a small catalog covering every muscle group, equipment class and movement tier.
func testCatalog() []CatalogEntry {
	return []CatalogEntry{
		{ID: 1, Name: "Barbell Back Squat", Muscles: []string{"Quads", "Glutes", "Hamstrings"}, Equipment: "barbell"},
		{ID: 2, Name: "Deadlift", Muscles: []string{"Hamstrings", "Glutes", "Back"}, Equipment: "barbell"},
		{ID: 3, Name: "Bench Press", Muscles: []string{"Chest", "Triceps", "Shoulders"}, Equipment: "barbell"},
		{ID: 4, Name: "Pull-Up", Muscles: []string{"Back", "Biceps"}, Equipment: ""},
		{ID: 5, Name: "Overhead Press", Muscles: []string{"Shoulders", "Triceps"}, Equipment: "barbell"},
		{ID: 6, Name: "Dumbbell Curl", Muscles: []string{"Biceps"}, Equipment: "dumbbell"},
		{ID: 7, Name: "Triceps Pushdown", Muscles: []string{"Triceps"}, Equipment: "cable"},
		{ID: 8, Name: "Standing Calf Raise", Muscles: []string{"Calves"}, Equipment: "machine"},
		{ID: 9, Name: "Plank", Muscles: []string{"Core"}, Equipment: ""},
		{ID: 10, Name: "Dumbbell Shrug", Muscles: []string{"Traps"}, Equipment: "dumbbell"},
		{ID: 11, Name: "Leg Extension", Muscles: []string{"Quads"}, Equipment: "machine"},
		{ID: 12, Name: "Mystery Move", Muscles: []string{"Chest"}, Equipment: ""},
		{ID: 13, Name: "Power Snatch", Muscles: []string{"Quads", "Shoulders", "Back"}, Equipment: "barbell"},
	}
}

func testMetadata() MetadataTable {
	return MetadataTable{
		"Barbell Back Squat": {
			MovementType: "heavy_compound", MinLevel: LevelBeginner,
			Primary: []MuscleGroup{MuscleQuads}, Secondary: []MuscleGroup{MuscleGlutes, MuscleHamstrings},
			InjuryRisks: []string{"knee", "lower_back"},
		},
		"Deadlift": {
			MovementType: "heavy_compound", MinLevel: LevelIntermediate,
			Primary: []MuscleGroup{MuscleHamstrings}, Secondary: []MuscleGroup{MuscleGlutes, MuscleBack},
			InjuryRisks: []string{"lower_back"},
		},
		"Bench Press": {
			MovementType: "heavy_compound", MinLevel: LevelBeginner,
			Primary: []MuscleGroup{MuscleChest}, Secondary: []MuscleGroup{MuscleTriceps, MuscleShoulders},
			InjuryRisks: []string{"shoulder"},
		},
		"Pull-Up": {
			MovementType: "compound", MinLevel: LevelBeginner,
			Primary: []MuscleGroup{MuscleBack}, Secondary: []MuscleGroup{MuscleBiceps},
		},
		"Overhead Press": {
			MovementType: "compound", MinLevel: LevelBeginner,
			Primary: []MuscleGroup{MuscleShoulders}, Secondary: []MuscleGroup{MuscleTriceps},
			InjuryRisks: []string{"shoulder"},
		},
		"Dumbbell Curl": {
			MovementType: "isolation", MinLevel: LevelBeginner, Primary: []MuscleGroup{MuscleBiceps},
		},
		"Triceps Pushdown": {
			MovementType: "isolation", MinLevel: LevelBeginner, Primary: []MuscleGroup{MuscleTriceps},
		},
		"Standing Calf Raise": {
			MovementType: "isolation", MinLevel: LevelBeginner, Primary: []MuscleGroup{MuscleCalves},
		},
		"Plank": {
			MovementType: "isolation", MinLevel: LevelBeginner, Primary: []MuscleGroup{MuscleCore},
		},
		"Dumbbell Shrug": {
			MovementType: "isolation", MinLevel: LevelBeginner, Primary: []MuscleGroup{MuscleTraps},
		},
		"Leg Extension": {
			MovementType: "isolation", MinLevel: LevelBeginner, Primary: []MuscleGroup{MuscleQuads},
			InjuryRisks: []string{"knees"},
		},
		"Power Snatch": {
			MovementType: "heavy_compound", MinLevel: LevelAdvanced,
			Primary: []MuscleGroup{MuscleQuads}, Secondary: []MuscleGroup{MuscleShoulders, MuscleBack},
		},
	}
}

// countingCatalog serves a fixed catalog and counts the fetches.
type countingCatalog struct {
	entries []CatalogEntry
	err     error
	calls   atomic.Int32
}

func (c *countingCatalog) ListExercises(_ context.Context) ([]CatalogEntry, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return c.entries, nil
}

var errCatalogDown = errors.New("catalog down")

var fixedTime = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

// newTestGenerator builds a generator over the test catalog with a fixed clock and sequential IDs.
func newTestGenerator(t *testing.T, cfg Config) *Generator {
	t.Helper()
	if cfg.Catalog == nil {
		cfg.Catalog = &countingCatalog{entries: testCatalog()} //nolint:exhaustruct // test only
	}
	if cfg.Metadata == nil {
		cfg.Metadata = testMetadata()
	}
	if cfg.Logger == nil {
		cfg.Logger = testhelpers.NewLogger(testhelpers.NewWriter(t))
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return fixedTime }
	}
	if cfg.NewID == nil {
		var n atomic.Int32
		cfg.NewID = func() string { return fmt.Sprintf("program-%d", n.Add(1)) }
	}
	g, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func candidateNames(candidates []Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	return names
}

func exerciseNames(exercises []PlannedExercise) []string {
	names := make([]string, 0, len(exercises))
	for _, ex := range exercises {
		names = append(names, ex.Candidate.Name)
	}
	return names
}

// allProfiles enumerates every supported combination of the profile fields the engine branches on.
func allProfiles() []TrainingProfile {
	var profiles []TrainingProfile
	for _, goal := range []Goal{GoalHypertrophy, GoalStrength, GoalFatLoss, GoalGeneralFitness} {
		for _, level := range []Level{LevelBeginner, LevelIntermediate, LevelAdvanced} {
			for days := MinDaysPerWeek; days <= MaxDaysPerWeek; days++ {
				for _, minutes := range []int{30, 45, 60, 90} {
					for _, postural := range []bool{false, true} {
						profiles = append(profiles, TrainingProfile{
							Goal:              goal,
							Level:             level,
							DaysPerWeek:       days,
							MinutesPerSession: minutes,
							Equipment:         []string{"barbell", "dumbbell", "bodyweight"},
							Injuries:          nil,
							PosturalIssues:    postural,
							Biometrics:        nil,
						})
					}
				}
			}
		}
	}
	return profiles
}
