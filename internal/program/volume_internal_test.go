package program

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalcWeeklyVolume(t *testing.T) {
	tests := []struct {
		name    string
		profile TrainingProfile
		want    WeeklyVolume
	}{
		{
			name: "hypertrophy intermediate",
			profile: TrainingProfile{ //nolint:exhaustruct // test only
				Goal: GoalHypertrophy, Level: LevelIntermediate, DaysPerWeek: 4, MinutesPerSession: 60,
			},
			want: WeeklyVolume{
				MuscleChest: 14, MuscleBack: 14, MuscleShoulders: 14, MuscleBiceps: 10, MuscleTriceps: 10,
				MuscleQuads: 14, MuscleHamstrings: 14, MuscleGlutes: 14, MuscleCalves: 10, MuscleCore: 14,
				MuscleTraps: 10,
			},
		},
		{
			name: "short sessions drop isolation muscles",
			profile: TrainingProfile{ //nolint:exhaustruct // test only
				Goal: GoalHypertrophy, Level: LevelIntermediate, DaysPerWeek: 4, MinutesPerSession: 30,
			},
			want: WeeklyVolume{
				MuscleChest: 14, MuscleBack: 14, MuscleShoulders: 14, MuscleBiceps: 10, MuscleTriceps: 10,
				MuscleQuads: 14, MuscleHamstrings: 14, MuscleGlutes: 14, MuscleCalves: 0, MuscleCore: 0,
				MuscleTraps: 0,
			},
		},
		{
			name: "postural issues boost the posterior chain",
			profile: TrainingProfile{ //nolint:exhaustruct // test only
				Goal: GoalHypertrophy, Level: LevelIntermediate, DaysPerWeek: 4, MinutesPerSession: 60,
				PosturalIssues: true,
			},
			want: WeeklyVolume{
				MuscleChest: 14, MuscleBack: 18, MuscleShoulders: 14, MuscleBiceps: 10, MuscleTriceps: 10,
				MuscleQuads: 14, MuscleHamstrings: 14, MuscleGlutes: 18, MuscleCalves: 10, MuscleCore: 18,
				MuscleTraps: 10,
			},
		},
		{
			name: "postural issues leave a dropped core at zero",
			profile: TrainingProfile{ //nolint:exhaustruct // test only
				Goal: GoalStrength, Level: LevelBeginner, DaysPerWeek: 3, MinutesPerSession: 40,
				PosturalIssues: true,
			},
			want: WeeklyVolume{
				MuscleChest: 8, MuscleBack: 10, MuscleShoulders: 8, MuscleBiceps: 6, MuscleTriceps: 6,
				MuscleQuads: 8, MuscleHamstrings: 8, MuscleGlutes: 10, MuscleCalves: 0, MuscleCore: 0,
				MuscleTraps: 0,
			},
		},
		{
			name: "exactly the short session threshold is not short",
			profile: TrainingProfile{ //nolint:exhaustruct // test only
				Goal: GoalFatLoss, Level: LevelBeginner, DaysPerWeek: 2, MinutesPerSession: 45,
			},
			want: WeeklyVolume{
				MuscleChest: 8, MuscleBack: 8, MuscleShoulders: 8, MuscleBiceps: 6, MuscleTriceps: 6,
				MuscleQuads: 8, MuscleHamstrings: 8, MuscleGlutes: 8, MuscleCalves: 6, MuscleCore: 8,
				MuscleTraps: 6,
			},
		},
	}
	tables := DefaultTables()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.CalcWeeklyVolume(tt.profile)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CalcWeeklyVolume() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalcWeeklyVolume_SmallMuscleFloor(t *testing.T) {
	tables := DefaultTables()
	tables.Volume[GoalGeneralFitness][LevelBeginner] = VolumeTier{Min: 2, Optimal: 4, Max: 6}
	p := TrainingProfile{ //nolint:exhaustruct // test only
		Goal: GoalGeneralFitness, Level: LevelBeginner, DaysPerWeek: 2, MinutesPerSession: 60,
	}
	got := tables.CalcWeeklyVolume(p)
	for _, m := range []MuscleGroup{MuscleBiceps, MuscleTriceps, MuscleCalves, MuscleTraps} {
		if got[m] != 4 {
			t.Errorf("volume[%s] = %d, want the floor of 4", m, got[m])
		}
	}
	if got[MuscleChest] != 4 {
		t.Errorf("volume[chest] = %d, want 4", got[MuscleChest])
	}
}

func TestCalcWeeklyVolume_Properties(t *testing.T) {
	tables := DefaultTables()
	for _, p := range allProfiles() {
		volume := tables.CalcWeeklyVolume(p)
		if len(volume) != len(AllMuscleGroups()) {
			t.Fatalf("%+v: got %d muscle groups, want %d", p, len(volume), len(AllMuscleGroups()))
		}
		for _, m := range AllMuscleGroups() {
			sets, ok := volume[m]
			if !ok || sets < 0 {
				t.Errorf("%+v: volume[%s] = %d (present %t), want a non-negative entry", p, m, sets, ok)
			}
		}
		if p.MinutesPerSession < 45 {
			for _, m := range []MuscleGroup{MuscleCore, MuscleCalves, MuscleTraps} {
				if volume[m] != 0 {
					t.Errorf("%+v: volume[%s] = %d, want 0 for short sessions", p, m, volume[m])
				}
			}
		}
		if p.PosturalIssues {
			withoutFlag := p
			withoutFlag.PosturalIssues = false
			baseline := tables.CalcWeeklyVolume(withoutFlag)
			for _, m := range []MuscleGroup{MuscleBack, MuscleGlutes} {
				if volume[m] < baseline[m] {
					t.Errorf("%+v: postural issues decreased %s from %d to %d", p, m, baseline[m], volume[m])
				}
			}
		}
	}
}
