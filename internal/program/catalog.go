package program

import (
	"context"
	"maps"
	"slices"
	"strings"
)

// CatalogEntry is an exercise as the external catalog knows it.
type CatalogEntry struct {
	ID   int
	Name string
	// Muscles are the muscle tags of the exercise, by name.
	Muscles []string
	// Equipment is the required equipment tag, or empty if none.
	Equipment string
}

// CatalogReader lists the exercise catalog. It is queried once per session build and must not be
// modified by callers while a program is generated.
type CatalogReader interface {
	ListExercises(ctx context.Context) ([]CatalogEntry, error)
}

// CatalogReaderFunc adapts a function to CatalogReader.
type CatalogReaderFunc func(ctx context.Context) ([]CatalogEntry, error)

// ListExercises calls f.
func (f CatalogReaderFunc) ListExercises(ctx context.Context) ([]CatalogEntry, error) {
	return f(ctx)
}

// ExerciseMetadata is the static classification of one exercise.
type ExerciseMetadata struct {
	// MovementType determines the nervous-demand tier, e.g. heavy_compound, compound or isolation.
	MovementType string        `yaml:"movement_type"`
	MinLevel     Level         `yaml:"min_level"`
	Primary      []MuscleGroup `yaml:"primary"`
	Secondary    []MuscleGroup `yaml:"secondary"`
	// InjuryRisks are the body zones the exercise loads, e.g. knee or lower_back.
	InjuryRisks []string `yaml:"injury_risks"`
}

// MetadataTable maps exercise names to their metadata. Exercises missing from the table are never
// selected.
type MetadataTable map[string]ExerciseMetadata

// Lookup finds the metadata for an exercise name, falling back to a case-insensitive match. Keys are
// compared in sorted order, so keys that differ only by case always resolve to the same entry.
func (mt MetadataTable) Lookup(name string) (ExerciseMetadata, bool) {
	if md, ok := mt[name]; ok {
		return md, true
	}
	trimmed := strings.TrimSpace(name)
	for _, key := range slices.Sorted(maps.Keys(mt)) {
		if strings.EqualFold(key, trimmed) {
			return mt[key], true
		}
	}
	return ExerciseMetadata{}, false
}
