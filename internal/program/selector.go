package program

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// SelectExercises fetches the catalog and returns the ranked candidates for a session targeting the given
// muscles. Only the catalog fetch can fail.
func (g *Generator) SelectExercises(
	ctx context.Context,
	targets MuscleSet,
	profile TrainingProfile,
) ([]Candidate, error) {
	entries, err := g.catalog.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	candidates := g.rankCandidates(entries, targets, profile)
	g.logger.LogAttrs(ctx, slog.LevelDebug, "selected exercise candidates",
		slog.Int("catalog_size", len(entries)),
		slog.Int("candidates", len(candidates)),
		slog.Any("targets", targets))
	return candidates, nil
}

// rankCandidates filters the catalog, orders the survivors by nervous demand, and applies the
// per-primary-muscle diversity cap.
func (g *Generator) rankCandidates(entries []CatalogEntry, targets MuscleSet, profile TrainingProfile) []Candidate {
	eligibility := newEligibility(g.tables, profile)

	var candidates []Candidate
	for _, entry := range entries {
		md, ok := g.metadata.Lookup(entry.Name)
		if !ok {
			continue
		}
		candidate := g.newCandidate(entry, md)
		if !eligibility.allows(candidate, targets) {
			continue
		}
		candidates = append(candidates, candidate)
	}

	// Stable so that equal tiers keep catalog order.
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return b.NervousDemand - a.NervousDemand
	})

	return capPerPrimaryMuscle(candidates, g.tables.Limits.MaxExercisesPerPrimaryMuscle)
}

// newCandidate merges a catalog entry with its metadata.
func (g *Generator) newCandidate(entry CatalogEntry, md ExerciseMetadata) Candidate {
	var tagged []MuscleGroup
	for _, name := range entry.Muscles {
		if m, ok := ParseMuscleGroup(name); ok {
			tagged = append(tagged, m)
		}
	}
	if len(tagged) == 0 {
		tagged = slices.Concat(md.Primary, md.Secondary)
	}

	var primary []MuscleGroup
	for _, m := range md.Primary {
		if m, ok := ParseMuscleGroup(string(m)); ok && !slices.Contains(primary, m) {
			primary = append(primary, m)
		}
	}

	muscles := newMuscleSet(tagged...)
	var pattern MovementPattern
	switch {
	case len(primary) > 0:
		pattern = g.tables.patternOf(primary[0])
	case len(muscles) > 0:
		pattern = g.tables.patternOf(muscles[0])
	}

	return Candidate{
		ExerciseID:     entry.ID,
		Name:           entry.Name,
		Muscles:        muscles,
		PrimaryMuscles: primary,
		NervousDemand:  g.tables.nervousDemand(md.MovementType),
		Pattern:        pattern,
		MinLevel:       md.MinLevel,
		Equipment:      entry.Equipment,
		InjuryRisks:    slices.Clone(md.InjuryRisks),
		Order:          0,
	}
}

// capPerPrimaryMuscle keeps at most limit candidates per primary muscle and numbers the survivors.
// Candidates without a primary muscle are always kept.
func capPerPrimaryMuscle(ranked []Candidate, limit int) []Candidate {
	kept := make([]Candidate, 0, len(ranked))
	counts := make(map[MuscleGroup]int)
	for _, c := range ranked {
		if primary, ok := c.PrimaryMuscle(); ok {
			if counts[primary] >= limit {
				continue
			}
			counts[primary]++
		}
		c.Order = len(kept) + 1
		kept = append(kept, c)
	}
	return kept
}

// eligibility holds the profile constraints resolved against the reference tables.
type eligibility struct {
	tables     Tables
	level      Level
	equipment  map[string]bool
	bodyweight bool
	injuries   map[string]bool
}

func newEligibility(tables Tables, profile TrainingProfile) eligibility {
	e := eligibility{
		tables:     tables,
		level:      profile.Level,
		equipment:  make(map[string]bool),
		bodyweight: false,
		injuries:   make(map[string]bool),
	}
	for _, choice := range profile.Equipment {
		tag := tables.equipmentTag(choice)
		e.equipment[tag] = true
		if tag == tables.BodyweightTag {
			e.bodyweight = true
		}
	}
	for _, injury := range profile.Injuries {
		e.injuries[tables.bodyZone(injury)] = true
	}
	return e
}

// allows reports whether a candidate satisfies the equipment, muscle, level and injury constraints.
func (e eligibility) allows(c Candidate, targets MuscleSet) bool {
	return e.hasEquipment(c.Equipment) &&
		e.targetsAny(c.Muscles, targets) &&
		c.MinLevel.Rank() <= e.level.Rank() &&
		e.isSafe(c.InjuryRisks)
}

func (e eligibility) hasEquipment(required string) bool {
	if required == "" {
		return e.bodyweight
	}
	return e.equipment[e.tables.equipmentTag(required)]
}

func (e eligibility) targetsAny(muscles, targets MuscleSet) bool {
	return slices.ContainsFunc(muscles, targets.Contains)
}

func (e eligibility) isSafe(risks []string) bool {
	for _, risk := range risks {
		if e.injuries[e.tables.bodyZone(risk)] {
			return false
		}
	}
	return true
}
