package program

// DistributeVolume spreads the weekly volume over the scheduled days.
//
// A muscle gets its weekly sets divided by the number of days it is scheduled on, capped per muscle and
// by the room left in the session. Muscles claim room in priority order. Once a session is full, the
// remaining muscles of that day are recorded with zero sets, so every plan has an entry for each muscle
// the day targets.
func (t Tables) DistributeVolume(weekly WeeklyVolume, schedule WeeklySchedule) []SessionVolumePlan {
	frequency := make(map[MuscleGroup]int)
	for _, day := range schedule {
		for _, m := range day {
			frequency[m]++
		}
	}

	limits := t.Limits
	plans := make([]SessionVolumePlan, 0, len(schedule))
	for _, day := range schedule {
		plan := make(SessionVolumePlan, len(day))
		total := 0
		for _, m := range t.Priority {
			if !day.Contains(m) {
				continue
			}
			if total >= limits.MaxSetsPerSession {
				plan[m] = 0
				continue
			}
			sets := roundSets(float64(weekly[m]) / float64(max(frequency[m], 1)))
			sets = min(sets, limits.MaxSetsPerMusclePerSession, limits.MaxSetsPerSession-total)
			sets = max(sets, 0)
			plan[m] = sets
			total += sets
		}
		// Muscles outside the priority list still get an entry.
		for _, m := range day {
			if _, ok := plan[m]; !ok {
				plan[m] = 0
			}
		}
		plans = append(plans, plan)
	}
	return plans
}
