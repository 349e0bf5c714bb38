package domain

import (
	"sort"

	"github.com/google/uuid"
)

// supersetOrdinals assigns a 1-based ordinal to each distinct superset group
// ID, ordered by the UUID's string form. The ordering is deterministic but
// intentionally not chronological: the number shown next to a superset is
// stable across reloads regardless of when each group was created.
func supersetOrdinals(groups []uuid.UUID) map[uuid.UUID]int {
	distinct := make(map[uuid.UUID]struct{}, len(groups))
	for _, g := range groups {
		distinct[g] = struct{}{}
	}
	ordered := make([]uuid.UUID, 0, len(distinct))
	for g := range distinct {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})
	ordinals := make(map[uuid.UUID]int, len(ordered))
	for i, g := range ordered {
		ordinals[g] = i + 1
	}
	return ordinals
}

// SupersetNumber returns the display ordinal of the given superset group
// within the day, or 0 when the group does not appear in it.
func (d *DayTemplate) SupersetNumber(group uuid.UUID) int {
	var groups []uuid.UUID
	for _, et := range d.Exercises {
		if et.SupersetGroupID != nil {
			groups = append(groups, *et.SupersetGroupID)
		}
	}
	return supersetOrdinals(groups)[group]
}

// SupersetNumber returns the display ordinal of the given superset group
// within the session, or 0 when the group does not appear in it.
func (w *WorkoutSession) SupersetNumber(group uuid.UUID) int {
	var groups []uuid.UUID
	for _, se := range w.Exercises {
		if se.SupersetGroupID != nil {
			groups = append(groups, *se.SupersetGroupID)
		}
	}
	return supersetOrdinals(groups)[group]
}
