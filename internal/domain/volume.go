package domain

// Volume is the work contributed by one executed set: reps multiplied by
// weight. Both factors are non-negative, so the contribution never is
// either. Decimal weights contribute exactly (5 reps at 2.5 is 12.5).
func (s CompletedSet) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

// TotalVolume sums the volume of every recorded set. An exercise without
// sets sums to exactly 0.
func (se *SessionExercise) TotalVolume() float64 {
	var total float64
	for _, set := range se.Sets {
		total += set.Volume()
	}
	return total
}

// TotalVolume sums the volume of every session exercise bottom-up. Totals
// are always computed at read time from the sets themselves; nothing is
// denormalized on the session.
func (w *WorkoutSession) TotalVolume() float64 {
	var total float64
	for i := range w.Exercises {
		total += w.Exercises[i].TotalVolume()
	}
	return total
}
