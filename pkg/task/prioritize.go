package task

import (
	"sort"

	"github.com/td0m/pomoplan/pkg/task/date"
)

// Prioritize returns a new slice with the same tasks ordered by due date
// (undated and malformed dates last), then priority, then shorter duration.
// Ties keep their input order.
func Prioritize(ts []Task) []Task {
	out := make([]Task, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}

// Less reports whether a should be worked on before b.
func Less(a, b Task) bool {
	ad, aok := date.Instant(a.Due)
	bd, bok := date.Instant(b.Due)
	if aok != bok {
		return aok
	}
	if aok && !ad.Equal(bd) {
		return ad.Before(bd)
	}
	if ar, br := a.Priority.Rank(), b.Priority.Rank(); ar != br {
		return ar < br
	}
	return a.Duration() < b.Duration()
}
