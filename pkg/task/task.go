package task

import (
	"strings"

	"github.com/google/uuid"
)

type ID string

// DefaultDuration is the effort estimate, in minutes, of a task that has none.
const DefaultDuration = 25

// NewID returns a fresh opaque task identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// ParsePriority maps free text to a Priority, defaulting to Medium.
func ParsePriority(s string) Priority {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case High, Medium, Low:
		return p
	}
	return Medium
}

// Rank orders priorities, lower sorts first. Unknown values rank as Medium.
func (p Priority) Rank() int {
	switch ParsePriority(string(p)) {
	case High:
		return 0
	case Low:
		return 2
	}
	return 1
}

// Task is the canonical task record.
type Task struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Due         *string  `json:"due"`
	DurationMin int      `json:"duration_min"`
	Priority    Priority `json:"priority"`
	Tags        []string `json:"tags"`
	Done        bool     `json:"done"`
}

// Duration returns the effort estimate in minutes, DefaultDuration when unset.
func (t Task) Duration() int {
	if t.DurationMin <= 0 {
		return DefaultDuration
	}
	return t.DurationMin
}

// Clone returns a deep copy so stored tasks never share slices or pointers with callers.
func (t Task) Clone() Task {
	out := t
	if t.Due != nil {
		due := *t.Due
		out.Due = &due
	}
	if t.Tags != nil {
		out.Tags = append([]string{}, t.Tags...)
	}
	return out
}
