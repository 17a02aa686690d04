package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/td0m/pomoplan/pkg/task/date"
)

// Draft is a task-like candidate, produced by a brief parser or submitted by a
// client, that has not been normalized yet. Nil pointers mean "unspecified".
type Draft struct {
	ID          ID       `json:"id,omitempty"`
	Title       string   `json:"title"`
	Due         *string  `json:"due"`
	DurationMin *int     `json:"duration_min"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`

	// Raw is the source line the draft was extracted from.
	// It becomes the title when Title is blank.
	Raw string `json:"-"`
}

// UnmarshalJSON accepts a fractional duration_min and rounds it to whole
// minutes.
func (d *Draft) UnmarshalJSON(bs []byte) error {
	type plain Draft
	aux := struct {
		*plain
		DurationMin *float64 `json:"duration_min"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(bs, &aux); err != nil {
		return err
	}
	d.DurationMin = RoundMinutes(aux.DurationMin)
	return nil
}

// RoundMinutes rounds a decoded minute count to the nearest whole minute,
// capped to the int32 range. Nil stays nil.
func RoundMinutes(f *float64) *int {
	if f == nil {
		return nil
	}
	n := int(math.Max(math.Min(math.Round(*f), math.MaxInt32), math.MinInt32))
	return &n
}

// Draft turns a canonical task back into a candidate.
func (t Task) Draft() Draft {
	d := Draft{
		ID:       t.ID,
		Title:    t.Title,
		Priority: string(t.Priority),
		Tags:     append([]string{}, t.Tags...),
	}
	if t.Due != nil {
		due := *t.Due
		d.Due = &due
	}
	if t.DurationMin > 0 {
		n := t.DurationMin
		d.DurationMin = &n
	}
	return d
}

// Normalize fills defaults and validates a draft into a canonical Task.
// It keeps an existing id and generates one otherwise. Done is always false.
func Normalize(d Draft, now time.Time) (Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = strings.TrimSpace(d.Raw)
	}
	if title == "" {
		return Task{}, invalid("title", "must not be blank")
	}

	id := d.ID
	if id == "" {
		id = NewID()
	}

	duration := DefaultDuration
	if d.DurationMin != nil && *d.DurationMin > 0 {
		duration = *d.DurationMin
	}

	return Task{
		ID:          id,
		Title:       title,
		Due:         normalizeDue(d.Due, now),
		DurationMin: duration,
		Priority:    ParsePriority(d.Priority),
		Tags:        normalizeTags(d.Tags),
		Done:        false,
	}, nil
}

// NormalizeAll normalizes every draft, skipping the ones without a usable
// title. The skipped drafts are reported in the returned error.
func NormalizeAll(ds []Draft, now time.Time) ([]Task, error) {
	out := make([]Task, 0, len(ds))
	var errs []error
	for i, d := range ds {
		t, err := Normalize(d, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		out = append(out, t)
	}
	return out, errors.Join(errs...)
}

func normalizeDue(due *string, now time.Time) *string {
	if due == nil || strings.TrimSpace(*due) == "" {
		return nil
	}
	t, err := date.ParseDue(*due, now)
	if err != nil {
		return nil
	}
	s := date.Format(t)
	return &s
}

func normalizeTags(tags []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimLeft(strings.TrimSpace(tag), "#"))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
