package task

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func TestPrioritize(t *testing.T) {
	tasks := []Task{
		{ID: "undated-low", Priority: Low, DurationMin: 10},
		{ID: "late", Due: strp("2026-11-02"), Priority: High, DurationMin: 25},
		{ID: "undated-high-long", Priority: High, DurationMin: 90},
		{ID: "soon-medium", Due: strp("2026-10-21"), Priority: Medium, DurationMin: 25},
		{ID: "malformed", Due: strp("next week"), Priority: High, DurationMin: 5},
		{ID: "soon-high", Due: strp("2026-10-21"), Priority: High, DurationMin: 60},
		{ID: "undated-unset", DurationMin: 0},
		{ID: "undated-high-short", Priority: High, DurationMin: 15},
	}
	want := []ID{
		"soon-high",
		"soon-medium",
		"late",
		"malformed",
		"undated-high-short",
		"undated-high-long",
		"undated-unset",
		"undated-low",
	}
	got := Prioritize(tasks)
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("Prioritize() order mismatch (-want +got):\n%s", diff)
	}
}

func TestPrioritize_KeepsTasksIntact(t *testing.T) {
	is := is.New(t)
	tasks := []Task{
		{ID: "a", Title: "a", Priority: Low, Tags: []string{"x"}},
		{ID: "b", Title: "b", Priority: High, Due: strp("2026-10-22")},
		{ID: "c", Title: "c"},
	}
	before := make([]Task, len(tasks))
	for i, t := range tasks {
		before[i] = t.Clone()
	}

	got := Prioritize(tasks)
	is.Equal(len(got), len(tasks))
	is.Equal(tasks, before) // input slice untouched

	byID := map[ID]Task{}
	for _, t := range got {
		byID[t.ID] = t
	}
	for _, t := range before {
		if diff := cmp.Diff(t, byID[t.ID]); diff != "" {
			is.Fail() // task fields changed
		}
	}
}

func TestPrioritize_Stable(t *testing.T) {
	tasks := []Task{}
	for _, id := range []ID{"1", "2", "3", "4", "5"} {
		tasks = append(tasks, Task{ID: id, Due: strp("2026-10-25"), Priority: Medium, DurationMin: 25})
	}
	got := Prioritize(tasks)
	if diff := cmp.Diff([]ID{"1", "2", "3", "4", "5"}, ids(got)); diff != "" {
		t.Errorf("ties reordered (-want +got):\n%s", diff)
	}
}

func TestPriority_Rank(t *testing.T) {
	is := is.New(t)
	is.True(High.Rank() < Medium.Rank())
	is.True(Medium.Rank() < Low.Rank())
	is.Equal(Priority("").Rank(), Medium.Rank())
	is.Equal(Priority("HIGH").Rank(), High.Rank())
}
