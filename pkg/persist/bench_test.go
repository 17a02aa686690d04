package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
)

// a year of weekly briefs, 30 tasks each
func bigSnapshot() Snapshot {
	weeks, perWeek := 52, 30
	tasks := make([]task.Task, 0, weeks*perWeek)
	for i := 0; i < weeks*perWeek; i++ {
		due := fmt.Sprintf("2026-%02d-%02d", i%12+1, i%28+1)
		tasks = append(tasks, task.Task{
			ID:          task.NewID(),
			Title:       fmt.Sprintf("task %d", i),
			Due:         &due,
			DurationMin: 25 * (i%4 + 1),
			Priority:    task.Medium,
			Tags:        []string{"work", "week"},
		})
	}
	p := plan.Plan{Blocks: plan.Schedule(task.Prioritize(tasks), 40*60, plan.DefaultPolicy)}
	return Snapshot{Tasks: tasks, Plan: &p}
}

func BenchmarkJSON_Save(b *testing.B) {
	snap := bigSnapshot()
	file := filepath.Join(b.TempDir(), "tasks.json")
	j := InJSON(file)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := j.Save(snap); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	if info, err := os.Stat(file); err == nil {
		b.ReportMetric(float64(info.Size())/1024, "KiB/file")
	}
}

func BenchmarkJSON_Load(b *testing.B) {
	j := InJSON(filepath.Join(b.TempDir(), "tasks.json"))
	if err := j.Save(bigSnapshot()); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := j.Load(); err != nil {
			b.Fatal(err)
		}
	}
}
