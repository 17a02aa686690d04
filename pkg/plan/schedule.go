package plan

import (
	"errors"

	"github.com/td0m/pomoplan/pkg/task"
)

var (
	ErrEmptyTasks = errors.New("no tasks to schedule")
	ErrNoBudget   = errors.New("minutes available must be positive")
)

type unit struct {
	task      task.Task
	remaining int
}

// Schedule lays out work units for tasks, which must already be prioritized,
// within minutes of available time.
//
// Each task needs ceil(duration/work) units, at least one. Units are taken
// from the first task that still has some left, so a task is finished before
// the next one starts. Every policy.LongEvery-th unit is followed by a long
// break, the others by a short one, but only while the remaining budget fits
// that break plus another work unit and some task still needs work; otherwise
// scheduling stops, so a plan never ends on a break.
func Schedule(tasks []task.Task, minutes int, policy Policy) []Block {
	policy = policy.WithDefaults(DefaultPolicy)
	blocks := []Block{}
	if minutes <= 0 || len(tasks) == 0 {
		return blocks
	}

	queue := make([]unit, len(tasks))
	for i, t := range tasks {
		queue[i] = unit{task: t, remaining: unitsFor(t.DurationMin, policy.Work)}
	}

	remaining := minutes
	completed := 0
	for remaining >= policy.Work {
		next := firstPending(queue)
		if next < 0 {
			break
		}
		u := &queue[next]
		blocks = append(blocks, Block{
			ID:      newBlockID(),
			Type:    Work,
			Seconds: policy.Work * 60,
			TaskID:  u.task.ID,
			Title:   u.task.Title,
		})
		u.remaining--
		remaining -= policy.Work
		completed++

		if firstPending(queue) < 0 {
			break
		}
		pause := policy.Short
		if completed%policy.LongEvery == 0 {
			pause = policy.Long
		}
		if remaining < pause+policy.Work {
			break
		}
		blocks = append(blocks, Block{
			ID:      newBlockID(),
			Type:    Break,
			Seconds: pause * 60,
		})
		remaining -= pause
	}
	return blocks
}

// unitsFor is ceil(duration/work), never less than one.
func unitsFor(duration, work int) int {
	if duration <= 0 {
		return 1
	}
	n := (duration + work - 1) / work
	if n < 1 {
		return 1
	}
	return n
}

func firstPending(queue []unit) int {
	for i := range queue {
		if queue[i].remaining > 0 {
			return i
		}
	}
	return -1
}

// Request is everything Generate needs besides the tasks.
type Request struct {
	MinutesAvailable int
	Policy           Policy
}

// Validate rejects requests the scheduler would silently turn into an empty plan.
func (r Request) Validate(tasks []task.Task) error {
	if r.MinutesAvailable <= 0 {
		return &task.ValidationError{Field: "minutesAvailable", Reason: ErrNoBudget.Error()}
	}
	if len(tasks) == 0 {
		return &task.ValidationError{Field: "tasks", Reason: ErrEmptyTasks.Error()}
	}
	return nil
}

// Generate prioritizes tasks and schedules them.
func Generate(tasks []task.Task, r Request) ([]Block, error) {
	if err := r.Validate(tasks); err != nil {
		return nil, err
	}
	return Schedule(task.Prioritize(tasks), r.MinutesAvailable, r.Policy), nil
}
