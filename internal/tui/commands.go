package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/pomoplan/pkg/brief"
	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
)

type (
	tasksMsg   []task.Task
	taskMsg    task.Task
	deletedMsg task.ID
	planMsg    plan.Plan
	statusMsg  string
	briefMsg   brief.Result

	generatedMsg struct {
		plan    plan.Plan
		minutes int
	}
	errMsg struct{ err error }
)

// call runs fn against the api with a bounded context and reports failures as errMsg.
func call(fn func(ctx context.Context) (tea.Msg, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg, err := fn(ctx)
		if err != nil {
			return errMsg{err}
		}
		return msg
	}
}

func (m *Model) loadTasks() tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		ts, err := m.api.Tasks(ctx)
		return tasksMsg(ts), err
	})
}

func (m *Model) loadPlan() tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		p, err := m.api.Plan(ctx)
		return planMsg(p), err
	})
}

func (m *Model) create(title string) tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		t, err := m.api.CreateTask(ctx, task.Draft{Title: title})
		return taskMsg(t), err
	})
}

func (m *Model) toggle(t task.Task) tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		updated, err := m.api.PatchTask(ctx, t.ID, map[string]interface{}{"done": !t.Done})
		return taskMsg(updated), err
	})
}

func (m *Model) setDue(id task.ID, due *string) tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		var value interface{}
		if due != nil {
			value = *due
		}
		t, err := m.api.PatchTask(ctx, id, map[string]interface{}{"due": value})
		return taskMsg(t), err
	})
}

func (m *Model) delete(id task.ID) tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		t, err := m.api.DeleteTask(ctx, id)
		return deletedMsg(t.ID), err
	})
}

// generate schedules the tasks with the configured budget.
func (m *Model) generate() tea.Cmd {
	minutes := m.opts.Minutes
	return call(func(ctx context.Context) (tea.Msg, error) {
		p, err := m.api.GeneratePlan(ctx, minutes, m.opts.Policy)
		return generatedMsg{plan: p, minutes: minutes}, err
	})
}

func (m *Model) putPlan(blocks []plan.Block) tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		p, err := m.api.PutPlan(ctx, blocks)
		return planMsg(p), err
	})
}

// importBrief sends the brief at path to the server, replacing its tasks.
func (m *Model) importBrief(path string) tea.Cmd {
	return call(func(ctx context.Context) (tea.Msg, error) {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		res, err := m.api.WeeklyParse(ctx, string(text))
		return briefMsg(res), err
	})
}
