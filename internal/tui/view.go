package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/pomoplan/internal/ui"
	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task/date"
)

func (m *Model) info() string {
	if m.tabs.Value() == tabPlan {
		if len(m.plan.Blocks) == 0 {
			return ""
		}
		return fmt.Sprintf("%dm work, %dm break", m.plan.WorkMinutes(), m.plan.BreakMinutes())
	}
	return fmt.Sprintf("%d tasks", len(m.tasks))
}

func (m *Model) viewTasks() string {
	if len(m.tasks) == 0 {
		return ui.StatusInfo.Render("  no tasks, press o to add one")
	}
	s := ""
	for i, t := range m.tasks {
		title := ui.TaskTitle
		if i == m.cursor {
			title = title.Background(ui.Faded)
		}
		if t.Done {
			title = title.Strikethrough(true).Foreground(ui.Secondary)
		}

		s += ui.TaskIcon.Foreground(ui.PriorityColor(string(t.Priority))).Render("∙")
		s += title.Render(t.Title)
		s += formatMinutes(t.Duration())
		if t.Due != nil {
			if due, err := date.ParseISO(*t.Due); err == nil {
				s += ui.TaskDivider
				s += lipgloss.NewStyle().Foreground(ui.DueColor(date.DaysBetween(m.now(), due))).Render(m.formatDate(due))
			}
		}
		if len(t.Tags) > 0 {
			s += " " + ui.TaskTag.Render("#"+strings.Join(t.Tags, " #"))
		}
		s += "\n"
	}
	return s
}

func (m *Model) viewPlan() string {
	if len(m.plan.Blocks) == 0 {
		return ui.StatusInfo.Render("  no plan, press g to generate one")
	}
	s := ""
	offset := 0
	for i, b := range m.plan.Blocks {
		at := fmt.Sprintf("%3d:%02d ", offset/3600, offset/60%60)
		line := ui.WorkBlock.Render("work ") + ui.TaskTitle.Render(b.Title)
		if b.Type == plan.Break {
			line = ui.BreakBlock.Render("break")
		}
		if i == m.cursor {
			at = lipgloss.NewStyle().Background(ui.Faded).Render(at)
		}
		s += ui.TaskIcon.Render("∙") + ui.StatusInfo.Render(at) + line + formatMinutes(b.Seconds/60) + "\n"
		offset += b.Seconds
	}
	return s
}

func (m *Model) formatDate(t time.Time) string {
	switch days := date.DaysBetween(m.now(), t); {
	case days < 0:
		return "overdue"
	case days == 0:
		return "today"
	case days < 14:
		suffix := ""
		if days > 1 {
			suffix = "s"
		}
		return strconv.Itoa(days) + " day" + suffix
	// max 1 month
	case days <= 31:
		return strconv.Itoa(days/7) + " weeks"
	// months
	default:
		postfix := ""
		months := days / 31
		if months > 1 {
			postfix = "s"
		}
		return strconv.Itoa(months) + " month" + postfix
	}
}

func formatMinutes(n int) string {
	bracket := lipgloss.NewStyle().Foreground(ui.Faded).Render
	return bracket(" (") + ui.TaskTimer.Render(strconv.Itoa(n)+"m") + bracket(")")
}
