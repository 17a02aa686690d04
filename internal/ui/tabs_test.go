package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
)

func TestTabs(t *testing.T) {
	is := is.New(t)
	tabs := NewTabs([]string{"Tasks", "Plan"})
	is.Equal(tabs.Value(), 0)

	tabs, _ = tabs.Update(tea.KeyMsg{Type: tea.KeyTab})
	is.Equal(tabs.Value(), 1)
	tabs, _ = tabs.Update(tea.KeyMsg{Type: tea.KeyTab})
	is.Equal(tabs.Value(), 0)
	tabs, _ = tabs.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	is.Equal(tabs.Value(), 1)

	tabs.Set(10)
	is.Equal(tabs.Value(), 1)
	tabs.Set(-1)
	is.Equal(tabs.Value(), 0)

	tabs.Width = 40
	tabs.Info = "3 tasks"
	view := tabs.View()
	is.True(strings.Contains(view, "Tasks"))
	is.True(strings.Contains(view, "3 tasks"))
}

func TestDueColor(t *testing.T) {
	is := is.New(t)
	is.Equal(DueColor(-1), Red)
	is.Equal(DueColor(2), Red)
	is.Equal(DueColor(3), Orange)
	is.Equal(DueColor(30), Faded)
	is.Equal(PriorityColor("high"), Red)
	is.Equal(PriorityColor("medium"), Yellow)
}
