package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	tabContainer = lipgloss.NewStyle().Padding(1, 1)
	activeTab    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	inactiveTab  = lipgloss.NewStyle().Foreground(Secondary)
	tabDivider   = lipgloss.NewStyle().Foreground(Faded)
)

type Tabs struct {
	tabs []string
	i    int

	Width int
	Info  string
}

// NewTabs creates a new tabs ui bubbletea model
func NewTabs(tabs []string) Tabs {
	return Tabs{tabs: tabs}
}

func (m Tabs) Init() tea.Cmd {
	return nil
}

// Update cycles through the tabs on tab and shift+tab.
func (m Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyTab:
			m.Set((m.i + 1) % len(m.tabs))
		case tea.KeyShiftTab:
			m.Set((m.i + len(m.tabs) - 1) % len(m.tabs))
		}
	}
	return m, nil
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Tabs) View() string {
	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		r := inactiveTab
		if i == m.i {
			r = activeTab
		}
		tabs[i] = r.Render(t)
	}
	w := lipgloss.Width
	left := strings.Join(tabs, tabDivider.Render(" | "))
	right := m.Info
	space := lipgloss.NewStyle().Width(max(m.Width-2-w(left)-w(right), 0)).Render("")
	return tabContainer.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, space, right)) + "\n"
}

func (m Tabs) Value() int {
	return m.i
}

func (m *Tabs) Set(i int) {
	m.i = min(max(i, 0), len(m.tabs)-1)
}
