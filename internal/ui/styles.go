// Package ui holds the terminal palette, styles and the tabs widget.
package ui

import "github.com/charmbracelet/lipgloss"

// palette
const (
	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
	Orange = lipgloss.Color("#c27510")
)

var (
	TaskIcon  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TaskTitle = lipgloss.NewStyle().Bold(true)

	TaskDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")
	TaskTimer   = lipgloss.NewStyle().Foreground(Blue)
	TaskTag     = lipgloss.NewStyle().Foreground(Faded)

	WorkBlock  = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	BreakBlock = lipgloss.NewStyle().Foreground(Green)

	StatusError = lipgloss.NewStyle().Foreground(Red)
	StatusInfo  = lipgloss.NewStyle().Foreground(Secondary)
)

// PriorityColor colours a task's priority marker.
func PriorityColor(priority string) lipgloss.Color {
	switch priority {
	case "high":
		return Red
	case "low":
		return Faded
	default:
		return Yellow
	}
}

// DueColor colours a due date by how many days are left.
func DueColor(days int) lipgloss.Color {
	switch {
	case days <= 2:
		return Red
	case days <= 14:
		return Orange
	default:
		return Faded
	}
}
