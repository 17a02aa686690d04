// Package dateinput is a text input that previews the due date being typed.
package dateinput

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/pomoplan/pkg/task/date"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}

	ordinal = regexp.MustCompile(`([0-9])(st|nd|rd|th)\b`)
)

type Model struct {
	i     textinput.Model
	value *time.Time

	// Now anchors relative dates. Defaults to time.Now.
	Now func() time.Time
}

func NewModel() Model {
	i := textinput.New()
	i.Cursor.SetMode(cursor.CursorStatic)
	i.Focus()
	i.CharLimit = 20
	i.Prompt = ""
	return Model{
		i: i,
	}
}

func (m Model) now() time.Time {
	if m.Now == nil {
		return time.Now()
	}
	return m.Now()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.i, cmd = m.i.Update(msg)
		m.value = parse(m.i.Value(), m.now())
		return m, cmd
	}
	return m, nil
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m Model) View() string {
	indicator := cross
	if m.i.Value() == "" {
		indicator = ""
	} else if m.value != nil {
		indicator = checkmark + " " + relative(*m.value, m.now())
	}
	prefix := "due"
	return lipgloss.NewStyle().Foreground(faded).Render(prefix+": ") + m.i.View() + indicator
}

// Value is the ISO day typed so far, nil when the input is empty or invalid.
func (m Model) Value() *string {
	if m.value == nil {
		return nil
	}
	s := date.Format(*m.value)
	return &s
}

// Valid reports whether the input can be submitted: either empty, to clear
// the due date, or a parseable date.
func (m Model) Valid() bool {
	return m.i.Value() == "" || m.value != nil
}

func (m *Model) SetValue(due *string) {
	m.value = nil
	if due == nil {
		m.i.SetValue("")
		return
	}
	m.i.SetValue(*due)
	m.value = parse(*due, m.now())
}

func parse(s string, now time.Time) *time.Time {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	// complete prefixes of the relative names while typing
	for i, name := range []string{"today", "tomorrow"} {
		if len(s) >= 3 && strings.HasPrefix(name, s) {
			t := date.StartOfDay(now).AddDate(0, 0, i)
			return &t
		}
	}
	for w := time.Sunday; w <= time.Saturday; w++ {
		if len(s) >= 2 && strings.HasPrefix(strings.ToLower(w.String()), s) {
			t := date.NextWeekday(now, w)
			return &t
		}
	}
	s = ordinal.ReplaceAllString(s, "$1")
	t, err := date.ParseDue(s, now)
	if err != nil {
		return nil
	}
	return &t
}

func relative(t, now time.Time) string {
	switch days := date.DaysBetween(now, t); {
	case days < 0:
		return strconv.Itoa(-days) + " days ago"
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 14:
		return strconv.Itoa(days) + " days"
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
