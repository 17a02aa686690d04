package dateinput

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"
)

// a Tuesday
var now = time.Date(2026, time.October, 20, 15, 0, 0, 0, time.UTC)

func Test_parse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tod", "2026-10-20"},
		{"tomo", "2026-10-21"},
		{"fr", "2026-10-23"},
		{"tue", "2026-10-27"},
		{"in 1 week", "2026-10-27"},
		{"3d", "2026-10-23"},
		{"2026-11-02", "2026-11-02"},
		{"2nd jan 2027", "2027-01-02"},
		{"", ""},
		{"whenever", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			is := is.New(t)
			got := parse(tt.input, now)
			if tt.want == "" {
				is.True(got == nil)
				return
			}
			is.True(got != nil)
			is.Equal(got.Format("2006-01-02"), tt.want)
		})
	}
}

func Test_relative(t *testing.T) {
	is := is.New(t)
	day := func(n int) time.Time { return now.AddDate(0, 0, n) }
	is.Equal(relative(day(0), now), "today")
	is.Equal(relative(day(1), now), "tomorrow")
	is.Equal(relative(day(5), now), "5 days")
	is.Equal(relative(day(21), now), "3 weeks")
	is.Equal(relative(day(70), now), "2 months")
	is.Equal(relative(day(-2), now), "2 days ago")
}

func TestModel(t *testing.T) {
	is := is.New(t)
	m := NewModel()
	m.Now = func() time.Time { return now }

	for _, r := range "fri" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	is.True(m.Valid())
	is.Equal(*m.Value(), "2026-10-23")

	m.SetValue(nil)
	is.True(m.Valid())
	is.True(m.Value() == nil)

	bad := "nope"
	m.SetValue(&bad)
	is.True(!m.Valid())
}
