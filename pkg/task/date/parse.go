package date

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrParsing = errors.New("error parsing date")

// ParseDue resolves a due token to a calendar day relative to now.
// Accepted forms: ISO days, today/tomorrow, weekday names, day offsets
// ("3d", "in 2 weeks") and a few absolute layouts ("21/04/2026", "21 Apr 2026").
func ParseDue(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}, ErrParsing
	}
	today := StartOfDay(now)
	switch s {
	case "today", "tod", "now":
		return today, nil
	case "tomorrow", "tom":
		return today.AddDate(0, 0, 1), nil
	}
	if t, err := ParseISO(s); err == nil {
		return t, nil
	}
	if wkd, err := ParseWeekday(s); err == nil {
		return NextWeekday(now, wkd), nil
	}
	if days, err := parseDayOffset(s); err == nil {
		return today.AddDate(0, 0, days), nil
	}
	if t, err := parseAbsolute(s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrParsing
}

var weekdayAliases = map[string]time.Weekday{
	"tues":  time.Tuesday,
	"thur":  time.Thursday,
	"thurs": time.Thursday,
}

// ParseWeekday matches full or three letter weekday names, case-insensitively.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(s)
	for i := time.Sunday; i <= time.Saturday; i++ {
		name := strings.ToLower(i.String())
		if s == name || s == name[:3] {
			return i, nil
		}
	}
	if w, ok := weekdayAliases[s]; ok {
		return w, nil
	}
	return 0, errors.New("invalid weekday")
}

func parseAnyTimeFormat(s string, formats []string) (time.Time, error) {
	for _, fmt := range formats {
		t, err := time.Parse(fmt, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("format not found")
}

func parseAbsolute(s string) (time.Time, error) {
	return parseAnyTimeFormat(s, absoluteFormats)
}

var absoluteFormats = []string{
	"_2/01/06",
	"_2/01/2006",
	"_2 Jan 2006",
	"_2 January 2006",
}

type multiplier struct {
	key   string
	value int
}

var multipliers = []multiplier{
	{"days", 1},
	{"weeks", 7},
	{"months", 30},
	{"years", 365},
}

func parseDayOffset(s string) (int, error) {
	s = strings.TrimPrefix(s, "in")
	s = strings.TrimSpace(s)
	negative := false
	if len(s) >= 1 {
		if s[0] == '-' {
			negative = true
			s = s[1:]
		} else if s[0] == '+' {
			s = s[1:]
		}
	}
	rest, n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(rest)

	mult := 1
	if len(s) > 0 {
		mult = 0
		word := s
		if i := strings.IndexByte(s, ' '); i >= 0 {
			word = s[:i]
		}
		for _, m := range multipliers {
			end := min(len(m.key), len(word))
			if m.key[:end] == word {
				mult = m.value
				s = s[len(word):]
				break
			}
		}
		if mult == 0 {
			return 0, errors.New("invalid suffix, expected 'days', 'months', 'weeks', or 'years'")
		}
		if strings.TrimSpace(s) == "ago" {
			negative = true
		} else if strings.TrimSpace(s) != "" {
			return 0, errors.New("unexpected trailing input")
		}
	}
	if negative {
		n = -n
	}
	return n * mult, nil
}

func parseInt(s string) (string, int, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s, 0, errors.New("failed to parse")
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return s, 0, err
	}
	return s[i:], n, nil
}
