package brief

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/td0m/pomoplan/pkg/task"
	"github.com/td0m/pomoplan/pkg/task/date"
)

const (
	minDuration = 5
	maxDuration = 480
)

const weekdays = `monday|mon|tuesday|tues|tue|wednesday|wed|thursday|thurs|thur|thu|friday|fri|saturday|sat|sunday|sun`

var (
	tagRe      = regexp.MustCompile(`#([\p{L}\p{N}_\-/]+)`)
	durationRe = regexp.MustCompile(`(?i)~\s*(\d+)\s*(hours?|hrs?|h|minutes?|mins?|m)?\b`)
	dueRe      = regexp.MustCompile(`(?i)\bdue\s+(\d{4}-\d{2}-\d{2}|today|tomorrow|` + weekdays + `)\b`)
	weekdayRe  = regexp.MustCompile(`(?i)(?:^|\s)(` + weekdays + `)(?:[\s.,;!?]|$)`)
	priorityRe = regexp.MustCompile(`(?i)(?:^|\s)(low|medium|high)(?:[\s.,;!?]|$)`)
	isoRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	bulletRe   = regexp.MustCompile(`^\s*(?:(?:[-*•+]|\d+[.)])\s+)?(?:\[[ xX]?\]\s*)?`)
)

// Heuristic extracts drafts from a brief with lexical rules only.
// It never fails: every non-blank line yields a draft.
type Heuristic struct {
	// Now anchors weekday names; time.Now when nil.
	Now func() time.Time
}

func (h Heuristic) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

// Parse returns one draft per non-blank line of text.
func (h Heuristic) Parse(text string) []task.Draft {
	now := h.now()
	out := []task.Draft{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, ParseLine(line, now))
	}
	return out
}

// ParseLine extracts duration, priority, tags and due date from a single line.
// Every matched token is cut from the line and what is left becomes the title.
func ParseLine(line string, now time.Time) task.Draft {
	d := task.Draft{Raw: line, Priority: string(task.Medium), Tags: []string{}}
	rest := line

	for _, m := range tagRe.FindAllStringSubmatch(rest, -1) {
		d.Tags = append(d.Tags, strings.ToLower(m[1]))
	}
	rest = tagRe.ReplaceAllString(rest, " ")

	if m := durationRe.FindStringSubmatchIndex(rest); m != nil {
		n, err := strconv.Atoi(rest[m[2]:m[3]])
		if err == nil {
			if m[4] >= 0 && strings.HasPrefix(strings.ToLower(rest[m[4]:m[5]]), "h") {
				n *= 60
			}
			n = min(maxDuration, max(minDuration, n))
			d.DurationMin = &n
		}
		rest = cut(rest, m[0], m[1])
	}

	if m := dueRe.FindStringSubmatchIndex(rest); m != nil {
		d.Due = resolveDue(rest[m[2]:m[3]], now)
		rest = cut(rest, m[0], m[1])
	} else if m := weekdayRe.FindStringSubmatchIndex(rest); m != nil {
		d.Due = resolveDue(rest[m[2]:m[3]], now)
		rest = cut(rest, m[2], m[3])
	}

	if m := priorityRe.FindStringSubmatchIndex(rest); m != nil {
		d.Priority = strings.ToLower(rest[m[2]:m[3]])
		rest = cut(rest, m[2], m[3])
	}

	rest = bulletRe.ReplaceAllString(rest, "")
	d.Title = strings.Join(strings.Fields(rest), " ")
	if d.Title == "" {
		d.Title = line
	}
	return d
}

// resolveDue keeps ISO days verbatim and resolves relative words against now.
func resolveDue(token string, now time.Time) *string {
	if isoRe.MatchString(token) {
		return &token
	}
	t, err := date.ParseDue(token, now)
	if err != nil {
		return nil
	}
	s := date.Format(t)
	return &s
}

func cut(s string, from, to int) string {
	return s[:from] + " " + s[to:]
}
