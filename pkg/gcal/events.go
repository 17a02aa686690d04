// Package gcal exports plans to Google Calendar.
package gcal

import (
	"fmt"
	"time"

	"github.com/td0m/pomoplan/pkg/plan"
	"google.golang.org/api/calendar/v3"
)

const (
	// BlockIDProperty is the private extended property holding the block id.
	BlockIDProperty = "pomoplan_block_id"
	TaskIDProperty  = "pomoplan_task_id"

	breakSummary = "Break"

	// Google calendar palette ids.
	workColor  = "9"
	breakColor = "2"
)

// Events lays the plan's blocks out back to back starting at start.
func Events(p plan.Plan, start time.Time) []*calendar.Event {
	out := make([]*calendar.Event, 0, len(p.Blocks))
	at := start
	for _, b := range p.Blocks {
		end := at.Add(time.Duration(b.Seconds) * time.Second)
		out = append(out, event(b, at, end))
		at = end
	}
	return out
}

func event(b plan.Block, start, end time.Time) *calendar.Event {
	e := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:   &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{BlockIDProperty: b.ID},
		},
	}

	if b.Type == plan.Break {
		e.Summary = breakSummary
		e.ColorId = breakColor
		e.Transparency = "transparent"
		return e
	}

	e.Summary = b.Title
	if e.Summary == "" {
		e.Summary = "Focus"
	}
	e.ColorId = workColor
	e.Description = fmt.Sprintf("Pomodoro: %d min", b.Seconds/60)
	if b.TaskID != "" {
		e.ExtendedProperties.Private[TaskIDProperty] = string(b.TaskID)
		e.Description += fmt.Sprintf("\nTask: %s", b.TaskID)
	}
	return e
}
