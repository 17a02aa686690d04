package gcal

import (
	"context"
	"fmt"
	"time"

	"github.com/td0m/pomoplan/pkg/plan"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Exporter inserts plan blocks into one calendar.
type Exporter struct {
	srv        *calendar.Service
	calendarID string
}

// NewExporter authenticates and looks up the calendar by name.
func NewExporter(ctx context.Context, a Auth, calendarName string) (*Exporter, error) {
	client, err := a.Client(ctx)
	if err != nil {
		return nil, err
	}
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Calendar client: %w", err)
	}
	return ForCalendar(ctx, srv, calendarName)
}

// ForCalendar finds calendarName among the user's calendars.
func ForCalendar(ctx context.Context, srv *calendar.Service, calendarName string) (*Exporter, error) {
	calendarList, err := srv.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve calendar list: %w", err)
	}
	for _, item := range calendarList.Items {
		if item.Summary == calendarName {
			return &Exporter{srv: srv, calendarID: item.Id}, nil
		}
	}
	return nil, fmt.Errorf("calendar '%s' not found", calendarName)
}

// Export inserts one event per block and returns the created events. It stops
// at the first failure; events inserted before it are kept.
func (e *Exporter) Export(ctx context.Context, p plan.Plan, start time.Time) ([]*calendar.Event, error) {
	var created []*calendar.Event
	for _, ev := range Events(p, start) {
		got, err := e.srv.Events.Insert(e.calendarID, ev).Context(ctx).Do()
		if err != nil {
			return created, fmt.Errorf("inserting %q at %s: %w", ev.Summary, ev.Start.DateTime, err)
		}
		created = append(created, got)
	}
	return created, nil
}
