package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/td0m/pomoplan/pkg/client"
	"github.com/td0m/pomoplan/pkg/gcal"
	"github.com/td0m/pomoplan/pkg/task/date"
)

var (
	exportStart string
	exportDate  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy the server's plan into Google Calendar",
	Long: `Insert the current plan into the calendar named calendar.name, one event
per block, back to back from --start.

The first run asks for authorization and caches the token in calendar.token.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportStart, "start", "", "start time, HH:MM")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "day to export to, YYYY-MM-DD (default today)")
	_ = exportCmd.MarkFlagRequired("start")
}

// startTime combines day and clock into a local instant.
func startTime(day, clock string, now time.Time) (time.Time, error) {
	d := date.StartOfDay(now)
	if day != "" {
		parsed, err := date.ParseDue(day, now)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q", day)
		}
		d = parsed
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --start %q, expected HH:MM", clock)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hm.Hour(), hm.Minute(), 0, 0, now.Location()), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	start, err := startTime(exportDate, exportStart, time.Now())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	p, err := client.New(cfg.Client.URL).Plan(ctx)
	if err != nil {
		return err
	}
	if len(p.Blocks) == 0 {
		return fmt.Errorf("the server has no plan, generate one first")
	}

	exporter, err := gcal.NewExporter(ctx, gcal.Auth{
		Credentials: cfg.Calendar.Credentials,
		Token:       cfg.Calendar.Token,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
	}, cfg.Calendar.Name)
	if err != nil {
		return err
	}
	created, err := exporter.Export(ctx, p, start)
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d blocks exported to %q\n", len(created), len(p.Blocks), cfg.Calendar.Name)
	return err
}
