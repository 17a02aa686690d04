package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/td0m/pomoplan/pkg/persist"
	"github.com/td0m/pomoplan/pkg/plan"
)

var (
	scheduleIn      string
	scheduleOut     string
	scheduleMinutes int
	schedulePolicy  plan.Policy
	scheduleRaw     bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Lay out saved tasks as pomodoro blocks",
	Long: `Prioritize the tasks saved by "pomoplan parse" and schedule them into
work and break blocks within the given number of minutes.

Example:
  pomoplan schedule -i tasks.json --minutes 240 --work 50 --short 10`,
	RunE: runSchedule,
}

func init() {
	f := scheduleCmd.Flags()
	f.StringVarP(&scheduleIn, "in", "i", "tasks.json", "file with the tasks")
	f.StringVarP(&scheduleOut, "out", "o", "", "file to save tasks and plan to (default: the input file)")
	f.IntVarP(&scheduleMinutes, "minutes", "m", 0, "minutes available")
	f.IntVar(&schedulePolicy.Work, "work", 0, "work block minutes (default pomodoro.work)")
	f.IntVar(&schedulePolicy.Short, "short", 0, "short break minutes (default pomodoro.short)")
	f.IntVar(&schedulePolicy.Long, "long", 0, "long break minutes (default pomodoro.long)")
	f.IntVar(&schedulePolicy.LongEvery, "long-every", 0, "work blocks between long breaks (default pomodoro.long_every)")
	f.BoolVar(&scheduleRaw, "raw", false, "print markdown without rendering it")
	_ = scheduleCmd.MarkFlagRequired("minutes")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	snap, err := persist.InJSON(scheduleIn).Load()
	if err != nil {
		return err
	}

	blocks, err := plan.Generate(snap.Tasks, plan.Request{
		MinutesAvailable: scheduleMinutes,
		Policy:           schedulePolicy.WithDefaults(cfg.Pomodoro),
	})
	if err != nil {
		return err
	}
	now := time.Now()
	p := plan.Plan{Blocks: blocks, GeneratedAt: &now}

	out := scheduleOut
	if out == "" {
		out = scheduleIn
	}
	snap.Plan = &p
	if err := persist.InJSON(out).Save(snap); err != nil {
		return err
	}

	md := renderPlan(p, snap.Tasks)
	if scheduleRaw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	rendered, err := r.Render(md)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
