package main

import (
	"fmt"
	"strings"

	"github.com/td0m/pomoplan/pkg/plan"
	"github.com/td0m/pomoplan/pkg/task"
)

// renderPlan writes the plan as a markdown table with start offsets.
func renderPlan(p plan.Plan, tasks []task.Task) string {
	byID := make(map[task.ID]task.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var b strings.Builder
	b.WriteString("# Plan\n\n")
	if len(p.Blocks) == 0 {
		b.WriteString("Nothing scheduled.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%d min of work, %d min of breaks.\n\n", p.WorkMinutes(), p.BreakMinutes())
	b.WriteString("| # | Start | Block | Minutes | Priority |\n")
	b.WriteString("|---|-------|-------|---------|----------|\n")

	offset := 0
	for i, blk := range p.Blocks {
		name, priority := "Break", ""
		if blk.Type == plan.Work {
			name = blk.Title
			if t, ok := byID[blk.TaskID]; ok {
				priority = string(t.Priority)
			}
		}
		fmt.Fprintf(&b, "| %d | +%d:%02d | %s | %d | %s |\n",
			i+1, offset/3600, offset/60%60, escape(name), blk.Seconds/60, priority)
		offset += blk.Seconds
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
