package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/td0m/pomoplan/pkg/persist"
)

var (
	parseOut     string
	parseOffline bool
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a weekly brief into tasks",
	Long: `Parse a free-text weekly brief, one task per line, and save the tasks.

The brief is sent to Ollama first; if that fails, or with --offline, the
heuristic parser reads durations (~45min, ~2h), priorities (high, low),
#tags and due dates (due fri, wed) from each line. Use - to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "tasks.json", "file to save the tasks to")
	parseCmd.Flags().BoolVar(&parseOffline, "offline", false, "skip the AI parser")
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		text []byte
		err  error
	)
	if args[0] == "-" {
		text, err = io.ReadAll(cmd.InOrStdin())
	} else {
		text, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	res, err := newPipeline(cfg, logger, parseOffline).Parse(cmd.Context(), string(text))
	if err != nil {
		return err
	}
	if err := persist.InJSON(parseOut).Save(persist.Snapshot{Tasks: res.Tasks}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", res.Warning)
	}
	fmt.Fprintf(out, "%d tasks parsed by %s, saved to %s\n", len(res.Tasks), res.Source, parseOut)
	return nil
}
