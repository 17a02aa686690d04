package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/td0m/pomoplan/internal/tui"
	"github.com/td0m/pomoplan/pkg/client"
)

var tuiMinutes int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Terminal client for a running server",
	Long: `Browse and edit tasks and plans on the server at client.url.

Keys: j/k move, tab switches tabs, o adds a task, t toggles done, d edits the
due date, x deletes, g generates a plan, i imports a brief file, r reloads,
q quits. On the plan tab, +/- lengthen or shorten a block by 5 minutes and
x removes it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes := tuiMinutes
		if minutes <= 0 {
			minutes = cfg.Client.Minutes
		}
		m := tui.New(client.New(cfg.Client.URL), tui.Options{
			Minutes: minutes,
			Policy:  cfg.Pomodoro,
		})
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	tuiCmd.Flags().IntVarP(&tuiMinutes, "minutes", "m", 0, "budget for generated plans (default client.minutes)")
}
