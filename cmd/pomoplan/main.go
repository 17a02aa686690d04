package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/td0m/pomoplan/internal/config"
	"github.com/td0m/pomoplan/internal/logging"
	"go.uber.org/zap"
)

var Version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pomoplan",
	Short: "Turn a weekly brief into a pomodoro plan",
	Long: `pomoplan parses a free-text weekly brief into tasks, prioritizes them and
lays them out as pomodoro work and break blocks.

Run "pomoplan serve" for the HTTP API and "pomoplan tui" to use it from the
terminal, or "pomoplan parse" and "pomoplan schedule" to work offline.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger, err = logging.New(cfg.Log, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/pomoplan/config.yaml and ./pomoplan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
