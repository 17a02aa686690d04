package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/td0m/pomoplan/internal/config"
)

var configInitProject bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GlobalPath()
		if configInitProject {
			path = config.ProjectPath()
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		bs, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(bs)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitProject, "project", false, "write ./pomoplan.yaml instead of the global file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
