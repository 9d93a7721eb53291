package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rapidmidiex/rmxtheory"
	"github.com/rapidmidiex/rmxtheory/config"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive interval calculator",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().Int("octave", 4, "octave of the piano's lowest C")
	tuiCmd.Flags().String("log-file", "", "write logs to this file")

	_ = viper.BindPFlag("piano.octave", tuiCmd.Flags().Lookup("octave"))
	_ = viper.BindPFlag("log_file", tuiCmd.Flags().Lookup("log-file"))

	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return rmxtheory.Run(cfg)
}
