package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/rapidmidiex/rmxtheory/interval"
)

var stepsCmd = &cobra.Command{
	Use:   "steps <n>",
	Short: "Name the simplest interval spanning n half steps",
	Example: `  rmxtheory steps 7
  rmxtheory steps 6 --tritone dim
  rmxtheory steps -- -14`,
	Args: cobra.ExactArgs(1),
	RunE: runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid half-step count %q", args[0])
	}
	tritone, err := cfg.TritoneChoice()
	if err != nil {
		return err
	}

	sign := 1
	if n < 0 {
		sign, n = -1, -n
	}
	base, ok, err := interval.UnambiguousWithHalfSteps(n % 12)
	if err != nil {
		return err
	}
	if !ok {
		if base, err = interval.SimplestWithHalfSteps(n%12, tritone); err != nil {
			return err
		}
	}
	i, err := interval.NewInterval(base, n/12)
	if err != nil {
		return err
	}
	s, err := interval.NewSignedInterval(i, sign)
	if err != nil {
		return err
	}

	out := s.String()
	if cfg.Verbose {
		out = fmt.Sprintf("%s\t%s", out, s.Name())
		if !ok {
			out += "\t(tritone spelled " + tritone.String() + ")"
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
