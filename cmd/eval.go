package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/rapidmidiex/rmxtheory/expr"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr...>",
	Short: "Evaluate an interval or pitch expression",
	Example: `  rmxtheory eval M3 + m3
  rmxtheory eval C4 + P5
  rmxtheory eval inv M6
  rmxtheory eval -- -M10 + P8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("json", false, "print the result as JSON")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ev := cfg.Evaluator()
	src := strings.Join(args, " ")

	v, err := ev.Eval(src)
	if err != nil {
		return err
	}
	res := wsmsg.NewResult(src, v)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), describe(ev, v, cfg.Verbose))
	return nil
}

// describe renders a value, with its long name and span when verbose.
func describe(ev expr.Evaluator, v expr.Value, verbose bool) string {
	out := ev.Render(v)
	if !verbose {
		return out
	}
	if v.Kind == expr.PitchKind {
		return fmt.Sprintf("%s\tMIDI %d", out, v.HalfSteps())
	}
	return fmt.Sprintf("%s\t%s\t%d half steps", out, v.Interval.Name(), v.HalfSteps())
}
