package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rapidmidiex/rmxtheory/chart"
	"github.com/rapidmidiex/rmxtheory/config"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export simple intervals along the circle of fifths",
	Example: `  rmxtheory chart
  rmxtheory chart --from -7 --to 7 --format yaml
  rmxtheory chart --format toml -o intervals.toml`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().Int("from", chart.DefaultFrom, "first circle-of-fifths index")
	chartCmd.Flags().Int("to", chart.DefaultTo, "last circle-of-fifths index")
	chartCmd.Flags().String("format", chart.JSON.String(), "output format: json, yaml or toml")
	chartCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	_ = viper.BindPFlag("chart.from", chartCmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("chart.to", chartCmd.Flags().Lookup("to"))
	_ = viper.BindPFlag("chart.format", chartCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	format, err := cfg.ChartFormat()
	if err != nil {
		return err
	}
	c, err := chart.Build(cfg.Chart.From, cfg.Chart.To)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return chart.Write(w, c, format)
}
