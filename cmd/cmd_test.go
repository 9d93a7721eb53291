package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/rapidmidiex/rmxtheory/chart"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
)

// resetFlags restores every flag to its default so runs don't leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"eval", "chart", "steps", "tui"} {
		require.True(t, names[want], "expected %q subcommand", want)
	}
}

func TestEval(t *testing.T) {
	t.Run("prints the result", func(t *testing.T) {
		out, err := execute(t, "eval", "M3", "+", "m3")
		require.NoError(t, err)
		require.Equal(t, "P5\n", out)
	})

	t.Run("accepts descending intervals after --", func(t *testing.T) {
		out, err := execute(t, "eval", "--", "-M10", "+", "P8")
		require.NoError(t, err)
		require.Equal(t, "-M3\n", out)
	})

	t.Run("describes the result when verbose", func(t *testing.T) {
		out, err := execute(t, "eval", "-v", "C4", "+", "P5")
		require.NoError(t, err)
		require.Equal(t, "G4\tMIDI 67\n", out)
	})

	t.Run("renders unicode accidentals", func(t *testing.T) {
		out, err := execute(t, "eval", "--unicode", "C4", "-", "M3")
		require.NoError(t, err)
		require.Equal(t, "A♭3\n", out)
	})

	t.Run("prints JSON results", func(t *testing.T) {
		out, err := execute(t, "eval", "--json", "E4", "-", "C4")
		require.NoError(t, err)
		var res wsmsg.ResultMsg
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		require.Equal(t, wsmsg.ResultMsg{Expr: "E4 - C4", Kind: "interval", Value: "M3", HalfSteps: 4}, res)
	})

	t.Run("fails on bad expressions", func(t *testing.T) {
		_, err := execute(t, "eval", "C4", "+", "D4")
		require.Error(t, err)
	})
}

func TestSteps(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"steps", "7"}, "P5\n"},
		{[]string{"steps", "6"}, "A4\n"},
		{[]string{"steps", "6", "--tritone", "dim"}, "d5\n"},
		{[]string{"steps", "--", "-14"}, "-M9\n"},
		{[]string{"steps", "-v", "18", "--tritone", "dim"}, "d12\tdiminished 12th\t(tritone spelled dim)\n"},
	}
	for _, c := range cases {
		out, err := execute(t, c.args...)
		require.NoError(t, err, c.args)
		require.Equal(t, c.want, out, c.args)
	}

	_, err := execute(t, "steps", "six")
	require.Error(t, err)
	_, err = execute(t, "steps", "6", "--tritone", "sharp")
	require.Error(t, err)
}

func TestChart(t *testing.T) {
	t.Run("writes JSON to stdout", func(t *testing.T) {
		out, err := execute(t, "chart", "--from", "0", "--to", "1")
		require.NoError(t, err)
		var c chart.Chart
		require.NoError(t, json.Unmarshal([]byte(out), &c))
		require.Len(t, c.Intervals, 2)
		require.Equal(t, "P5", c.Intervals[1].Short)
	})

	t.Run("writes other formats to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "intervals.toml")
		_, err := execute(t, "chart", "--from", "-7", "--to", "7", "--format", "toml", "-o", path)
		require.NoError(t, err)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		c, err := chart.Read(f, chart.TOML)
		require.NoError(t, err)
		require.Len(t, c.Intervals, 15)
		require.Equal(t, "d1", c.Intervals[0].Short)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		_, err := execute(t, "chart", "--format", "csv")
		require.Error(t, err)
	})
}
