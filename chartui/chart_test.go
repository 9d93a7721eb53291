package chartui_test

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxtheory/chart"
	"github.com/rapidmidiex/rmxtheory/chartui"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/stretchr/testify/require"
)

// run executes cmd and any batched commands it returns.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, run(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestChartView(t *testing.T) {
	t.Run("lists intervals along the circle of fifths", func(t *testing.T) {
		m, err := chartui.New(-1, 1, chart.JSON)
		require.NoError(t, err)

		row, ok := m.Selected()
		require.True(t, ok)
		require.Equal(t, "P4", row.Short)
		require.Contains(t, m.View(), "perfect 5th")

		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		row, ok = next.(chartui.Model).Selected()
		require.True(t, ok)
		require.Equal(t, "P1", row.Short)
	})

	t.Run("exports the chart", func(t *testing.T) {
		m, err := chartui.New(-3, 3, chart.YAML)
		require.NoError(t, err)
		path := filepath.Join(t.TempDir(), "intervals.yaml")
		m = m.WithExportPath(path)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		var exported *chartui.ExportedMsg
		for _, msg := range run(cmd) {
			if e, ok := msg.(chartui.ExportedMsg); ok {
				exported = &e
			}
		}
		require.NotNil(t, exported)
		require.Equal(t, path, exported.Path)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		got, err := chart.Read(f, chart.YAML)
		require.NoError(t, err)
		require.Len(t, got.Intervals, 7)

		next, _ := m.Update(*exported)
		require.Contains(t, next.View(), "Exported to")
	})

	t.Run("shows export errors", func(t *testing.T) {
		m, err := chartui.New(0, 0, chart.TOML)
		require.NoError(t, err)
		m = m.WithExportPath(filepath.Join(t.TempDir(), "missing", "intervals.toml"))

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		var failed tea.Model = m
		for _, msg := range run(cmd) {
			if e, ok := msg.(rmxerr.ErrMsg); ok {
				failed, _ = failed.Update(e)
			}
		}
		require.Contains(t, failed.View(), "Error")
	})

	t.Run("rejects an empty range", func(t *testing.T) {
		_, err := chartui.New(1, 0, chart.JSON)
		require.ErrorIs(t, err, rmxerr.Precondition)
	})
}
