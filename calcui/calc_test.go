package calcui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxtheory/calcui"
	"github.com/rapidmidiex/rmxtheory/expr"
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

// evaluate types src, presses enter and feeds the replies back into the
// model. It returns the message meant for the parent model, if any.
func evaluate(t *testing.T, m tea.Model, src string) (calcui.Model, tea.Msg) {
	t.Helper()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(src)})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, cmd = m.Update(cmd())
	var out tea.Msg
	for _, msg := range run(cmd) {
		if e, ok := msg.(calcui.EvaluatedMsg); ok {
			out = e
			continue
		}
		m, _ = m.Update(msg)
	}
	return m.(calcui.Model), out
}

func TestCalculator(t *testing.T) {
	t.Run("evaluates the typed expression", func(t *testing.T) {
		m, out := evaluate(t, calcui.New(expr.Evaluator{}), "M3 + m3")
		require.NoError(t, m.Err())
		require.Len(t, m.History(), 1)
		require.Contains(t, m.History()[0], "P5")
		require.Contains(t, m.History()[0], "perfect 5th, 7 half steps")

		res, ok := out.(calcui.EvaluatedMsg)
		require.True(t, ok)
		require.Equal(t, "interval", res.Result.Kind)
		require.Equal(t, "P5", res.Result.Value)
	})

	t.Run("renders unicode pitches when asked", func(t *testing.T) {
		m, out := evaluate(t, calcui.New(expr.Evaluator{Unicode: true}), "C4 + +A4")
		require.Contains(t, m.History()[0], "F♯4")
		require.Equal(t, "F#4", out.(calcui.EvaluatedMsg).Result.Value)
		require.Contains(t, m.View(), "MIDI 66")
	})

	t.Run("keeps errors out of the result stream", func(t *testing.T) {
		m, out := evaluate(t, calcui.New(expr.Evaluator{}), "C4 + D4")
		require.Nil(t, out)
		require.Error(t, m.Err())
		require.Contains(t, m.View(), "Error")
	})

	t.Run("ignores empty input", func(t *testing.T) {
		m, cmd := calcui.New(expr.Evaluator{}).Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.Nil(t, cmd)
		require.Empty(t, m.(calcui.Model).History())
	})

	t.Run("tracks the range of pitch results", func(t *testing.T) {
		m, _ := evaluate(t, calcui.New(expr.Evaluator{}), "C4 + M3")
		require.Contains(t, m.View(), "range E4 to E4, perfect 1st")
		m, _ = evaluate(t, m, "E4 + P12")
		m, _ = evaluate(t, m, "M2 + Bb3")
		require.Contains(t, m.View(), "range C4 to B5, major 14th")
		m, _ = evaluate(t, m, "M3 + m3")
		require.Contains(t, m.View(), "range C4 to B5")
	})

	t.Run("clears the history", func(t *testing.T) {
		m, _ := evaluate(t, calcui.New(expr.Evaluator{}), "steps 7")
		require.Len(t, m.History(), 1)
		cleared, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
		require.Empty(t, cleared.(calcui.Model).History())
	})
}
