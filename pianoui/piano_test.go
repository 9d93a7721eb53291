package pianoui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxtheory/calcui"
	"github.com/rapidmidiex/rmxtheory/pianoui"
	"github.com/rapidmidiex/rmxtheory/vpiano"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m tea.Model, msgs ...tea.Msg) pianoui.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(pianoui.Model)
}

func result(kind, value string) calcui.EvaluatedMsg {
	return calcui.EvaluatedMsg{Result: wsmsg.ResultMsg{Expr: "x", Kind: kind, Value: value}}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPiano(t *testing.T) {
	t.Run("highlights pitch results, moving to their octave", func(t *testing.T) {
		m := update(t, pianoui.New(vpiano.C4, false), result("pitch", "G5"))
		require.Equal(t, vpiano.C5, m.Octave())
		require.Equal(t, []int{79}, m.Pressed())
		require.Equal(t, "x = G5", m.Caption())

		m = update(t, m, result("pitch", "C5"))
		require.Equal(t, vpiano.C5, m.Octave())
		require.Equal(t, []int{72}, m.Pressed())
	})

	t.Run("plays interval results from the lowest C", func(t *testing.T) {
		m := update(t, pianoui.New(vpiano.C4, false), result("interval", "M3"))
		require.Equal(t, []int{60, 64}, m.Pressed())
		require.Equal(t, "C4 + M3 = E4 (major 3rd)", m.Caption())
	})

	t.Run("transposes played keys by the latest interval", func(t *testing.T) {
		m := update(t, pianoui.New(vpiano.C4, true),
			result("interval", "M3"),
			pianoui.ToggleFocusMsg{},
			keyPress("w"),
		)
		require.Equal(t, []int{61, 65}, m.Pressed())
		require.Contains(t, m.Caption(), "C♯4 + M3 = E♯4")

		m = update(t, m, result("interval", "-P5"), keyPress("a"))
		require.Equal(t, []int{53, 60}, m.Pressed())
		require.Contains(t, m.Caption(), "C4 - P5 = F3")
		require.Contains(t, m.View(), "(a)")
	})

	t.Run("ignores keys without focus", func(t *testing.T) {
		m := update(t, pianoui.New(vpiano.C4, false), keyPress("a"))
		require.Empty(t, m.Pressed())
	})

	t.Run("shifts octaves within the MIDI range", func(t *testing.T) {
		m := update(t, pianoui.New(vpiano.C4, false), pianoui.ToggleFocusMsg{}, keyPress("x"))
		require.Equal(t, vpiano.C5, m.Octave())
		for i := 0; i < 10; i++ {
			m = update(t, m, keyPress("z"))
		}
		require.Equal(t, vpiano.Cneg1, m.Octave())

		m = update(t, m, keyPress("a"))
		require.Equal(t, []int{0}, m.Pressed())
	})
}
