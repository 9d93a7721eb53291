package expr_test

import (
	"testing"

	"github.com/rapidmidiex/rmxtheory/expr"
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	t.Run("evaluates expressions", func(t *testing.T) {
		cases := []struct {
			src  string
			kind expr.Kind
			want string
		}{
			{"M3 + m3", expr.IntervalKind, "P5"},
			{"P1 - M2", expr.IntervalKind, "-M2"},
			{"P5 + P5 + P5", expr.IntervalKind, "M13"},
			{"-M3", expr.IntervalKind, "-M3"},
			{"C4 + P5", expr.PitchKind, "G4"},
			{"C4 - M3", expr.PitchKind, "Ab3"},
			{"M3 + Eb4", expr.PitchKind, "G4"},
			{"E4 - C4", expr.IntervalKind, "M3"},
			{"C4 - E5", expr.IntervalKind, "-M10"},
			{"A4 + +A4", expr.PitchKind, "D#5"},
			{"inv M3", expr.IntervalKind, "m6"},
			{"inv -M10", expr.IntervalKind, "-m13"},
			{"steps 6", expr.IntervalKind, "A4"},
			{"steps 6 dim", expr.IntervalKind, "d5"},
			{"steps 19", expr.IntervalKind, "P12"},
			{"steps -3", expr.IntervalKind, "-m3"},
			{"C4 + steps 4 - d5", expr.PitchKind, "A#3"},
		}
		for _, c := range cases {
			got, err := expr.Eval(c.src)
			require.NoError(t, err, c.src)
			require.Equal(t, c.kind, got.Kind, c.src)
			require.Equal(t, c.want, got.String(), c.src)
		}
	})

	t.Run("uses the evaluator's tritone spelling", func(t *testing.T) {
		e := expr.Evaluator{Tritone: interval.DiminishedFifth}
		got, err := e.Eval("steps 6")
		require.NoError(t, err)
		require.Equal(t, "d5", got.String())

		got, err = e.Eval("steps 6 aug")
		require.NoError(t, err)
		require.Equal(t, "A4", got.String())
	})

	t.Run("reports half steps", func(t *testing.T) {
		got, err := expr.Eval("-P12")
		require.NoError(t, err)
		require.Equal(t, -19, got.HalfSteps())

		got, err = expr.Eval("C4 + M2")
		require.NoError(t, err)
		require.Equal(t, 62, got.HalfSteps())
	})

	t.Run("renders unicode accidentals", func(t *testing.T) {
		e := expr.Evaluator{Unicode: true}
		got, err := e.Eval("C4 - m2")
		require.NoError(t, err)
		require.Equal(t, "B3", e.Render(got))

		got, err = e.Eval("F4 + A1")
		require.NoError(t, err)
		require.Equal(t, "F♯4", e.Render(got))
	})

	t.Run("rejects bad expressions", func(t *testing.T) {
		for _, src := range []string{"", "M3 +", "M3 * m3", "C4 + D4", "M3 - C4", "inv C4", "steps", "steps x", "Q7", "M3 m3"} {
			_, err := expr.Eval(src)
			require.Error(t, err, src)
			require.ErrorIs(t, err, rmxerr.Syntax, src)
		}
	})

	t.Run("surfaces domain errors", func(t *testing.T) {
		_, err := expr.Eval("P3 + M3")
		require.ErrorIs(t, err, rmxerr.PerfectabilityMismatch)
	})
}
