package interval_test

import (
	"testing"

	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	t.Run("adds octaves", func(t *testing.T) {
		got := interval.Octave.Add(interval.Octave)
		require.Equal(t, interval.MustInterval(interval.P1, 2), got)
		require.Equal(t, 24, got.HalfSteps())
		require.Equal(t, 15, got.Number())
	})

	t.Run("carries base overflow into the octave count", func(t *testing.T) {
		fifth := interval.Simple(interval.P5)
		got := fifth.Add(fifth)
		require.Equal(t, interval.MustInterval(interval.Maj2, 1), got)
		require.Equal(t, "M9", got.String())

		tenth := interval.MustInterval(interval.Maj3, 1)
		got = tenth.Add(interval.MustInterval(interval.Min6, 1))
		require.Equal(t, interval.MustInterval(interval.P1, 3), got)
	})

	t.Run("subtracts with borrow", func(t *testing.T) {
		ninth := interval.MustInterval(interval.Maj2, 1)
		got, err := ninth.Sub(interval.Simple(interval.P5))
		require.NoError(t, err)
		require.Equal(t, interval.Simple(interval.P5), got)

		got, err = interval.Octave.Sub(interval.Simple(interval.Maj3))
		require.NoError(t, err)
		require.Equal(t, interval.Simple(interval.Min6), got)
	})

	t.Run("fails to subtract a larger interval", func(t *testing.T) {
		_, err := interval.Simple(interval.P1).Sub(interval.Simple(interval.Maj2))
		require.ErrorIs(t, err, rmxerr.Underflow)

		_, err = interval.Simple(interval.P5).Sub(interval.Octave)
		require.ErrorIs(t, err, rmxerr.Underflow)
	})

	t.Run("half steps are additive", func(t *testing.T) {
		for _, a := range allSimple() {
			for oct := 0; oct < 3; oct++ {
				ia := interval.MustInterval(a, oct)
				ib := interval.MustInterval(interval.Min3, 1)
				require.Equal(t, ia.HalfSteps()+ib.HalfSteps(), ia.Add(ib).HalfSteps(), ia.String())
			}
		}
	})

	t.Run("rejects negative octave counts", func(t *testing.T) {
		_, err := interval.NewInterval(interval.P5, -1)
		require.ErrorIs(t, err, rmxerr.Precondition)
	})

	t.Run("builds intervals from compound numbers", func(t *testing.T) {
		got, err := interval.IntervalWithNumber(interval.Major(), 10)
		require.NoError(t, err)
		require.Equal(t, interval.MustInterval(interval.Maj3, 1), got)
		require.Equal(t, "major 10th", got.Name())

		got, err = interval.IntervalWithNumber(interval.Perfect(), 8)
		require.NoError(t, err)
		require.Equal(t, interval.Octave, got)

		_, err = interval.IntervalWithNumber(interval.Perfect(), 0)
		require.ErrorIs(t, err, rmxerr.InvalidNumber)
		_, err = interval.IntervalWithNumber(interval.Minor(), 12)
		require.ErrorIs(t, err, rmxerr.PerfectabilityMismatch)
	})

	t.Run("inverts the base only", func(t *testing.T) {
		got := interval.MustInterval(interval.Maj3, 2).Inversion()
		require.Equal(t, interval.MustInterval(interval.Min6, 2), got)
	})
}
