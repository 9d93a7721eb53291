package interval

import (
	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

// Interval is a simple interval plus a whole number of octaves, covering any
// ascending interval. The zero value is a perfect unison.
type Interval struct {
	base    SimpleInterval
	octaves int
}

// Octave is a perfect octave.
var Octave = Interval{base: P1, octaves: 1}

// NewInterval extends base by octaves, which must not be negative.
func NewInterval(base SimpleInterval, octaves int) (Interval, error) {
	if octaves < 0 {
		return Interval{}, rmxerr.New(rmxerr.Precondition, "NewInterval", "octave count must not be negative, got %d", octaves)
	}
	return Interval{base: base, octaves: octaves}, nil
}

// MustInterval is NewInterval for values known to be valid.
func MustInterval(base SimpleInterval, octaves int) Interval {
	i, err := NewInterval(base, octaves)
	if err != nil {
		panic(err)
	}
	return i
}

// Simple returns the interval without additional octaves.
func Simple(base SimpleInterval) Interval {
	return Interval{base: base}
}

// IntervalWithNumber builds an interval from a quality and a compound number
// (1 = unison, 8 = octave, 10 = tenth).
func IntervalWithNumber(q Quality, number int) (Interval, error) {
	if number < 1 {
		return Interval{}, rmxerr.New(rmxerr.InvalidNumber, "IntervalWithNumber", "%d is not a positive interval number", number)
	}
	base, err := NewSimpleInterval(q, SimpleNumber((number-1)%7+1))
	if err != nil {
		return Interval{}, err
	}
	return Interval{base: base, octaves: (number - 1) / 7}, nil
}

func (i Interval) Base() SimpleInterval { return i.base }
func (i Interval) Octaves() int         { return i.octaves }
func (i Interval) Quality() Quality     { return i.base.Quality() }
func (i Interval) IsSimple() bool       { return i.octaves == 0 }

// Number is the compound interval number: a major tenth is 10.
func (i Interval) Number() int {
	return i.base.Number().Value() + 7*i.octaves
}

func (i Interval) HalfSteps() int {
	return i.base.HalfSteps() + 12*i.octaves
}

// Add sums two intervals, carrying into the octave count when the bases
// overflow.
func (i Interval) Add(other Interval) Interval {
	base, overflow := i.base.Add(other.base)
	octaves := i.octaves + other.octaves
	if overflow {
		octaves++
	}
	return Interval{base: base, octaves: octaves}
}

// Sub subtracts other from i. It fails with rmxerr.Underflow when other is the
// larger interval, since the result would descend.
func (i Interval) Sub(other Interval) (Interval, error) {
	base, octaves := i.subRaw(other)
	if octaves < 0 {
		return Interval{}, rmxerr.New(rmxerr.Underflow, "Interval.Sub", "%s is larger than %s", other, i)
	}
	return Interval{base: base, octaves: octaves}, nil
}

// subRaw is Sub without the range check; octaves may come back negative.
func (i Interval) subRaw(other Interval) (SimpleInterval, int) {
	base, underflow := i.base.Sub(other.base)
	octaves := i.octaves - other.octaves
	if underflow {
		octaves--
	}
	return base, octaves
}

// Inversion inverts the base and keeps the octave count.
func (i Interval) Inversion() Interval {
	return Interval{base: i.base.Inversion(), octaves: i.octaves}
}

// Shift alters the quality by degree half steps.
func (i Interval) Shift(degree int) Interval {
	return Interval{base: i.base.Shift(degree), octaves: i.octaves}
}
