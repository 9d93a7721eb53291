package interval

import (
	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

// SimpleInterval is an interval spanning less than one octave: a quality
// paired with a number of the same perfectability. The zero value is a
// perfect unison.
type SimpleInterval struct {
	quality Quality
	// number - 1, so that the zero value is a unison
	step int
}

// NewSimpleInterval pairs a quality with a number. The two must belong to the
// same perfectability family.
func NewSimpleInterval(q Quality, n SimpleNumber) (SimpleInterval, error) {
	if !n.valid() {
		return SimpleInterval{}, rmxerr.New(rmxerr.InvalidNumber, "NewSimpleInterval", "%d is not in 1..7", int(n))
	}
	if q.Perfectability() != n.Perfectability() {
		return SimpleInterval{}, rmxerr.New(rmxerr.PerfectabilityMismatch, "NewSimpleInterval",
			"%s quality cannot qualify %s %s", q.Perfectability(), n.Perfectability(), n)
	}
	return SimpleInterval{quality: q, step: int(n) - 1}, nil
}

// MustSimpleInterval is NewSimpleInterval for values known to be valid.
func MustSimpleInterval(q Quality, n SimpleNumber) SimpleInterval {
	si, err := NewSimpleInterval(q, n)
	if err != nil {
		panic(err)
	}
	return si
}

// SimpleIntervalFromCircleOfFifthsIndex returns the simple interval i perfect
// fifths above the unison, folded into one octave. Every integer is valid.
func SimpleIntervalFromCircleOfFifthsIndex(i int) SimpleInterval {
	// The fourth sits at -1, so shift by one before folding into the seven slots.
	slot := floorMod(i+1, 7)
	shift := floorDiv(i+1, 7)
	n := numbersByFifths[slot]
	return SimpleInterval{
		quality: Quality{family: n.Perfectability(), offset: shift},
		step:    int(n) - 1,
	}
}

func (si SimpleInterval) Quality() Quality     { return si.quality }
func (si SimpleInterval) Number() SimpleNumber { return SimpleNumber(si.step + 1) }

func (si SimpleInterval) Perfectability() Perfectability { return si.Number().Perfectability() }

// CircleOfFifthsIndex is the number's index plus seven fifths for every half
// step the quality sits away from perfect or major.
func (si SimpleInterval) CircleOfFifthsIndex() int {
	return si.Number().CircleOfFifthsIndex() + 7*si.quality.offset
}

// HalfSteps is the span of the interval; it may be negative for diminished
// unisons.
func (si SimpleInterval) HalfSteps() int {
	return si.Number().PerfectOrMajorHalfSteps() + si.quality.offset
}

// Inversion inverts both quality and number: M3 becomes m6, P5 becomes P4.
func (si SimpleInterval) Inversion() SimpleInterval {
	return SimpleInterval{quality: si.quality.Inversion(), step: int(si.Number().Inversion()) - 1}
}

// Shift alters the quality by degree half steps, keeping the number.
func (si SimpleInterval) Shift(degree int) SimpleInterval {
	return SimpleInterval{quality: si.quality.Shift(degree), step: si.step}
}

// Add combines two simple intervals. The result is folded into one octave;
// overflow reports that the true sum spans an octave or more.
func (si SimpleInterval) Add(other SimpleInterval) (sum SimpleInterval, overflow bool) {
	sum = SimpleIntervalFromCircleOfFifthsIndex(si.CircleOfFifthsIndex() + other.CircleOfFifthsIndex())
	overflow = si.Number().Value()+other.Number().Value()-1 >= 8
	return sum, overflow
}

// Sub subtracts other by adding its inversion. The result is folded into one
// octave; underflow reports that the true difference falls below a unison.
func (si SimpleInterval) Sub(other SimpleInterval) (diff SimpleInterval, underflow bool) {
	diff = SimpleIntervalFromCircleOfFifthsIndex(si.CircleOfFifthsIndex() - other.CircleOfFifthsIndex())
	underflow = si.Number().Value()-other.Number().Value()+1 <= 0
	return diff, underflow
}

// Common simple intervals.
var (
	P1   = MustSimpleInterval(Perfect(), Unison)
	Min2 = MustSimpleInterval(Minor(), Second)
	Maj2 = MustSimpleInterval(Major(), Second)
	Min3 = MustSimpleInterval(Minor(), Third)
	Maj3 = MustSimpleInterval(Major(), Third)
	P4   = MustSimpleInterval(Perfect(), Fourth)
	Aug4 = P4.Shift(1)
	P5   = MustSimpleInterval(Perfect(), Fifth)
	Dim5 = P5.Shift(-1)
	Min6 = MustSimpleInterval(Minor(), Sixth)
	Maj6 = MustSimpleInterval(Major(), Sixth)
	Min7 = MustSimpleInterval(Minor(), Seventh)
	Maj7 = MustSimpleInterval(Major(), Seventh)
)
