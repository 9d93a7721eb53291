package interval

import (
	"fmt"

	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

// SimpleNumber is a scale-step count from unison (1) to seventh (7).
type SimpleNumber int

const (
	Unison SimpleNumber = iota + 1
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
)

// Ordered by circle-of-fifths index, starting at the fourth (-1).
var numbersByFifths = [7]SimpleNumber{Fourth, Unison, Fifth, Second, Sixth, Third, Seventh}

// NewSimpleNumber converts a plain integer to a SimpleNumber, rejecting values
// outside 1..7.
func NewSimpleNumber(v int) (SimpleNumber, error) {
	if v < int(Unison) || v > int(Seventh) {
		return 0, rmxerr.New(rmxerr.InvalidNumber, "NewSimpleNumber", "%d is not in 1..7", v)
	}
	return SimpleNumber(v), nil
}

// SimpleNumberFromCircleOfFifthsIndex returns the number whose perfect or
// major version sits at index i (-1..5) on the circle of fifths.
func SimpleNumberFromCircleOfFifthsIndex(i int) (SimpleNumber, error) {
	if i < -1 || i > 5 {
		return 0, rmxerr.New(rmxerr.InvalidNumber, "SimpleNumberFromCircleOfFifthsIndex", "index %d is not in -1..5", i)
	}
	return numbersByFifths[i+1], nil
}

func (n SimpleNumber) valid() bool {
	return n >= Unison && n <= Seventh
}

// Value returns the plain integer 1..7.
func (n SimpleNumber) Value() int { return int(n) }

func (n SimpleNumber) Perfectability() Perfectability {
	switch n {
	case Unison, Fourth, Fifth:
		return Perfectable
	}
	return Imperfectable
}

func (n SimpleNumber) IsPerfectable() bool   { return n.Perfectability() == Perfectable }
func (n SimpleNumber) IsImperfectable() bool { return n.Perfectability() == Imperfectable }

// CircleOfFifthsIndex places the perfect or major version of the number on
// the circle of fifths relative to the unison.
func (n SimpleNumber) CircleOfFifthsIndex() int {
	switch n {
	case Fourth:
		return -1
	case Unison:
		return 0
	case Fifth:
		return 1
	case Second:
		return 2
	case Sixth:
		return 3
	case Third:
		return 4
	case Seventh:
		return 5
	}
	panic(fmt.Sprintf("interval: invalid SimpleNumber %d", int(n)))
}

// PerfectOrMajorHalfSteps is the span of the perfect (or major) version of the number.
func (n SimpleNumber) PerfectOrMajorHalfSteps() int {
	switch n {
	case Unison:
		return 0
	case Second:
		return 2
	case Third:
		return 4
	case Fourth:
		return 5
	case Fifth:
		return 7
	case Sixth:
		return 9
	case Seventh:
		return 11
	}
	panic(fmt.Sprintf("interval: invalid SimpleNumber %d", int(n)))
}

// Inversion maps a number to its complement within the octave. The unison
// inverts to itself.
func (n SimpleNumber) Inversion() SimpleNumber {
	if n == Unison {
		return Unison
	}
	return 9 - n
}

func (n SimpleNumber) String() string {
	return Ordinal(int(n))
}

// Ordinal renders an interval number as "1st", "2nd", "11th".
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
