package interval

import (
	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

// SignedInterval is an interval with a direction. A bare unison is always
// stored ascending: a descending unison is the ascending unison of inverted
// quality, so a descending diminished unison is an ascending augmented one.
type SignedInterval struct {
	magnitude  Interval
	descending bool
}

// Positive returns the ascending version of i.
func Positive(i Interval) SignedInterval {
	return SignedInterval{magnitude: i}
}

// Negative returns the descending version of i.
func Negative(i Interval) SignedInterval {
	return canonical(i, true)
}

// NewSignedInterval attaches sign (+1 or -1) to i.
func NewSignedInterval(i Interval, sign int) (SignedInterval, error) {
	switch sign {
	case 1:
		return Positive(i), nil
	case -1:
		return Negative(i), nil
	}
	return SignedInterval{}, rmxerr.New(rmxerr.Precondition, "NewSignedInterval", "sign must be +1 or -1, got %d", sign)
}

func canonical(i Interval, descending bool) SignedInterval {
	if descending && i.octaves == 0 && i.base.Number() == Unison {
		return SignedInterval{magnitude: i.Inversion()}
	}
	return SignedInterval{magnitude: i, descending: descending}
}

func withSign(i Interval, sign int) SignedInterval {
	return canonical(i, sign < 0)
}

func (s SignedInterval) Magnitude() Interval { return s.magnitude }

// Sign is +1 for ascending intervals and -1 for descending ones.
func (s SignedInterval) Sign() int {
	if s.descending {
		return -1
	}
	return 1
}

func (s SignedInterval) IsDescending() bool { return s.descending }

func (s SignedInterval) HalfSteps() int {
	return s.Sign() * s.magnitude.HalfSteps()
}

// Neg flips the direction.
func (s SignedInterval) Neg() SignedInterval {
	return canonical(s.magnitude, !s.descending)
}

func (s SignedInterval) Add(other SignedInterval) SignedInterval {
	if s.descending == other.descending {
		return withSign(s.magnitude.Add(other.magnitude), s.Sign())
	}
	return subRelative(s.magnitude, other.magnitude, s.Sign())
}

func (s SignedInterval) Sub(other SignedInterval) SignedInterval {
	if s.descending == other.descending {
		return subRelative(s.magnitude, other.magnitude, s.Sign())
	}
	return withSign(s.magnitude.Add(other.magnitude), s.Sign())
}

// subRelative computes sign*(a - b). When b is the larger interval the
// difference is re-expressed as a magnitude in the opposite direction.
func subRelative(a, b Interval, sign int) SignedInterval {
	base, octaves := a.subRaw(b)
	if octaves >= 0 {
		return withSign(Interval{base: base, octaves: octaves}, sign)
	}
	// base + octaves*8ve is negative; negate it. For unison-numbered bases the
	// inversion already is the negation, otherwise it borrows one more octave.
	flipped := Interval{base: base.Inversion(), octaves: -octaves}
	if base.Number() != Unison {
		flipped.octaves--
	}
	return withSign(flipped, -sign)
}
