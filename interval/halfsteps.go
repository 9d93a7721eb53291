package interval

import (
	"fmt"

	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

// Tritone chooses how six half steps are spelled.
type Tritone int

const (
	AugmentedFourth Tritone = iota
	DiminishedFifth
)

func (t Tritone) String() string {
	switch t {
	case AugmentedFourth:
		return "aug"
	case DiminishedFifth:
		return "dim"
	}
	return fmt.Sprintf("Tritone(%d)", int(t))
}

// ParseTritone accepts "aug"/"A4" and "dim"/"d5".
func ParseTritone(s string) (Tritone, error) {
	switch s {
	case "aug", "augmented", "A4":
		return AugmentedFourth, nil
	case "dim", "diminished", "d5":
		return DiminishedFifth, nil
	}
	return 0, rmxerr.New(rmxerr.Syntax, "ParseTritone", "unknown tritone spelling %q", s)
}

// Simplest spelling for each half-step count; the tritone slot is filled by
// the caller's choice.
var simplestByHalfSteps = [12]SimpleInterval{
	0:  P1,
	1:  Min2,
	2:  Maj2,
	3:  Min3,
	4:  Maj3,
	5:  P4,
	7:  P5,
	8:  Min6,
	9:  Maj6,
	10: Min7,
	11: Maj7,
}

func checkHalfSteps(op string, halfSteps int) error {
	if halfSteps < 0 || halfSteps > 11 {
		return rmxerr.New(rmxerr.Precondition, op, "%d half steps is not in 0..11", halfSteps)
	}
	return nil
}

// SimplestWithHalfSteps returns the interval closest to perfect or major that
// spans halfSteps (0..11). Six half steps are spelled according to t.
func SimplestWithHalfSteps(halfSteps int, t Tritone) (SimpleInterval, error) {
	if err := checkHalfSteps("SimplestWithHalfSteps", halfSteps); err != nil {
		return SimpleInterval{}, err
	}
	if halfSteps == 6 {
		switch t {
		case AugmentedFourth:
			return Aug4, nil
		case DiminishedFifth:
			return Dim5, nil
		}
		return SimpleInterval{}, rmxerr.New(rmxerr.Precondition, "SimplestWithHalfSteps", "unknown tritone spelling %d", int(t))
	}
	return simplestByHalfSteps[halfSteps], nil
}

// UnambiguousWithHalfSteps is SimplestWithHalfSteps without a tritone choice.
// ok is false for six half steps, which have no unique simplest spelling.
func UnambiguousWithHalfSteps(halfSteps int) (si SimpleInterval, ok bool, err error) {
	if err := checkHalfSteps("UnambiguousWithHalfSteps", halfSteps); err != nil {
		return SimpleInterval{}, false, err
	}
	if halfSteps == 6 {
		return SimpleInterval{}, false, nil
	}
	return simplestByHalfSteps[halfSteps], true, nil
}

// QualityOfSimplestWithHalfSteps is the quality of SimplestWithHalfSteps.
func QualityOfSimplestWithHalfSteps(halfSteps int, t Tritone) (Quality, error) {
	si, err := SimplestWithHalfSteps(halfSteps, t)
	if err != nil {
		return Quality{}, err
	}
	return si.Quality(), nil
}
