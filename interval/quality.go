package interval

import (
	"fmt"
	"strings"

	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

type (
	// PerfectableQuality is an offset from perfect: 0 is perfect, n > 0 is
	// augmented by n, n < 0 is diminished by -n.
	PerfectableQuality int

	// ImperfectableQuality is an offset from major: 0 is major, -1 is minor,
	// n > 0 is augmented by n, n < -1 is diminished by -n-1.
	ImperfectableQuality int

	// Quality is an interval quality tagged with the family it applies to.
	// Exactly one of the two payload shapes is meaningful, selected by family;
	// use Perfectable or Imperfectable to get at it.
	Quality struct {
		family Perfectability
		offset int
	}
)

const (
	PerfectQuality PerfectableQuality   = 0
	MajorQuality   ImperfectableQuality = 0
	MinorQuality   ImperfectableQuality = -1
)

func (q PerfectableQuality) IsPerfect() bool { return q == 0 }

func (q PerfectableQuality) Augmented() (degree int, ok bool) {
	if q > 0 {
		return int(q), true
	}
	return 0, false
}

func (q PerfectableQuality) Diminished() (degree int, ok bool) {
	if q < 0 {
		return -int(q), true
	}
	return 0, false
}

func (q PerfectableQuality) Inversion() PerfectableQuality { return -q }

func (q PerfectableQuality) Quality() Quality {
	return Quality{family: Perfectable, offset: int(q)}
}

func (q ImperfectableQuality) IsMajor() bool { return q == MajorQuality }
func (q ImperfectableQuality) IsMinor() bool { return q == MinorQuality }

func (q ImperfectableQuality) Augmented() (degree int, ok bool) {
	if q > 0 {
		return int(q), true
	}
	return 0, false
}

func (q ImperfectableQuality) Diminished() (degree int, ok bool) {
	if q < MinorQuality {
		return -int(q) - 1, true
	}
	return 0, false
}

// Inversion swaps major with minor and augmented(n) with diminished(n).
func (q ImperfectableQuality) Inversion() ImperfectableQuality { return -q - 1 }

func (q ImperfectableQuality) Quality() Quality {
	return Quality{family: Imperfectable, offset: int(q)}
}

// Perfect returns the perfect quality.
func Perfect() Quality { return PerfectQuality.Quality() }

// Major returns the major quality.
func Major() Quality { return MajorQuality.Quality() }

// Minor returns the minor quality.
func Minor() Quality { return MinorQuality.Quality() }

// Augmented returns the quality augmented by degree within the given family.
func Augmented(family Perfectability, degree int) (Quality, error) {
	if degree <= 0 {
		return Quality{}, rmxerr.New(rmxerr.Precondition, "Augmented", "degree must be positive, got %d", degree)
	}
	if !family.valid() {
		return Quality{}, rmxerr.New(rmxerr.Precondition, "Augmented", "unknown perfectability %d", int(family))
	}
	return Quality{family: family, offset: degree}, nil
}

// Diminished returns the quality diminished by degree within the given family.
func Diminished(family Perfectability, degree int) (Quality, error) {
	if degree <= 0 {
		return Quality{}, rmxerr.New(rmxerr.Precondition, "Diminished", "degree must be positive, got %d", degree)
	}
	switch family {
	case Perfectable:
		return Quality{family: Perfectable, offset: -degree}, nil
	case Imperfectable:
		return Quality{family: Imperfectable, offset: -degree - 1}, nil
	}
	return Quality{}, rmxerr.New(rmxerr.Precondition, "Diminished", "unknown perfectability %d", int(family))
}

// NewQuality builds a quality from its family and raw offset.
func NewQuality(family Perfectability, offset int) (Quality, error) {
	if !family.valid() {
		return Quality{}, rmxerr.New(rmxerr.Precondition, "NewQuality", "unknown perfectability %d", int(family))
	}
	return Quality{family: family, offset: offset}, nil
}

// QualityFromCircleOfFifthsIndex is the inverse of Quality.CircleOfFifthsIndex.
func QualityFromCircleOfFifthsIndex(i int) Quality {
	if floorMod(i, 2) == 0 {
		return Quality{family: Perfectable, offset: i / 2}
	}
	return Quality{family: Imperfectable, offset: floorDiv(i-1, 2)}
}

func (q Quality) Perfectability() Perfectability { return q.family }

// Offset is the signed distance from perfect or major, in half steps.
func (q Quality) Offset() int { return q.offset }

func (q Quality) Perfectable() (PerfectableQuality, bool) {
	if q.family != Perfectable {
		return 0, false
	}
	return PerfectableQuality(q.offset), true
}

func (q Quality) Imperfectable() (ImperfectableQuality, bool) {
	if q.family != Imperfectable {
		return 0, false
	}
	return ImperfectableQuality(q.offset), true
}

func (q Quality) IsPerfect() bool { return q.family == Perfectable && q.offset == 0 }
func (q Quality) IsMajor() bool   { return q.family == Imperfectable && q.offset == 0 }
func (q Quality) IsMinor() bool   { return q.family == Imperfectable && q.offset == -1 }

func (q Quality) Augmented() (degree int, ok bool) {
	if p, isP := q.Perfectable(); isP {
		return p.Augmented()
	}
	return ImperfectableQuality(q.offset).Augmented()
}

func (q Quality) Diminished() (degree int, ok bool) {
	if p, isP := q.Perfectable(); isP {
		return p.Diminished()
	}
	return ImperfectableQuality(q.offset).Diminished()
}

// Shift moves the quality by degree half steps; positive toward augmented,
// negative toward diminished.
func (q Quality) Shift(degree int) Quality {
	return Quality{family: q.family, offset: q.offset + degree}
}

func (q Quality) Inversion() Quality {
	if p, ok := q.Perfectable(); ok {
		return p.Inversion().Quality()
	}
	return ImperfectableQuality(q.offset).Inversion().Quality()
}

// CircleOfFifthsIndex orders qualities of both families on one line: even
// values are perfectable offsets doubled, odd values imperfectable offsets
// doubled plus one. ... d(-2) m(-1) P(0) M(1) A(2) A(3) ...
func (q Quality) CircleOfFifthsIndex() int {
	if q.family == Perfectable {
		return 2 * q.offset
	}
	return 2*q.offset + 1
}

// Symbol renders the quality in the short form used by interval names: P, M,
// m, A, d, repeated for higher degrees (AA, ddd).
func (q Quality) Symbol() string {
	switch {
	case q.IsPerfect():
		return "P"
	case q.IsMajor():
		return "M"
	case q.IsMinor():
		return "m"
	}
	if d, ok := q.Augmented(); ok {
		return strings.Repeat("A", d)
	}
	d, _ := q.Diminished()
	return strings.Repeat("d", d)
}

var degreeWords = map[int]string{2: "doubly", 3: "triply"}

func (q Quality) String() string {
	switch {
	case q.IsPerfect():
		return "perfect"
	case q.IsMajor():
		return "major"
	case q.IsMinor():
		return "minor"
	}
	name := "augmented"
	d, ok := q.Augmented()
	if !ok {
		name = "diminished"
		d, _ = q.Diminished()
	}
	if d == 1 {
		return name
	}
	if w, ok := degreeWords[d]; ok {
		return w + " " + name
	}
	return fmt.Sprintf("%s (degree %d)", name, d)
}
