package interval

import "fmt"

// Perfectability is the family an interval number belongs to. Unisons, fourths
// and fifths are perfectable (reference quality perfect); seconds, thirds,
// sixths and sevenths are imperfectable (reference quality major).
type Perfectability int

const (
	Perfectable Perfectability = iota
	Imperfectable
)

func (p Perfectability) String() string {
	switch p {
	case Perfectable:
		return "perfectable"
	case Imperfectable:
		return "imperfectable"
	}
	return fmt.Sprintf("Perfectability(%d)", int(p))
}

func (p Perfectability) valid() bool {
	return p == Perfectable || p == Imperfectable
}

// floorDiv and floorMod round toward negative infinity so that circle-of-fifths
// arithmetic is uniform on both sides of zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
