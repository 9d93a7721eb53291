package note

import (
	"strings"

	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

// Accidental is the number of half steps a note is raised (sharps, positive)
// or lowered (flats, negative) from its natural letter.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// String renders ASCII notation: "#", "x", "#x", "b", "bb". Naturals are empty.
func (a Accidental) String() string {
	switch {
	case a > 0:
		return strings.Repeat("#", int(a)%2) + strings.Repeat("x", int(a)/2)
	case a < 0:
		return strings.Repeat("b", -int(a))
	}
	return ""
}

// Unicode renders with the musical symbols ♯ ♭ 𝄪 𝄫.
func (a Accidental) Unicode() string {
	switch {
	case a > 0:
		return strings.Repeat("♯", int(a)%2) + strings.Repeat("𝄪", int(a)/2)
	case a < 0:
		return strings.Repeat("♭", -int(a)%2) + strings.Repeat("𝄫", -int(a)/2)
	}
	return ""
}

// ParseAccidental reads ASCII or Unicode accidentals. The empty string and
// "♮" are naturals.
func ParseAccidental(s string) (Accidental, error) {
	var a Accidental
	for _, r := range s {
		switch r {
		case '#', '♯':
			a++
		case 'x', '𝄪':
			a += 2
		case 'b', '♭':
			a--
		case '𝄫':
			a -= 2
		case '♮':
			if len(s) != len("♮") {
				return 0, rmxerr.New(rmxerr.Syntax, "ParseAccidental", "natural sign cannot be combined in %q", s)
			}
		default:
			return 0, rmxerr.New(rmxerr.Syntax, "ParseAccidental", "invalid accidental %q", s)
		}
	}
	return a, nil
}
