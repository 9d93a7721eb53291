// Package note spells notes and pitches and transposes them by intervals.
package note

import (
	"fmt"
	"strings"

	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

// Letter is a natural note name, C through B.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var (
	letterNames      = "CDEFGAB"
	naturalHalfSteps = [7]int{0, 2, 4, 5, 7, 9, 11}
)

// ParseLetter accepts upper or lower case letter names.
func ParseLetter(s string) (Letter, error) {
	if len(s) == 1 {
		if i := strings.IndexByte(letterNames, strings.ToUpper(s)[0]); i >= 0 {
			return Letter(i), nil
		}
	}
	return 0, rmxerr.New(rmxerr.Syntax, "ParseLetter", "invalid note letter %q", s)
}

func (l Letter) valid() bool { return l >= C && l <= B }

func (l Letter) String() string {
	if !l.valid() {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l : l+1]
}

// NaturalHalfSteps is the letter's distance above C without accidentals.
func (l Letter) NaturalHalfSteps() int { return naturalHalfSteps[l] }

// Minus returns the simple interval from the letter below (from) up to l,
// both taken as naturals. F minus B is a diminished fifth, B minus F an
// augmented fourth.
func (l Letter) Minus(from Letter) interval.SimpleInterval {
	steps := (int(l) - int(from) + 7) % 7
	n := interval.SimpleNumber(steps + 1)
	halfSteps := (l.NaturalHalfSteps() - from.NaturalHalfSteps() + 12) % 12
	q, _ := interval.NewQuality(n.Perfectability(), halfSteps-n.PerfectOrMajorHalfSteps())
	return interval.MustSimpleInterval(q, n)
}

// Plus moves n-1 letters up from l. shift is the accidental the new letter
// needs for the move to span the perfect or major version of n, and wrapped
// reports that the letters passed from B to C.
func (l Letter) Plus(n interval.SimpleNumber) (next Letter, shift int, wrapped bool) {
	steps := int(l) + n.Value() - 1
	next = Letter(steps % 7)
	wrapped = steps >= 7
	natural := (next.NaturalHalfSteps() - l.NaturalHalfSteps() + 12) % 12
	shift = n.PerfectOrMajorHalfSteps() - natural
	return next, shift, wrapped
}
