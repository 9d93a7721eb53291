package note

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

type (
	// Note is a spelled pitch class, ex: F#, Bb, Cx.
	Note struct {
		Letter     Letter
		Accidental Accidental
	}

	// Pitch is a note in a specific octave, in scientific pitch notation
	// (C4 is middle C, MIDI 60).
	Pitch struct {
		Note
		Octave int
	}
)

var (
	noteRegexp  = regexp.MustCompile(`^([A-Ga-g])([#xb♯♭𝄪𝄫♮]*)$`)
	pitchRegexp = regexp.MustCompile(`^([A-Ga-g])([#xb♯♭𝄪𝄫♮]*)(-?[0-9]+)$`)
)

// ParseNote parses a note name without octave, ex: "C#", "eb", "F♯".
func ParseNote(s string) (Note, error) {
	m := noteRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Note{}, rmxerr.New(rmxerr.Syntax, "ParseNote", "invalid note %q", s)
	}
	return parseNoteParts(m[1], m[2])
}

// ParsePitch parses a note name followed by an octave, ex: "C4", "Bb-1".
func ParsePitch(s string) (Pitch, error) {
	m := pitchRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Pitch{}, rmxerr.New(rmxerr.Syntax, "ParsePitch", "invalid pitch %q", s)
	}
	n, err := parseNoteParts(m[1], m[2])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return Pitch{}, rmxerr.New(rmxerr.Syntax, "ParsePitch", "invalid octave %q", m[3])
	}
	return Pitch{Note: n, Octave: octave}, nil
}

func parseNoteParts(letter, accidental string) (Note, error) {
	l, err := ParseLetter(letter)
	if err != nil {
		return Note{}, err
	}
	a, err := ParseAccidental(accidental)
	if err != nil {
		return Note{}, err
	}
	return Note{Letter: l, Accidental: a}, nil
}

func (n Note) String() string {
	return n.Letter.String() + n.Accidental.String()
}

// Unicode renders the note with musical accidental symbols.
func (n Note) Unicode() string {
	return n.Letter.String() + n.Accidental.Unicode()
}

// HalfSteps is the note's pitch class, 0..11 above C.
func (n Note) HalfSteps() int {
	return ((n.Letter.NaturalHalfSteps()+int(n.Accidental))%12 + 12) % 12
}

// Minus returns the simple interval from the note below (from) up to n.
func (n Note) Minus(from Note) interval.SimpleInterval {
	return n.Letter.Minus(from.Letter).Shift(int(n.Accidental - from.Accidental))
}

// Transpose moves the note by s, ignoring octaves.
func (n Note) Transpose(s interval.SignedInterval) Note {
	return Pitch{Note: n}.Transpose(s).Note
}

func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Note, p.Octave)
}

func (p Pitch) Unicode() string {
	return fmt.Sprintf("%s%d", p.Note.Unicode(), p.Octave)
}

// MIDI is the MIDI note number of the pitch, with C4 = 60.
func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + p.Letter.NaturalHalfSteps() + int(p.Accidental)
}

// Transpose moves the pitch by s, respelling it so that its letter moves by
// the interval number.
func (p Pitch) Transpose(s interval.SignedInterval) Pitch {
	m := s.Magnitude()
	if !s.IsDescending() {
		return p.up(m.Base()).addOctaves(m.Octaves())
	}
	// Descending by a simple interval is ascending by its inversion and
	// dropping an octave; unisons invert in place.
	octaves := m.Octaves()
	if m.Base().Number() != interval.Unison {
		octaves++
	}
	return p.up(m.Base().Inversion()).addOctaves(-octaves)
}

func (p Pitch) up(si interval.SimpleInterval) Pitch {
	next, shift, wrapped := p.Letter.Plus(si.Number())
	octave := p.Octave
	if wrapped {
		octave++
	}
	return Pitch{
		Note: Note{
			Letter:     next,
			Accidental: p.Accidental + Accidental(shift+si.Quality().Offset()),
		},
		Octave: octave,
	}
}

func (p Pitch) addOctaves(n int) Pitch {
	p.Octave += n
	return p
}

// staff is the pitch's position counted in letters from C0.
func (p Pitch) staff() int {
	return p.Octave*7 + int(p.Letter)
}

// Minus returns the signed interval that transposes from to p.
func (p Pitch) Minus(from Pitch) interval.SignedInterval {
	steps := p.staff() - from.staff()
	if steps < 0 {
		return from.Minus(p).Neg()
	}
	base := p.Note.Minus(from.Note)
	return interval.Positive(interval.MustInterval(base, steps/7))
}

// Spell names a MIDI note number. Black keys are spelled with sharps when
// prefer is positive and with flats otherwise.
func Spell(midi int, prefer Accidental) Pitch {
	octave := midi/12 - 1
	pc := midi % 12
	if pc < 0 {
		pc += 12
		octave--
	}
	for l := C; l <= B; l++ {
		if l.NaturalHalfSteps() == pc {
			return Pitch{Note: Note{Letter: l}, Octave: octave}
		}
	}
	for l := C; l <= B; l++ {
		if prefer > 0 && l.NaturalHalfSteps() == pc-1 {
			return Pitch{Note: Note{Letter: l, Accidental: Sharp}, Octave: octave}
		}
		if prefer <= 0 && l.NaturalHalfSteps() == pc+1 {
			return Pitch{Note: Note{Letter: l, Accidental: Flat}, Octave: octave}
		}
	}
	panic(fmt.Sprintf("note: no spelling for pitch class %d", pc))
}
