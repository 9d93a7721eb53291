// Package expr evaluates small arithmetic expressions over intervals and
// pitches, ex: "M3 + m3", "C4 + P5", "E4 - C4", "inv M3", "steps 6 dim".
//
// Binary operators must be separated from their operands by spaces; a sign
// written directly before an interval ("-M3") belongs to the interval.
//
// Pitches start with an upper case letter, so "A4" is the pitch A above
// middle C while "d5" is a diminished fifth. Write an augmented interval with
// an explicit sign, "+A4", where it would read as a pitch.
package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/note"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

type (
	Kind int

	// Value is the result of an expression: a signed interval or a pitch.
	Value struct {
		Kind     Kind
		Interval interval.SignedInterval
		Pitch    note.Pitch
	}

	// Evaluator holds the choices that expressions leave open.
	Evaluator struct {
		// Spelling used by "steps" when it lands on a tritone without an
		// explicit aug/dim.
		Tritone interval.Tritone
		// Render accidentals with Unicode symbols.
		Unicode bool
	}

	scanner struct {
		tokens []string
		pos    int
	}
)

const (
	IntervalKind Kind = iota
	PitchKind
)

func (k Kind) String() string {
	switch k {
	case IntervalKind:
		return "interval"
	case PitchKind:
		return "pitch"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IntervalValue wraps a signed interval.
func IntervalValue(s interval.SignedInterval) Value {
	return Value{Kind: IntervalKind, Interval: s}
}

// PitchValue wraps a pitch.
func PitchValue(p note.Pitch) Value {
	return Value{Kind: PitchKind, Pitch: p}
}

func (v Value) String() string {
	if v.Kind == PitchKind {
		return v.Pitch.String()
	}
	return v.Interval.String()
}

// HalfSteps is the interval's signed span, or the pitch's MIDI number.
func (v Value) HalfSteps() int {
	if v.Kind == PitchKind {
		return v.Pitch.MIDI()
	}
	return v.Interval.HalfSteps()
}

// Eval evaluates src with the default Evaluator.
func Eval(src string) (Value, error) {
	return Evaluator{}.Eval(src)
}

func (e Evaluator) Eval(src string) (Value, error) {
	s := &scanner{tokens: strings.Fields(src)}
	if len(s.tokens) == 0 {
		return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "empty expression")
	}
	acc, err := e.term(s)
	if err != nil {
		return Value{}, err
	}
	for !s.done() {
		op := s.next()
		if op != "+" && op != "-" {
			return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "expected + or -, got %q", op)
		}
		if s.done() {
			return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "missing operand after %q", op)
		}
		rhs, err := e.term(s)
		if err != nil {
			return Value{}, err
		}
		acc, err = apply(acc, op, rhs)
		if err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}

// Render formats v using the evaluator's notation.
func (e Evaluator) Render(v Value) string {
	if v.Kind == PitchKind && e.Unicode {
		return v.Pitch.Unicode()
	}
	return v.String()
}

func (s *scanner) done() bool { return s.pos >= len(s.tokens) }

func (s *scanner) next() string {
	t := s.tokens[s.pos]
	s.pos++
	return t
}

func (s *scanner) peek() string {
	if s.done() {
		return ""
	}
	return s.tokens[s.pos]
}

func (e Evaluator) term(s *scanner) (Value, error) {
	tok := s.next()
	switch tok {
	case "inv":
		if s.done() {
			return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "inv needs an interval")
		}
		v, err := e.term(s)
		if err != nil {
			return Value{}, err
		}
		if v.Kind != IntervalKind {
			return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "cannot invert pitch %s", v)
		}
		m := v.Interval.Magnitude().Inversion()
		inv, _ := interval.NewSignedInterval(m, v.Interval.Sign())
		return IntervalValue(inv), nil
	case "steps":
		return e.steps(s)
	}
	return literal(tok)
}

// steps parses "steps <n> [aug|dim]" into the simplest interval spanning n
// half steps; spans beyond an octave keep the whole octaves.
func (e Evaluator) steps(s *scanner) (Value, error) {
	if s.done() {
		return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "steps needs a half-step count")
	}
	raw := s.next()
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "invalid half-step count %q", raw)
	}
	tritone := e.Tritone
	if t, err := interval.ParseTritone(s.peek()); err == nil {
		tritone = t
		s.next()
	}
	sign := 1
	if n < 0 {
		sign, n = -1, -n
	}
	base, err := interval.SimplestWithHalfSteps(n%12, tritone)
	if err != nil {
		return Value{}, err
	}
	i, err := interval.NewInterval(base, n/12)
	if err != nil {
		return Value{}, err
	}
	signed, err := interval.NewSignedInterval(i, sign)
	if err != nil {
		return Value{}, err
	}
	return IntervalValue(signed), nil
}

func literal(tok string) (Value, error) {
	if tok[0] >= 'A' && tok[0] <= 'G' {
		if p, err := note.ParsePitch(tok); err == nil {
			return PitchValue(p), nil
		}
	}
	si, err := interval.ParseSignedInterval(tok)
	if err != nil {
		return Value{}, fmt.Errorf("%q is neither a pitch nor an interval: %w", tok, err)
	}
	return IntervalValue(si), nil
}

func apply(a Value, op string, b Value) (Value, error) {
	switch {
	case a.Kind == IntervalKind && b.Kind == IntervalKind:
		if op == "+" {
			return IntervalValue(a.Interval.Add(b.Interval)), nil
		}
		return IntervalValue(a.Interval.Sub(b.Interval)), nil
	case a.Kind == PitchKind && b.Kind == IntervalKind:
		by := b.Interval
		if op == "-" {
			by = by.Neg()
		}
		return PitchValue(a.Pitch.Transpose(by)), nil
	case a.Kind == IntervalKind && b.Kind == PitchKind && op == "+":
		return PitchValue(b.Pitch.Transpose(a.Interval)), nil
	case a.Kind == PitchKind && b.Kind == PitchKind && op == "-":
		return IntervalValue(a.Pitch.Minus(b.Pitch)), nil
	}
	return Value{}, rmxerr.New(rmxerr.Syntax, "Eval", "cannot compute %s %s %s", a.Kind, op, b.Kind)
}
