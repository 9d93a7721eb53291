// Package rmxerr holds the error types shared by the theory packages and the TUI.
package rmxerr

import "fmt"

type (
	// ErrMsg carries an error through the bubbletea update loop.
	ErrMsg struct {
		Err error
	}

	// Kind classifies a domain error. Kinds are themselves errors so callers
	// can match with errors.Is(err, rmxerr.Underflow).
	Kind int

	// Error is a domain error raised by interval and note arithmetic.
	Error struct {
		Kind Kind
		// Operation or constructor that rejected its input, ex: "NewSimpleNumber".
		Op  string
		Msg string
	}
)

const (
	// Precondition is an argument of the wrong shape: a non-positive degree,
	// a negative octave count, an unknown tag.
	Precondition Kind = iota + 1
	// InvalidNumber is an interval number outside 1..7.
	InvalidNumber
	// PerfectabilityMismatch is a quality paired with a number of the other family.
	PerfectabilityMismatch
	// Underflow is a subtraction whose result would fall below a unison.
	Underflow
	// Syntax is unparseable interval, note or expression text.
	Syntax
)

func (m ErrMsg) Error() string {
	return m.Err.Error()
}

func (m ErrMsg) Unwrap() error {
	return m.Err
}

func (k Kind) Error() string {
	return k.String()
}

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition violated"
	case InvalidNumber:
		return "invalid interval number"
	case PerfectabilityMismatch:
		return "perfectability mismatch"
	case Underflow:
		return "interval underflow"
	case Syntax:
		return "syntax error"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// New returns a domain error of the given kind.
func New(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Unwrap exposes the Kind so errors.As(err, &kind) works.
func (e *Error) Unwrap() error {
	return e.Kind
}
