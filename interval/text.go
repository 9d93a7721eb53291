package interval

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rapidmidiex/rmxtheory/rmxerr"
)

var intervalRegexp = regexp.MustCompile(`^([+-]?)(P|M|m|A+|d+)([1-9][0-9]*)$`)

// parseQuality turns a quality symbol into a quality of the given family.
func parseQuality(op, sym string, family Perfectability) (Quality, error) {
	switch {
	case sym == "P":
		if family != Perfectable {
			return Quality{}, rmxerr.New(rmxerr.PerfectabilityMismatch, op, "perfect applies only to unisons, fourths and fifths")
		}
		return Perfect(), nil
	case sym == "M" || sym == "m":
		if family != Imperfectable {
			return Quality{}, rmxerr.New(rmxerr.PerfectabilityMismatch, op, "major and minor apply only to seconds, thirds, sixths and sevenths")
		}
		if sym == "M" {
			return Major(), nil
		}
		return Minor(), nil
	case sym[0] == 'A':
		return Augmented(family, len(sym))
	}
	return Diminished(family, len(sym))
}

func parse(op, s string) (sign int, i Interval, err error) {
	m := intervalRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, Interval{}, rmxerr.New(rmxerr.Syntax, op, "invalid interval %q", s)
	}
	number, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, Interval{}, rmxerr.New(rmxerr.Syntax, op, "invalid interval number %q", m[3])
	}
	n := SimpleNumber((number-1)%7 + 1)
	q, err := parseQuality(op, m[2], n.Perfectability())
	if err != nil {
		return 0, Interval{}, err
	}
	i, err = IntervalWithNumber(q, number)
	if err != nil {
		return 0, Interval{}, err
	}
	sign = 1
	if m[1] == "-" {
		sign = -1
	}
	return sign, i, nil
}

// ParseSimpleInterval parses short names such as "M3", "P5", "AA4" or "d7".
func ParseSimpleInterval(s string) (SimpleInterval, error) {
	sign, i, err := parse("ParseSimpleInterval", s)
	if err != nil {
		return SimpleInterval{}, err
	}
	if sign < 0 || !i.IsSimple() {
		return SimpleInterval{}, rmxerr.New(rmxerr.Syntax, "ParseSimpleInterval", "%q is not a simple interval", s)
	}
	return i.base, nil
}

// ParseInterval parses short names of any size, such as "M10" or "P15".
func ParseInterval(s string) (Interval, error) {
	sign, i, err := parse("ParseInterval", s)
	if err != nil {
		return Interval{}, err
	}
	if sign < 0 {
		return Interval{}, rmxerr.New(rmxerr.Syntax, "ParseInterval", "%q has a direction", s)
	}
	return i, nil
}

// ParseSignedInterval parses an interval with an optional "+" or "-" prefix.
func ParseSignedInterval(s string) (SignedInterval, error) {
	sign, i, err := parse("ParseSignedInterval", s)
	if err != nil {
		return SignedInterval{}, err
	}
	return withSign(i, sign), nil
}

func (si SimpleInterval) String() string {
	return si.quality.Symbol() + strconv.Itoa(si.Number().Value())
}

// Name is the long form of the interval, ex: "minor 6th".
func (si SimpleInterval) Name() string {
	return si.quality.String() + " " + si.Number().String()
}

func (i Interval) String() string {
	return i.base.quality.Symbol() + strconv.Itoa(i.Number())
}

func (i Interval) Name() string {
	return i.base.quality.String() + " " + Ordinal(i.Number())
}

func (s SignedInterval) String() string {
	if s.descending {
		return "-" + s.magnitude.String()
	}
	return s.magnitude.String()
}

func (s SignedInterval) Name() string {
	if s.descending {
		return "descending " + s.magnitude.Name()
	}
	return s.magnitude.Name()
}

func (si SimpleInterval) MarshalText() ([]byte, error) {
	return []byte(si.String()), nil
}

func (si *SimpleInterval) UnmarshalText(text []byte) error {
	v, err := ParseSimpleInterval(string(text))
	if err != nil {
		return err
	}
	*si = v
	return nil
}

func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interval) UnmarshalText(text []byte) error {
	v, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (s SignedInterval) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SignedInterval) UnmarshalText(text []byte) error {
	v, err := ParseSignedInterval(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
