// Package chart tabulates simple intervals along the circle of fifths.
package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"gopkg.in/yaml.v3"
)

type (
	Format int

	// Row describes one simple interval.
	Row struct {
		Index     int    `json:"index" yaml:"index" toml:"index"`
		Short     string `json:"short" yaml:"short" toml:"short"`
		Name      string `json:"name" yaml:"name" toml:"name"`
		Quality   string `json:"quality" yaml:"quality" toml:"quality"`
		Number    int    `json:"number" yaml:"number" toml:"number"`
		HalfSteps int    `json:"half_steps" yaml:"half_steps" toml:"half_steps"`
		Inversion string `json:"inversion" yaml:"inversion" toml:"inversion"`
	}

	// Chart is the exported document.
	Chart struct {
		From      int   `json:"from" yaml:"from" toml:"from"`
		To        int   `json:"to" yaml:"to" toml:"to"`
		Intervals []Row `json:"intervals" yaml:"intervals" toml:"intervals"`
	}
)

const (
	JSON Format = iota
	YAML
	TOML
)

// Defaults span every doubly diminished to doubly augmented interval.
const (
	DefaultFrom = -19
	DefaultTo   = 19
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return 0, rmxerr.New(rmxerr.Syntax, "ParseFormat", "unknown chart format %q", s)
}

// NewRow describes si.
func NewRow(si interval.SimpleInterval) Row {
	return Row{
		Index:     si.CircleOfFifthsIndex(),
		Short:     si.String(),
		Name:      si.Name(),
		Quality:   si.Quality().String(),
		Number:    si.Number().Value(),
		HalfSteps: si.HalfSteps(),
		Inversion: si.Inversion().String(),
	}
}

// Build lists the intervals with circle-of-fifths index from..to inclusive.
func Build(from, to int) (Chart, error) {
	if from > to {
		return Chart{}, rmxerr.New(rmxerr.Precondition, "Build", "from %d is after to %d", from, to)
	}
	c := Chart{From: from, To: to, Intervals: make([]Row, 0, to-from+1)}
	for i := from; i <= to; i++ {
		c.Intervals = append(c.Intervals, NewRow(interval.SimpleIntervalFromCircleOfFifthsIndex(i)))
	}
	return c, nil
}

// Write encodes c to w.
func Write(w io.Writer, c Chart, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		data, err := toml.Marshal(c)
		if err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	return rmxerr.New(rmxerr.Precondition, "Write", "unknown chart format %s", f)
}

// Read decodes a chart previously written in format f.
func Read(r io.Reader, f Format) (Chart, error) {
	var c Chart
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return Chart{}, fmt.Errorf("decoding json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil {
			return Chart{}, fmt.Errorf("decoding yaml: %w", err)
		}
	case TOML:
		data, err := io.ReadAll(r)
		if err != nil {
			return Chart{}, err
		}
		if err := toml.Unmarshal(data, &c); err != nil {
			return Chart{}, fmt.Errorf("decoding toml: %w", err)
		}
	default:
		return Chart{}, rmxerr.New(rmxerr.Precondition, "Read", "unknown chart format %s", f)
	}
	return c, nil
}

// Parse reads the short names back into simple intervals.
func (c Chart) Parse() ([]interval.SimpleInterval, error) {
	out := make([]interval.SimpleInterval, 0, len(c.Intervals))
	for _, r := range c.Intervals {
		si, err := interval.ParseSimpleInterval(r.Short)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r.Index, err)
		}
		out = append(out, si)
	}
	return out, nil
}
