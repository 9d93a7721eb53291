// Package ambitus contains tools for calculating the range covered by a
// series of pitches.
package ambitus

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/note"
)

type (
	CalcMsg struct {
		Latest  note.Pitch
		Lowest  note.Pitch
		Highest note.Pitch
		// Interval from Lowest up to Highest.
		Span interval.SignedInterval
		// Average MIDI number, rounded to the nearest key.
		Avg int
	}
)

// CalcStats summarises prev together with the latest pitch.
func CalcStats(latest note.Pitch, prev []note.Pitch) tea.Cmd {
	all := append(append(make([]note.Pitch, 0, len(prev)+1), prev...), latest)
	lo, hi := Min(all), Max(all)
	return func() tea.Msg {
		return CalcMsg{
			Latest:  latest,
			Lowest:  lo,
			Highest: hi,
			Span:    hi.Minus(lo),
			Avg:     Avg(all),
		}
	}
}

// Min returns the lowest sounding pitch; the first one wins among enharmonics.
func Min(pitches []note.Pitch) note.Pitch {
	var min note.Pitch
	for i, p := range pitches {
		if i == 0 || p.MIDI() < min.MIDI() {
			min = p
		}
	}
	return min
}

// Max returns the highest sounding pitch; the first one wins among enharmonics.
func Max(pitches []note.Pitch) note.Pitch {
	var max note.Pitch
	for i, p := range pitches {
		if i == 0 || p.MIDI() > max.MIDI() {
			max = p
		}
	}
	return max
}

func Avg(pitches []note.Pitch) int {
	if len(pitches) == 0 {
		return 0
	}
	sum := 0
	for _, p := range pitches {
		sum = sum + p.MIDI()
	}
	return int(math.Round(float64(sum) / float64(len(pitches))))
}
