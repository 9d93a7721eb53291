package vpiano

import (
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/note"
)

type (
	Key struct {
		// MIDI note number, based on C4=60
		MIDI int
		// Name of the key, ex: "C", "F#/Gb"
		Name string
		// Spelling of the key with sharps.
		Pitch note.Pitch
		// Denotes if the key is sharp/flat ie. "black" key.
		IsAccidental bool
		// qwerty keyboard key binding.
		KeyBinding string
	}

	Keys []Key

	KeyBindingMap map[string]Key

	Octave int
)

const (
	Cneg1 Octave = iota - 1
	C0
	C1
	C2
	C3
	C4
	C5
	C6
	C7
	C8
)

// qwerty keys ordered to allow for fingering similar to a real piano.
var qwertyKeys = []string{"a", "w", "s", "e", "d", "f", "t", "g", "y", "h", "u", "j", "k", "o", "l", "p", ";", "'"}

// KeyName names the piano key for a MIDI number, ex: "C", "C#/Db".
func KeyName(midi int) string {
	sharp := note.Spell(midi, note.Sharp).Note
	flat := note.Spell(midi, note.Flat).Note
	if sharp == flat {
		return sharp.String()
	}
	return sharp.String() + "/" + flat.String()
}

// MakeOctaveKeys creates the list of piano keys, MIDI #, and qwerty keyboard
// bindings starting at C of the given octave. The bindings use the home row
// for naturals and the q-row for accidentals, in an attempt to map close to
// actual piano fingerings.
func MakeOctaveKeys(octave Octave) Keys {
	first := note.Pitch{Note: note.Note{Letter: note.C}, Octave: int(octave)}.MIDI()
	keys := make(Keys, 0, len(qwertyKeys))
	for i, kb := range qwertyKeys {
		midi := first + i
		p := note.Spell(midi, note.Sharp)
		keys = append(keys, Key{
			MIDI:         midi,
			Name:         KeyName(midi),
			Pitch:        p,
			IsAccidental: p.Accidental != note.Natural,
			KeyBinding:   kb,
		})
	}
	return keys
}

// OctaveOf returns the octave whose keyboard starts at or just below p.
func OctaveOf(p note.Pitch) Octave {
	return Octave(note.Spell(p.MIDI(), note.Sharp).Octave)
}

func (keys Keys) ToBindingMap() KeyBindingMap {
	kMap := make(KeyBindingMap, len(keys))
	for _, k := range keys {
		kMap[k.KeyBinding] = k
	}
	return kMap
}

// Contains reports whether a key on the keyboard sounds midi.
func (keys Keys) Contains(midi int) bool {
	return len(keys) > 0 && midi >= keys[0].MIDI && midi <= keys[len(keys)-1].MIDI
}

// Transpose returns the pitch a key lands on when moved by by, spelled from
// the key's sharp spelling.
func (k Key) Transpose(by interval.SignedInterval) note.Pitch {
	return k.Pitch.Transpose(by)
}

func InRange(midiNum int) bool {
	return midiNum >= 0 && midiNum < 128
}
