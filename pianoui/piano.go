package pianoui

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxtheory/calcui"
	"github.com/rapidmidiex/rmxtheory/expr"
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/keymap"
	"github.com/rapidmidiex/rmxtheory/note"
	"github.com/rapidmidiex/rmxtheory/styles"
	"github.com/rapidmidiex/rmxtheory/vpiano"
	"golang.org/x/term"
)

var docStyle = styles.DocStyle

type (
	ToggleFocusMsg struct{}

	Model struct {
		octave vpiano.Octave
		// Piano keys. {"a": Key{60, "C", ...}}
		keys     vpiano.Keys
		bindings vpiano.KeyBindingMap
		// Currently highlighted MIDI numbers.
		pressed map[int]struct{}
		// Interval applied to played keys, from the latest interval result.
		by      *interval.SignedInterval
		caption string
		unicode bool
		focused bool

		log *log.Logger
	}
)

// New returns a keyboard starting at C of the given octave.
func New(octave vpiano.Octave, unicode bool) Model {
	m := Model{
		pressed: make(map[int]struct{}),
		unicode: unicode,
		caption: "Evaluate an interval, then play keys to transpose them.",
		log:     log.Default(),
	}
	return m.setOctave(octave)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleFocusMsg:
		m.focused = !m.focused

	case calcui.EvaluatedMsg:
		return m.show(msg), nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, keymap.DefaultMapping.OctaveUp):
			return m.setOctave(m.octave + 1), nil
		case key.Matches(msg, keymap.DefaultMapping.OctaveDown):
			return m.setOctave(m.octave - 1), nil
		}
		if k, ok := m.bindings[msg.String()]; ok {
			return m.play(k), nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}

	// Keyboard
	rendered := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		style := styles.WhiteKey
		if k.IsAccidental {
			style = styles.BlackKey
		}
		if _, ok := m.pressed[k.MIDI]; ok {
			style = styles.PressedKey
		}
		rendered = append(rendered, style.Render(m.label(k.Pitch.Note)+"\n\n"+"("+k.KeyBinding+")"))
	}
	doc.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n\n")
	doc.WriteString(styles.MessageText.Render(m.caption))
	return docStyle.Render(doc.String())
}

// Octave is the octave of the keyboard's lowest C.
func (m Model) Octave() vpiano.Octave {
	return m.octave
}

// Pressed returns the highlighted MIDI numbers in ascending order.
func (m Model) Pressed() []int {
	out := make([]int, 0, len(m.pressed))
	for midi := range m.pressed {
		out = append(out, midi)
	}
	sort.Ints(out)
	return out
}

func (m Model) Caption() string {
	return m.caption
}

func (m Model) setOctave(o vpiano.Octave) Model {
	if o < vpiano.Cneg1 {
		o = vpiano.Cneg1
	}
	if o > vpiano.C8 {
		o = vpiano.C8
	}
	m.octave = o
	m.keys = vpiano.MakeOctaveKeys(o)
	m.bindings = m.keys.ToBindingMap()
	return m
}

func (m Model) press(midis ...int) Model {
	m.pressed = make(map[int]struct{}, len(midis))
	for _, midi := range midis {
		if vpiano.InRange(midi) {
			m.pressed[midi] = struct{}{}
		}
	}
	return m
}

// show highlights an evaluation result. Pitches are pressed directly;
// intervals are played from the keyboard's lowest C and kept for later key
// presses.
func (m Model) show(msg calcui.EvaluatedMsg) Model {
	res := msg.Result
	switch res.Kind {
	case expr.PitchKind.String():
		p, err := note.ParsePitch(res.Value)
		if err != nil {
			m.caption = styles.RenderError(err.Error())
			return m
		}
		if !m.keys.Contains(p.MIDI()) {
			m = m.setOctave(vpiano.OctaveOf(p))
		}
		m.caption = fmt.Sprintf("%s = %s", res.Expr, m.label(p))
		return m.press(p.MIDI())
	default:
		by, err := interval.ParseSignedInterval(res.Value)
		if err != nil {
			m.caption = styles.RenderError(err.Error())
			return m
		}
		m.by = &by
		return m.play(m.keys[0])
	}
}

// play presses k and, with an interval result at hand, the key it transposes to.
func (m Model) play(k vpiano.Key) Model {
	if m.by == nil {
		m.caption = m.label(k.Pitch)
		return m.press(k.MIDI)
	}
	to := k.Transpose(*m.by)
	m.log.Printf("piano %s %s = %s", k.Pitch, m.by, to)
	m.caption = fmt.Sprintf("%s %s = %s (%s)", m.label(k.Pitch), signed(*m.by), m.label(to), m.by.Name())
	return m.press(k.MIDI, to.MIDI())
}

type unicoder interface {
	fmt.Stringer
	Unicode() string
}

func (m Model) label(n unicoder) string {
	if m.unicode {
		return n.Unicode()
	}
	return n.String()
}

// signed renders an interval as a binary operand, ex: "+ M3", "- P5".
func signed(s interval.SignedInterval) string {
	if s.IsDescending() {
		return "- " + s.Magnitude().String()
	}
	return "+ " + s.Magnitude().String()
}
