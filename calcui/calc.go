package calcui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rapidmidiex/rmxtheory/ambitus"
	"github.com/rapidmidiex/rmxtheory/expr"
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/keymap"
	"github.com/rapidmidiex/rmxtheory/note"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/rapidmidiex/rmxtheory/styles"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
)

// Reference:
// https://github.com/charmbracelet/bubbletea/blob/master/examples/chat/main.go

type (
	ToggleFocusMsg struct{}

	// EvaluatedMsg reports a successful evaluation to the parent model.
	EvaluatedMsg struct {
		Result wsmsg.ResultMsg
	}

	replyMsg struct {
		env wsmsg.Envelope
	}

	Model struct {
		viewport  viewport.Model
		input     textinput.Model
		history   []string
		// Pitch results so far, for the ambitus line.
		pitches   []note.Pitch
		ambitus   string
		evaluator expr.Evaluator
		err       error
		log       *log.Logger
	}
)

const intro = `Interval calculator
Try "M3 + m3", "C4 + P5", "E4 - C4", "inv M6" or "steps 6 dim".`

func New(ev expr.Evaluator) Model {
	ti := textinput.New()
	ti.Placeholder = "M3 + m3"
	ti.Prompt = "┃ "
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()

	vp := viewport.New(styles.Width, 8)
	vp.SetContent(intro)

	return Model{
		viewport:  vp,
		input:     ti,
		history:   []string{},
		evaluator: ev,
		log:       log.Default(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleFocusMsg:
		if m.input.Focused() {
			m.input.Blur()
			return m, nil
		}
		m.input.Focus()
		return m, textinput.Blink

	case tea.WindowSizeMsg:
		m.viewport.Width = min(msg.Width-4, styles.Width)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.Evaluate):
			src := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if src == "" {
				return m, nil
			}
			return m, m.send(src)
		case key.Matches(msg, keymap.DefaultMapping.Clear):
			m.history = m.history[:0]
			m.pitches = nil
			m.ambitus = ""
			m.err = nil
			m.viewport.SetContent(intro)
			return m, nil
		}

	case replyMsg:
		return m.receive(msg.env)

	case ambitus.CalcMsg:
		m.ambitus = fmt.Sprintf("range %s to %s, %s", m.pitchLabel(msg.Lowest), m.pitchLabel(msg.Highest), msg.Span.Name())
		return m, nil

	// We handle errors just like any other message
	case rmxerr.ErrMsg:
		m.err = msg
		return m, nil
	}

	var tiCmd, vpCmd tea.Cmd
	m.input, tiCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(tiCmd, vpCmd)
}

func (m Model) View() string {
	doc := strings.Builder{}
	doc.WriteString(m.viewport.View() + "\n\n")
	doc.WriteString(m.input.View() + "\n")
	if m.ambitus != "" {
		doc.WriteString(styles.DetailStyle.Render(m.ambitus) + "\n")
	}
	if m.err != nil {
		doc.WriteString("\n" + styles.RenderError(m.err.Error()) + "\n")
	}
	return doc.String()
}

// History returns the rendered history lines, oldest first.
func (m Model) History() []string {
	return m.history
}

// Err is the error from the latest evaluation, if any.
func (m Model) Err() error {
	return m.err
}

// send wraps src in an eval envelope and answers it.
func (m Model) send(src string) tea.Cmd {
	ev := m.evaluator
	return func() tea.Msg {
		req, err := wsmsg.New(wsmsg.EVAL, wsmsg.EvalMsg{Expr: src})
		if err != nil {
			return rmxerr.ErrMsg{Err: fmt.Errorf("marshal: %w", err)}
		}
		res, err := wsmsg.Reply(req, ev)
		if err != nil {
			return rmxerr.ErrMsg{Err: fmt.Errorf("reply: %w", err)}
		}
		return replyMsg{env: res}
	}
}

func (m Model) receive(env wsmsg.Envelope) (tea.Model, tea.Cmd) {
	switch env.Typ {
	case wsmsg.RESULT:
		var res wsmsg.ResultMsg
		if err := env.Unwrap(&res); err != nil {
			m.err = fmt.Errorf("unmarshal ResultMsg: %w", err)
			return m, nil
		}
		m.log.Printf("eval %q = %s (%s)", res.Expr, res.Value, env.ReplyTo)
		m.err = nil
		m.appendHistory(m.renderResult(res))
		evaluated := func() tea.Msg { return EvaluatedMsg{Result: res} }
		if res.Kind != expr.PitchKind.String() {
			return m, evaluated
		}
		p, err := note.ParsePitch(res.Value)
		if err != nil {
			m.err = err
			return m, evaluated
		}
		stats := ambitus.CalcStats(p, m.pitches)
		m.pitches = append(m.pitches, p)
		return m, tea.Batch(evaluated, stats)

	case wsmsg.ERROR:
		var e wsmsg.ErrorMsg
		if err := env.Unwrap(&e); err != nil {
			m.err = fmt.Errorf("unmarshal ErrorMsg: %w", err)
			return m, nil
		}
		m.log.Printf("eval %q failed: %s", e.Expr, e.Error)
		m.err = errors.New(e.Error)
		m.appendHistory(styles.ExprStyle.Render(e.Expr) + " " + styles.DetailStyle.Render("error"))
		return m, nil
	}
	m.err = fmt.Errorf("unknown message type: %s", env.Typ)
	return m, nil
}

func (m *Model) appendHistory(line string) {
	m.history = append(m.history, line)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) renderResult(res wsmsg.ResultMsg) string {
	value := res.Value
	var detail string
	switch res.Kind {
	case expr.PitchKind.String():
		if p, err := note.ParsePitch(res.Value); err == nil {
			value = m.pitchLabel(p)
		}
		detail = fmt.Sprintf("MIDI %d", res.HalfSteps)
	default:
		if s, err := interval.ParseSignedInterval(res.Value); err == nil {
			detail = fmt.Sprintf("%s, %d half steps", s.Name(), res.HalfSteps)
		}
	}
	return fmt.Sprintf("%s = %s  %s",
		styles.ExprStyle.Render(res.Expr),
		styles.ResultStyle.Render(value),
		styles.DetailStyle.Render(detail),
	)
}

func (m Model) pitchLabel(p note.Pitch) string {
	if m.evaluator.Unicode {
		return p.Unicode()
	}
	return p.String()
}
