package rmxtheory

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rapidmidiex/rmxtheory/calcui"
	"github.com/rapidmidiex/rmxtheory/chartui"
	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/rapidmidiex/rmxtheory/keymap"
	"github.com/rapidmidiex/rmxtheory/pianoui"
	"github.com/rapidmidiex/rmxtheory/styles"
	"github.com/rapidmidiex/rmxtheory/vpiano"
)

// ********
// Code heavily based on "Project Journal"
// https://github.com/bashbunni/pjs
// https://www.youtube.com/watch?v=uJ2egAkSkjg&t=319s
// ********

type (
	focus int

	mainModel struct {
		focus   focus
		calc    tea.Model
		piano   tea.Model
		chart   tea.Model
		tritone string
		width   int
	}
)

const (
	inputFocus focus = iota
	pianoFocus
	chartFocus
	// Don't forget to update focusCount if more states are added here.
	focusCount
)

func (f focus) String() string {
	switch f {
	case inputFocus:
		return "calculator"
	case pianoFocus:
		return "piano"
	case chartFocus:
		return "chart"
	}
	return fmt.Sprintf("focus(%d)", int(f))
}

func NewModel(cfg config.Config) (mainModel, error) {
	if err := cfg.Validate(); err != nil {
		return mainModel{}, err
	}
	format, _ := cfg.ChartFormat()
	chart, err := chartui.New(cfg.Chart.From, cfg.Chart.To, format)
	if err != nil {
		return mainModel{}, err
	}
	return mainModel{
		focus:   inputFocus,
		calc:    calcui.New(cfg.Evaluator()),
		piano:   pianoui.New(vpiano.Octave(cfg.Piano.Octave), cfg.Unicode),
		chart:   chart,
		tritone: cfg.Evaluator().Tritone.String(),
		width:   styles.Width,
	}, nil
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.calc.Init(),
		m.piano.Init(),
		m.chart.Init(),
	)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd
	// Handle incoming messages from I/O
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, styles.Width)
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		switch {
		// Ctrl+c exits. Even with short running programs it's good to have
		// a quit key, just incase your logic is off. Users will be very
		// annoyed if they can't exit.
		case key.Matches(msg, keymap.DefaultMapping.Quit):
			return m, tea.Quit
		case key.Matches(msg, keymap.DefaultMapping.CycleFocus):
			return m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, keymap.DefaultMapping.GoBack):
			return m.setFocus(inputFocus)
		}

	case calcui.EvaluatedMsg:
		m.piano, cmd = m.piano.Update(msg)
		return m, cmd

	case chartui.ExportedMsg:
		m.chart, cmd = m.chart.Update(msg)
		return m, cmd
	}

	// Call sub-model Updates
	switch m.focus {
	case inputFocus:
		m.calc, cmd = m.calc.Update(msg)
	case pianoFocus:
		m.piano, cmd = m.piano.Update(msg)
	case chartFocus:
		m.chart, cmd = m.chart.Update(msg)
	}

	// Run all commands from sub-model Updates
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m mainModel) View() string {
	doc := strings.Builder{}
	switch m.focus {
	case chartFocus:
		doc.WriteString(m.chart.View())
	default:
		doc.WriteString(m.calc.View() + "\n")
		doc.WriteString(m.piano.View())
	}
	doc.WriteString("\n" + styles.RenderStatus(m.focus.String(), "tab: next view  esc: calculator  ctrl+c: quit", "tritone "+m.tritone, m.width))
	return doc.String()
}

// setFocus moves focus, toggling the sub-models that gain or lose it.
func (m mainModel) setFocus(f focus) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	toggle := func(which focus) {
		var cmd tea.Cmd
		switch which {
		case inputFocus:
			m.calc, cmd = m.calc.Update(calcui.ToggleFocusMsg{})
		case pianoFocus:
			m.piano, cmd = m.piano.Update(pianoui.ToggleFocusMsg{})
		}
		cmds = append(cmds, cmd)
	}
	if f != m.focus {
		toggle(m.focus)
		toggle(f)
		m.focus = f
	}
	return m, tea.Batch(cmds...)
}

func (m *mainModel) broadcast(msg tea.Msg) tea.Cmd {
	var c1, c2, c3 tea.Cmd
	m.calc, c1 = m.calc.Update(msg)
	m.piano, c2 = m.piano.Update(msg)
	m.chart, c3 = m.chart.Update(msg)
	return tea.Batch(c1, c2, c3)
}

// Run starts the TUI. Logs go to cfg.LogFile while the alt screen owns the
// terminal, and are discarded when no file is configured.
func Run(cfg config.Config) error {
	if cfg.Verbose {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "rmxtheory")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(mainModel); ok {
		log.Printf("quit from %s view", fm.focus)
	}
	return nil
}
