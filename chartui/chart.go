package chartui

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rapidmidiex/rmxtheory/chart"
	"github.com/rapidmidiex/rmxtheory/keymap"
	"github.com/rapidmidiex/rmxtheory/rmxerr"
	"github.com/rapidmidiex/rmxtheory/styles"
	"golang.org/x/term"
)

var (
	docStyle = styles.DocStyle
)

type (
	// ExportedMsg reports the file a chart was written to.
	ExportedMsg struct {
		Path string
	}

	Model struct {
		chart    chart.Chart
		format   chart.Format
		path     string
		table    table.Model
		help     help.Model
		exported string
		err      error
		log      *log.Logger
	}
)

// New builds the chart for circle-of-fifths indexes from..to. Exports are
// written in format f.
func New(from, to int, f chart.Format) (Model, error) {
	c, err := chart.Build(from, to)
	if err != nil {
		return Model{}, err
	}
	return Model{
		chart:  c,
		format: f,
		path:   "intervals." + f.String(),
		table:  makeChartTable(c),
		help:   help.New(),
		log:    log.Default(),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width - 10)
		m.help.Width = msg.Width
	case rmxerr.ErrMsg:
		m.err = msg
	case ExportedMsg:
		m.log.Printf("chart exported to %s", msg.Path)
		m.exported = msg.Path
		m.err = nil
	case tea.KeyMsg:
		if key.Matches(msg, keymap.DefaultMapping.Export) {
			cmds = append(cmds, exportChart(m.chart, m.format, m.path))
		}
	}
	newTable, tCmd := m.table.Update(msg)
	m.table = newTable

	cmds = append(cmds, tCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	// Interval table
	{
		doc.WriteString(styles.BaseStyle.Width(styles.Width).Render(m.table.View()))
	}

	// Status line
	{
		switch {
		case m.err != nil:
			doc.WriteString("\n" + styles.RenderError(m.err.Error()))
		case m.exported != "":
			doc.WriteString("\n" + styles.MessageText.Render("Exported to "+m.exported))
		}
	}

	// Help menu
	{
		doc.WriteString("\n" + styles.HelpMenu.Render(m.help.View(keymap.DefaultMapping)))
	}

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}

	return docStyle.Render(doc.String())
}

// WithExportPath sets the file exports are written to.
func (m Model) WithExportPath(path string) Model {
	m.path = path
	return m
}

// Selected returns the highlighted row.
func (m Model) Selected() (chart.Row, bool) {
	sel := m.table.SelectedRow()
	if len(sel) == 0 {
		return chart.Row{}, false
	}
	for _, r := range m.chart.Intervals {
		if strconv.Itoa(r.Index) == sel[0] {
			return r, true
		}
	}
	return chart.Row{}, false
}

func makeChartTable(c chart.Chart) table.Model {
	columns := []table.Column{
		{Title: "Fifths", Width: 6},
		{Title: "Interval", Width: 8},
		{Title: "Name", Width: 24},
		{Title: "Steps", Width: 5},
		{Title: "Inversion", Width: 9},
	}

	rows := make([]table.Row, 0, len(c.Intervals))
	for _, r := range c.Intervals {
		row := table.Row{strconv.Itoa(r.Index), r.Short, r.Name, strconv.Itoa(r.HalfSteps), r.Inversion}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Commands
func exportChart(c chart.Chart, f chart.Format, path string) tea.Cmd {
	return func() tea.Msg {
		file, err := os.Create(path)
		if err != nil {
			return rmxerr.ErrMsg{Err: fmt.Errorf("exportChart: %w", err)}
		}
		defer file.Close()
		if err := chart.Write(file, c, f); err != nil {
			return rmxerr.ErrMsg{Err: fmt.Errorf("exportChart: %w", err)}
		}
		return ExportedMsg{Path: path}
	}
}
