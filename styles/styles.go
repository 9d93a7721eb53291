package styles

import "github.com/charmbracelet/lipgloss"

const (
	// Document width. The detected terminal width is only used to truncate
	// in order to avoid jaggy wrapping.
	Width = 72
)

// https://github.com/inngest/inngest/blob/main/pkg/cli/styles.go
var (
	Red   = lipgloss.Color("#ff0000")
	White = lipgloss.Color("#ffffff")
	Black = lipgloss.Color("#000000")

	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	BaseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	// Calculator history.
	ExprStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	ResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	DetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Status Bar.
	StatusNugget = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Padding(0, 1)
	TritoneStyle = StatusNugget.Copy().
			Background(lipgloss.Color("#e783f2")).
			Align(lipgloss.Right)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	StatusStyle = lipgloss.NewStyle().
			Inherit(StatusBarStyle).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().Inherit(StatusBarStyle)

	MessageText = lipgloss.NewStyle().Align(lipgloss.Left)

	HelpMenu = lipgloss.NewStyle().Align(lipgloss.Center).PaddingTop(2)

	// Page
	DocStyle = lipgloss.NewStyle().Padding(1, 2, 1, 2)

	// Piano keys.
	keyBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "-",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}

	WhiteKey = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(keyBorder, true).
			BorderForeground(Highlight).
			Width(3)
	BlackKey = WhiteKey.Copy().
			Foreground(White).
			Background(lipgloss.Color("#353533"))
	PressedKey = WhiteKey.Copy().
			Foreground(Black).
			Background(Special).
			Bold(true)
)

// RenderError returns a formatted error string.
func RenderError(msg string) string {
	err := lipgloss.NewStyle().Background(Red).Foreground(White).Bold(true).Padding(0, 1).Render("Error")
	content := lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(msg)
	return err + content
}

// RenderStatus renders a status bar with a label, some text and a right
// aligned nugget, fitted to width.
func RenderStatus(label, text, nugget string, width int) string {
	l := StatusStyle.Render(label)
	n := TritoneStyle.Render(nugget)
	t := StatusText.Copy().
		Width(max(0, width-lipgloss.Width(l)-lipgloss.Width(n))).
		Render(text)
	return StatusBarStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, l, t, n))
}
