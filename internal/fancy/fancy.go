// Package fancy provides the lipgloss styles used for CLI output
package fancy

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

var (
	ColorBlue     = lipgloss.Color("39")
	ColorYellow   = lipgloss.Color("228")
	ColorCyan     = lipgloss.Color("45")
	ColorMagenta  = lipgloss.Color("201")
	ColorGray     = lipgloss.Color("250")
	ColorWhite    = lipgloss.Color("15")
	ColorDarkGray = lipgloss.Color("240")
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	ListenerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray).
			Italic(true)
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// Section creates a styled section header node with an optional note
func Section(title, note string) *tree.Tree {
	root := HeaderStyle.Render(title)
	if note != "" {
		root = lipgloss.JoinHorizontal(lipgloss.Top, root, " ", InfoStyle.Render(note))
	}
	return tree.New().Root(root)
}

// Setting renders a "key: value" line
func Setting(key string, value any) string {
	return KeyStyle.Render(key+":") + " " + ValueStyle.Render(fmt.Sprint(value))
}

// ListenerText styles a listener address
func ListenerText(text string) string {
	return ListenerStyle.Render(text)
}

// DisabledText styles a feature that is turned off
func DisabledText(text string) string {
	return DisabledStyle.Render(text)
}
