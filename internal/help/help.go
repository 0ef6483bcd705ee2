package help

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/copycode/internal/keymap"
)

func MakeHelp(keyMap keymap.KeyMap, keyColStyle lipgloss.Style) string {
	title := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Render("Help (press any key to hide)")
	return lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		formatColumn(keymap.HelpKeyBindings(keyMap), keyColStyle),
	)
}

func formatColumn(bindings []key.Binding, keyColStyle lipgloss.Style) string {
	var keys []string
	var help []string
	for _, b := range bindings {
		k := b.Help().Key
		if len(k) > 0 {
			keys = append(keys, " "+k+" ")
		} else {
			keys = append(keys, "")
		}

		d := b.Help().Desc
		if len(d) > 0 {
			help = append(help, " "+d)
		} else {
			help = append(help, "")
		}
	}
	keyCol := keyColStyle.Render(lipgloss.JoinVertical(lipgloss.Right, keys...))
	helpCol := lipgloss.JoinVertical(lipgloss.Left, help...)
	return lipgloss.JoinHorizontal(lipgloss.Left, keyCol, helpCol)
}
