package style

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/robinovitch61/copycode/internal/dev"
)

var (
	subtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	accent = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"}
	danger = lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"}
)

func DebugColors() {
	if !dev.Enabled() {
		return
	}
	output := termenv.DefaultOutput()
	dev.Debug(fmt.Sprintf("has dark background: %t", output.HasDarkBackground()))
	dev.Debug(fmt.Sprintf("color profile: %v", output.Profile))
}

var (
	Regular       = lipgloss.NewStyle()
	Bold          = Regular.Bold(true)
	Inverse       = Regular.Reverse(true)
	Subtle        = Regular.Foreground(subtle)
	BlockTitle    = Bold
	BlockSelected = Regular.Border(lipgloss.ThickBorder(), false, false, false, true).BorderForeground(accent).PaddingLeft(1)
	BlockIdle     = Regular.Border(lipgloss.HiddenBorder(), false, false, false, true).PaddingLeft(1)
	// Copied marks a block whose text was just copied
	Copied       = Bold.Foreground(accent)
	ToastSuccess = Inverse.Foreground(accent).Padding(0, 1)
	ToastError   = Inverse.Foreground(danger).Padding(0, 1)
	KeyHelpStyle = Bold.Underline(true)
)
