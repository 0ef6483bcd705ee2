package color

import (
	"github.com/charmbracelet/lipgloss"
	"hash/fnv"
	"strings"
)

var langColors = []lipgloss.Color{
	lipgloss.Color("#58A2EE"), // blue
	lipgloss.Color("#7c60d7"), // purple
	lipgloss.Color("#FE7A00"), // orange
	lipgloss.Color("#56EBD3"), // teal
	lipgloss.Color("#FE16F4"), // bright pink
	lipgloss.Color("#D6A112"), // gold
	lipgloss.Color("#FF7E6A"), // tomato
}

// LangColor picks a stable color for a block's language label, ignoring case
func LangColor(lang string) lipgloss.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(lang)))
	return langColors[h.Sum32()%uint32(len(langColors))]
}
