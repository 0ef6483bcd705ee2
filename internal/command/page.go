package command

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/copycode/internal/copyaction"
	"github.com/robinovitch61/copycode/internal/message"
	"github.com/robinovitch61/copycode/internal/source"
)

type PageLoadedMsg struct {
	Path     string
	Elements []copyaction.Element
}

func LoadPageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		elements, err := source.Load(path)
		if err != nil {
			return message.ErrMsg{Err: err}
		}
		return PageLoadedMsg{Path: path, Elements: elements}
	}
}
