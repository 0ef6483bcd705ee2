package copyaction

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/copycode/internal/feedback"
	"time"
)

type CopiedMsg struct {
	Element Element
	Result  Result
}

type ResetMsg struct {
	Activation feedback.Activation
}

func (h *Handler) CopyCmd(el Element) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Element: el, Result: h.Trigger(el)}
	}
}

// ResetCmd fires a ResetMsg for the result's activation after the handler's delay
func (h *Handler) ResetCmd(res Result) tea.Cmd {
	if !res.Activated {
		return nil
	}
	a := res.Activation
	return tea.Tick(h.config.Delay, func(t time.Time) tea.Msg { return ResetMsg{Activation: a} })
}
