package toast

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/copycode/internal/dev"
	"sync"
	"time"
)

var (
	lastID int
	idMtx  sync.Mutex
)

type Model struct {
	ID           int
	message      string
	Visible      bool
	messageStyle lipgloss.Style
}

func New(message string, messageStyle lipgloss.Style) Model {
	return Model{
		ID:           nextID(),
		message:      message,
		Visible:      true,
		messageStyle: messageStyle,
	}
}

// Show replaces m with a visible toast for message, hidden again after d
func Show(message string, messageStyle lipgloss.Style, d time.Duration) (Model, tea.Cmd) {
	t := New(message, messageStyle)
	id := t.ID
	return t, tea.Tick(d, func(time.Time) tea.Msg { return TimeoutMsg{ID: id} })
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	dev.DebugMsg("Toast", msg)
	switch msg := msg.(type) {
	case TimeoutMsg:
		if msg.ID > 0 && msg.ID != m.ID {
			return m, nil
		}
		m.Visible = false
	}
	return m, nil
}

func (m Model) View() string {
	if m.Visible {
		return m.messageStyle.Render(m.message)
	}
	return ""
}

func (m Model) ViewHeight() int {
	if !m.Visible {
		return 0
	}
	return lipgloss.Height(m.View())
}

type TimeoutMsg struct {
	ID int
}

func nextID() int {
	idMtx.Lock()
	defer idMtx.Unlock()
	lastID++
	return lastID
}
