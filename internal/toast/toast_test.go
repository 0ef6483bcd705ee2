package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/copycode/internal/util"
	"testing"
	"time"
)

func TestTimeoutHidesToast(t *testing.T) {
	m, cmd := Show("Copied", lipgloss.NewStyle(), time.Second)
	if cmd == nil {
		t.Fatal("expected timeout command")
	}
	util.CmpStr(t, "Copied", m.View())
	if m.ViewHeight() != 1 {
		t.Errorf("expected height 1, got %d", m.ViewHeight())
	}
	m, _ = m.Update(TimeoutMsg{ID: m.ID})
	util.CmpStr(t, "", m.View())
	if m.ViewHeight() != 0 {
		t.Errorf("expected height 0, got %d", m.ViewHeight())
	}
}

func TestStaleTimeoutIgnored(t *testing.T) {
	first := New("first", lipgloss.NewStyle())
	second := New("second", lipgloss.NewStyle())
	if first.ID == second.ID {
		t.Fatal("expected unique ids")
	}
	second, _ = second.Update(TimeoutMsg{ID: first.ID})
	if !second.Visible {
		t.Error("expected toast to stay visible after stale timeout")
	}
}
