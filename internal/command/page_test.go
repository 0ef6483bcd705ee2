package command

import (
	"github.com/robinovitch61/copycode/internal/message"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPageCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte(`<button data-code="a<br /> b">copy</button>`), 0644); err != nil {
		t.Fatal(err)
	}
	msg, ok := LoadPageCmd(path)().(PageLoadedMsg)
	if !ok {
		t.Fatal("expected PageLoadedMsg")
	}
	if msg.Path != path || len(msg.Elements) != 1 || msg.Elements[0].Text() != "a\nb" {
		t.Errorf("unexpected msg %+v", msg)
	}
}

func TestLoadPageCmdMissing(t *testing.T) {
	if _, ok := LoadPageCmd(filepath.Join(t.TempDir(), "nope.html"))().(message.ErrMsg); !ok {
		t.Error("expected ErrMsg")
	}
}
