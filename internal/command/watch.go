package command

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/robinovitch61/copycode/internal/message"
	"path/filepath"
)

type PageWatchStartedMsg struct {
	Watcher *fsnotify.Watcher
}

type PageChangedMsg struct {
	Path string
}

// StartPageWatchCmd watches the directory holding path, since editors often replace files rather than write them
func StartPageWatchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return message.ErrMsg{Err: err}
		}
		if err := w.Add(filepath.Dir(path)); err != nil {
			_ = w.Close()
			return message.ErrMsg{Err: err}
		}
		return PageWatchStartedMsg{Watcher: w}
	}
}

// WaitForPageChangeCmd blocks until path is written or recreated
func WaitForPageChangeCmd(w *fsnotify.Watcher, path string) tea.Cmd {
	target := filepath.Clean(path)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) == target && ev.Has(fsnotify.Write|fsnotify.Create) {
					return PageChangedMsg{Path: path}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return message.ErrMsg{Err: err}
			}
		}
	}
}
