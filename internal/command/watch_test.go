package command

import (
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchPage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<p></p>"), 0644))

	started, ok := StartPageWatchCmd(path)().(PageWatchStartedMsg)
	require.True(t, ok)
	defer started.Watcher.Close()

	msgs := make(chan any, 1)
	go func() { msgs <- WaitForPageChangeCmd(started.Watcher, path)() }()

	// changes to other files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte(`<button data-code="x">copy</button>`), 0644))

	select {
	case msg := <-msgs:
		require.Equal(t, PageChangedMsg{Path: path}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for page change")
	}
}
