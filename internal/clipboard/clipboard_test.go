package clipboard

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os/exec"
	"testing"
)

type failing struct{ err error }

func (f failing) Write(string) error { return f.err }

func TestMemory(t *testing.T) {
	m := &Memory{}
	_, ok := m.Last()
	assert.False(t, ok)

	require.NoError(t, m.Write("one"))
	require.NoError(t, m.Write("two"))
	last, ok := m.Last()
	assert.True(t, ok)
	assert.Equal(t, "two", last)

	boom := errors.New("boom")
	m.FailWith(boom)
	assert.ErrorIs(t, m.Write("three"), boom)
	assert.Equal(t, []string{"one", "two"}, m.Writes())

	m.FailWith(nil)
	require.NoError(t, m.Write("three"))
	assert.Equal(t, []string{"one", "two", "three"}, m.Writes())
}

func TestFallback(t *testing.T) {
	boom := errors.New("boom")

	m := &Memory{}
	require.NoError(t, Fallback(failing{boom}, m).Write("text"))
	last, _ := m.Last()
	assert.Equal(t, "text", last)

	other := errors.New("other")
	assert.ErrorIs(t, Fallback(failing{boom}, failing{other}).Write("text"), other)
	assert.ErrorIs(t, Fallback().Write("text"), ErrUnavailable)
}

func TestExec(t *testing.T) {
	var ran []string
	var stdin string
	e := Exec{
		lookPath: func(cmd string) (string, error) {
			if cmd == "xclip" || cmd == "xsel" {
				return "/usr/bin/" + cmd, nil
			}
			return "", exec.ErrNotFound
		},
		run: func(path string, args []string, in []byte) error {
			ran = append(ran, path)
			if path == "/usr/bin/xclip" {
				return errors.New("no display")
			}
			stdin = string(in)
			return nil
		},
	}
	require.NoError(t, e.Write("a\nb"))
	assert.Equal(t, []string{"/usr/bin/xclip", "/usr/bin/xsel"}, ran)
	assert.Equal(t, "a\nb", stdin)
}

func TestExecUnavailable(t *testing.T) {
	e := Exec{
		lookPath: func(string) (string, error) { return "", exec.ErrNotFound },
	}
	assert.ErrorIs(t, e.Write("text"), ErrUnavailable)
}

func TestExecAllFail(t *testing.T) {
	e := Exec{
		lookPath: func(cmd string) (string, error) { return "/bin/" + cmd, nil },
		run:      func(string, []string, []byte) error { return errors.New("exit status 1") },
	}
	err := e.Write("text")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestNew(t *testing.T) {
	for _, backend := range []string{"", "auto", "system", "exec", "memory"} {
		w, err := New(backend)
		require.NoError(t, err, backend)
		assert.NotNil(t, w, backend)
	}
	_, err := New("carrier-pigeon")
	assert.Error(t, err)
}
