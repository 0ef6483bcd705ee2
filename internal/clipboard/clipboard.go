// Package clipboard holds the ways copycode can place text on the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	atotto "github.com/atotto/clipboard"
	"os/exec"
	"runtime"
	"sync"
)

// ErrUnavailable is returned when no clipboard mechanism could be found
var ErrUnavailable = errors.New("no clipboard available")

// Writer places text on a clipboard
type Writer interface {
	Write(text string) error
}

// System writes through atotto/clipboard
type System struct{}

func (System) Write(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	return atotto.WriteAll(text)
}

type candidate struct {
	cmd  string
	args []string
}

// Exec pipes text into the first clipboard tool found on PATH
type Exec struct {
	lookPath func(string) (string, error)
	run      func(path string, args []string, stdin []byte) error
}

func NewExec() Exec {
	return Exec{
		lookPath: exec.LookPath,
		run: func(path string, args []string, stdin []byte) error {
			cmd := exec.Command(path, args...)
			cmd.Stdin = bytes.NewReader(stdin)
			return cmd.Run()
		},
	}
}

func (e Exec) candidates() []candidate {
	c := []candidate{
		{cmd: "pbcopy"},
		{cmd: "wl-copy"},
		{cmd: "xclip", args: []string{"-selection", "clipboard"}},
		{cmd: "xsel", args: []string{"--clipboard", "--input"}},
	}
	if runtime.GOOS == "windows" {
		c = append([]candidate{{cmd: "clip"}}, c...)
	}
	return c
}

func (e Exec) Write(text string) error {
	var lastErr error
	for _, cand := range e.candidates() {
		path, err := e.lookPath(cand.cmd)
		if err != nil {
			continue
		}
		if err := e.run(path, cand.args, []byte(text)); err != nil {
			lastErr = fmt.Errorf("%s: %w", cand.cmd, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return ErrUnavailable
}

type fallback []Writer

// Fallback tries each writer in order until one succeeds
func Fallback(writers ...Writer) Writer {
	return fallback(writers)
}

func (f fallback) Write(text string) error {
	err := ErrUnavailable
	for _, w := range f {
		if err = w.Write(text); err == nil {
			return nil
		}
	}
	return err
}

// Memory keeps written text in memory. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	writes []string
	err    error
}

// FailWith makes subsequent writes return err. A nil err clears it.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, text)
	return nil
}

// Last returns the most recently written text
func (m *Memory) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return "", false
	}
	return m.writes[len(m.writes)-1], true
}

func (m *Memory) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.writes...)
}

// New returns the writer for a backend name: system, exec, memory, or auto
func New(backend string) (Writer, error) {
	switch backend {
	case "system":
		return System{}, nil
	case "exec":
		return NewExec(), nil
	case "memory":
		return &Memory{}, nil
	case "", "auto":
		return Fallback(System{}, NewExec()), nil
	}
	return nil, fmt.Errorf("unknown clipboard backend %q", backend)
}
