package copyaction

import (
	"github.com/robinovitch61/copycode/internal/clipboard"
	"github.com/robinovitch61/copycode/internal/dev"
	"github.com/robinovitch61/copycode/internal/feedback"
	"github.com/robinovitch61/copycode/internal/payload"
	"github.com/sirupsen/logrus"
	"time"
)

// DefaultDelay is how long an element shows as copied
const DefaultDelay = 2000 * time.Millisecond

// Element is a copyable block on the page. Payload is stored with newlines escaped as payload.Marker.
type Element struct {
	ID      string
	Title   string
	Payload string
}

func (e Element) Text() string {
	return payload.Decode(e.Payload)
}

type Config struct {
	Delay time.Duration
	// RequireSuccess keeps the copied state off when the clipboard write fails
	RequireSuccess bool
	// SupersedeStale ignores resets from activations that a later copy replaced
	SupersedeStale bool
}

func DefaultConfig() Config {
	return Config{
		Delay:          DefaultDelay,
		RequireSuccess: false,
		SupersedeStale: true,
	}
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

type Result struct {
	Text       string
	Activation feedback.Activation
	// Activated is false only when RequireSuccess is set and the write failed
	Activated bool
	Err       error
}

type Handler struct {
	config    Config
	writer    clipboard.Writer
	store     feedback.Store
	scheduler Scheduler
}

func NewHandler(config Config, writer clipboard.Writer, store feedback.Store) *Handler {
	if config.Delay <= 0 {
		config.Delay = DefaultDelay
	}
	return &Handler{
		config:    config,
		writer:    writer,
		store:     store,
		scheduler: timerScheduler{},
	}
}

func (h *Handler) WithScheduler(s Scheduler) *Handler {
	h.scheduler = s
	return h
}

func (h *Handler) Delay() time.Duration {
	return h.config.Delay
}

func (h *Handler) Copied(elementID string) bool {
	return h.store.Copied(elementID)
}

// Trigger writes the element's text to the clipboard and turns on its copied state. It does not schedule
// the reset: callers either use Copy or apply a ResetMsg after Delay.
func (h *Handler) Trigger(el Element) Result {
	res := Result{Text: el.Text()}
	res.Err = h.writer.Write(res.Text)
	if res.Err != nil {
		dev.DebugFields("clipboard write failed", logrus.Fields{"element": el.ID, "error": res.Err})
		if h.config.RequireSuccess {
			return res
		}
	}
	res.Activation = h.store.Activate(el.ID)
	res.Activated = true
	dev.DebugFields("copied", logrus.Fields{"element": el.ID, "token": res.Activation.Token, "bytes": len(res.Text)})
	return res
}

// Copy is Trigger followed by a reset scheduled Delay later
func (h *Handler) Copy(el Element) Result {
	res := h.Trigger(el)
	if res.Activated {
		a := res.Activation
		h.scheduler.AfterFunc(h.config.Delay, func() { h.Reset(a) })
	}
	return res
}

// Reset turns off the copied state for a, reporting whether anything changed
func (h *Handler) Reset(a feedback.Activation) bool {
	if !h.config.SupersedeStale {
		return h.store.Clear(a.ElementID)
	}
	if !h.store.Expire(a) {
		dev.DebugFields("reset ignored, stale or already cleared", logrus.Fields{"element": a.ElementID, "token": a.Token})
		return false
	}
	return true
}
