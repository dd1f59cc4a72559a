package chrome

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTimerID int64

// ExpiredMsg is delivered when a Timer's deadline passes.
type ExpiredMsg struct {
	ID  int64
	Tag int
}

// Timer is an owned, cancellable deferred action. Restarting or stopping
// it turns any expiration already in flight into a stale message, so at
// most one expiration per timer is ever honoured.
type Timer struct {
	id      int64
	tag     int
	d       time.Duration
	pending bool
}

func NewTimer(d time.Duration) *Timer {
	return &Timer{
		id: atomic.AddInt64(&lastTimerID, 1),
		d:  d,
	}
}

func (t *Timer) Duration() time.Duration {
	return t.d
}

func (t *Timer) SetDuration(d time.Duration) {
	t.d = d
}

// Pending reports whether the timer is armed.
func (t *Timer) Pending() bool {
	return t.pending
}

// Start arms (or re-arms) the timer.
func (t *Timer) Start() tea.Cmd {
	t.tag++
	t.pending = true
	id, tag := t.id, t.tag
	return tea.Tick(t.d, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id, Tag: tag}
	})
}

func (t *Timer) Stop() {
	t.tag++
	t.pending = false
}

// Fired consumes msg and reports whether it is this timer's live
// expiration.
func (t *Timer) Fired(msg ExpiredMsg) bool {
	if msg.ID != t.id || msg.Tag != t.tag || !t.pending {
		return false
	}
	t.pending = false
	return true
}
