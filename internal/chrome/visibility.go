// Package chrome decides when the header and footer around the page are
// shown. Chrome shows on pointer movement and fades once the writer goes
// idle or starts typing.
package chrome

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultIdleHide   = 4000 * time.Millisecond
	DefaultTypingHide = 2000 * time.Millisecond
)

type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// Event reports what an expiration changed.
type Event int

const (
	NoEvent Event = iota
	// BecameHidden fires when chrome transitions to Hidden.
	BecameHidden
	// TypingPaused fires when no keystroke arrived for the typing delay.
	TypingPaused
)

// Controller owns three timers: the idle timer restarted by pointer
// movement, the hide timer armed by a keystroke while chrome is visible,
// and the typing timer that tracks whether the writer is mid-burst.
type Controller struct {
	state  Visibility
	idle   *Timer
	hide   *Timer
	typing *Timer
}

func NewController(idleHide, typingHide time.Duration) *Controller {
	if idleHide <= 0 {
		idleHide = DefaultIdleHide
	}
	if typingHide <= 0 {
		typingHide = DefaultTypingHide
	}
	return &Controller{
		state:  Visible,
		idle:   NewTimer(idleHide),
		hide:   NewTimer(typingHide),
		typing: NewTimer(typingHide),
	}
}

func (c *Controller) State() Visibility {
	return c.state
}

func (c *Controller) Visible() bool {
	return c.state == Visible
}

// Typing reports whether a keystroke arrived within the typing delay.
func (c *Controller) Typing() bool {
	return c.typing.Pending()
}

// PointerMoved shows chrome, cancels a pending typing hide and restarts
// the idle countdown.
func (c *Controller) PointerMoved() tea.Cmd {
	c.state = Visible
	c.hide.Stop()
	return c.idle.Start()
}

// Keystroke records a content keystroke. While chrome is visible it also
// (re)arms the hide timer.
func (c *Controller) Keystroke() tea.Cmd {
	cmds := []tea.Cmd{c.typing.Start()}
	if c.state == Visible {
		cmds = append(cmds, c.hide.Start())
	}
	return tea.Batch(cmds...)
}

// Show forces chrome visible without arming any timer, e.g. while a
// dialog needs the footer.
func (c *Controller) Show() {
	c.state = Visible
	c.hide.Stop()
}

// Expire applies a timer expiration. hasContent reports whether the draft
// currently holds any text. Stale or foreign messages yield NoEvent.
func (c *Controller) Expire(msg ExpiredMsg, hasContent bool) Event {
	switch {
	case c.idle.Fired(msg):
		if c.state == Visible && (c.Typing() || hasContent) {
			c.state = Hidden
			return BecameHidden
		}
	case c.hide.Fired(msg):
		if c.state == Visible {
			c.state = Hidden
			return BecameHidden
		}
	case c.typing.Fired(msg):
		return TypingPaused
	}
	return NoEvent
}
