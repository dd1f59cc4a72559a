package chrome

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expiry(t *Timer) ExpiredMsg {
	return ExpiredMsg{ID: t.id, Tag: t.tag}
}

func TestInitiallyVisible(t *testing.T) {
	c := NewController(0, 0)
	assert.True(t, c.Visible())
	assert.Equal(t, DefaultIdleHide, c.idle.Duration())
	assert.Equal(t, DefaultTypingHide, c.hide.Duration())
}

func TestIdleHidesOnlyWithContent(t *testing.T) {
	c := NewController(time.Second, time.Second)

	require.NotNil(t, c.PointerMoved())
	assert.Equal(t, NoEvent, c.Expire(expiry(c.idle), false))
	assert.True(t, c.Visible(), "empty page keeps chrome")

	c.PointerMoved()
	assert.Equal(t, BecameHidden, c.Expire(expiry(c.idle), true))
	assert.False(t, c.Visible())
}

func TestIdleHidesWhileTyping(t *testing.T) {
	c := NewController(time.Second, time.Second)
	c.PointerMoved()
	c.Keystroke()
	c.hide.Stop()

	assert.Equal(t, BecameHidden, c.Expire(expiry(c.idle), false))
}

func TestKeystrokeWhileVisibleHides(t *testing.T) {
	c := NewController(time.Second, time.Second)
	require.NotNil(t, c.Keystroke())
	require.True(t, c.hide.Pending())

	assert.Equal(t, BecameHidden, c.Expire(expiry(c.hide), false))
	assert.Equal(t, Hidden, c.State())
}

func TestKeystrokeWhileHiddenDoesNotArmHide(t *testing.T) {
	c := NewController(time.Second, time.Second)
	c.state = Hidden

	c.Keystroke()
	assert.False(t, c.hide.Pending())
	assert.True(t, c.Typing())
}

func TestRestartedTimerIgnoresOldExpiry(t *testing.T) {
	c := NewController(time.Second, time.Second)
	c.Keystroke()
	old := expiry(c.hide)
	c.Keystroke()

	assert.Equal(t, NoEvent, c.Expire(old, true))
	assert.True(t, c.Visible())
	assert.Equal(t, BecameHidden, c.Expire(expiry(c.hide), true))
}

func TestPointerCancelsPendingHide(t *testing.T) {
	c := NewController(time.Second, time.Second)
	c.Keystroke()
	pending := expiry(c.hide)

	c.PointerMoved()
	assert.Equal(t, NoEvent, c.Expire(pending, true))
	assert.True(t, c.Visible())
}

func TestPointerShowsHiddenChrome(t *testing.T) {
	c := NewController(time.Second, time.Second)
	c.Keystroke()
	c.Expire(expiry(c.hide), true)
	require.False(t, c.Visible())

	c.PointerMoved()
	assert.True(t, c.Visible())
	assert.True(t, c.idle.Pending())
}

func TestTypingPause(t *testing.T) {
	c := NewController(time.Second, time.Second)
	c.Keystroke()
	require.True(t, c.Typing())

	assert.Equal(t, TypingPaused, c.Expire(expiry(c.typing), true))
	assert.False(t, c.Typing())
}

func TestTimerFiresOnce(t *testing.T) {
	tm := NewTimer(time.Millisecond)
	tm.Start()
	msg := expiry(tm)
	assert.True(t, tm.Fired(msg))
	assert.False(t, tm.Fired(msg))

	other := NewTimer(time.Millisecond)
	other.Start()
	assert.False(t, tm.Fired(expiry(other)))
}
