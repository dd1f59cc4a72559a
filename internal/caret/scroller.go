package caret

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	fps       = 60
	frequency = 7.0
	damping   = 1.0
	settled   = 0.5
)

var lastScrollerID int64

// FrameMsg advances a running scroll animation by one frame.
type FrameMsg struct {
	ID  int64
	Tag int
}

// Scroller animates a scroll offset toward a target with a critically
// damped spring. At most one frame is pending at a time; a new target
// redirects the running animation.
type Scroller struct {
	id     int64
	tag    int
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	active bool
}

func NewScroller() *Scroller {
	return &Scroller{
		id:     atomic.AddInt64(&lastScrollerID, 1),
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Active reports whether an animation is in flight.
func (s *Scroller) Active() bool {
	return s.active
}

func (s *Scroller) Target() int {
	return int(math.Round(s.target))
}

// ScrollTo starts or redirects the animation from the current offset.
func (s *Scroller) ScrollTo(current int, target float64) tea.Cmd {
	s.target = target
	if s.active {
		return nil
	}
	s.pos = float64(current)
	s.vel = 0
	s.active = true
	return s.frame()
}

// Stop abandons the animation; pending frames become stale.
func (s *Scroller) Stop() {
	s.active = false
	s.tag++
}

// Update consumes a frame and returns the new offset. ok is false for
// frames that belong to another scroller or to an abandoned animation.
func (s *Scroller) Update(msg FrameMsg) (offset int, cmd tea.Cmd, ok bool) {
	if msg.ID != s.id || msg.Tag != s.tag || !s.active {
		return 0, nil, false
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settled && math.Abs(s.vel) < settled {
		s.pos = s.target
		s.vel = 0
		s.active = false
		return int(math.Round(s.pos)), nil, true
	}
	return int(math.Round(s.pos)), s.frame(), true
}

func (s *Scroller) frame() tea.Cmd {
	s.tag++
	id, tag := s.id, s.tag
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag}
	})
}
