// Package caret implements typewriter scrolling: once the caret drifts
// into the lower part of the screen the view glides back so the caret sits
// near the middle.
package caret

// LineHeightFactor is applied to the font size when no line height can be
// measured.
const LineHeightFactor = 1.5

const (
	DefaultTrigger = 0.75
	DefaultTarget  = 0.5
)

// Metrics describes the editor geometry at the time of evaluation. All
// values share one unit (rows in the terminal, pixels elsewhere).
type Metrics struct {
	// LineHeight is the measured height of one line; zero or less means
	// unavailable.
	LineHeight float64
	FontSize   float64
	// EditorTop is the top of the editor relative to the viewport.
	EditorTop      float64
	ScrollTop      float64
	ViewportHeight float64
}

// EffectiveLineHeight returns the measured line height or the font based
// fallback.
func (m Metrics) EffectiveLineHeight() float64 {
	if m.LineHeight > 0 {
		return m.LineHeight
	}
	return m.FontSize * LineHeightFactor
}

// Decision is the outcome of one evaluation.
type Decision struct {
	// CaretY is the caret position in document coordinates.
	CaretY float64
	Scroll bool
	Target float64
}

// Tracker holds the tunable thresholds as fractions of the viewport height.
type Tracker struct {
	Trigger float64
	Target  float64
}

func NewTracker(trigger, target float64) Tracker {
	if trigger <= 0 || trigger > 1 {
		trigger = DefaultTrigger
	}
	if target < 0 || target > 1 {
		target = DefaultTarget
	}
	return Tracker{Trigger: trigger, Target: target}
}

// CaretY converts a line index into a document coordinate.
func (t Tracker) CaretY(line int, m Metrics) float64 {
	return float64(line)*m.EffectiveLineHeight() + m.EditorTop + m.ScrollTop
}

// Follow decides whether the caret on the given line has passed the
// trigger line and, if so, where the view should scroll so the caret lands
// on the target line.
func (t Tracker) Follow(line int, m Metrics) Decision {
	y := t.CaretY(line, m)
	d := Decision{CaretY: y}
	if y > m.ScrollTop+m.ViewportHeight*t.Trigger {
		d.Scroll = true
		d.Target = max(y-m.ViewportHeight*t.Target, 0)
	}
	return d
}

// Reveal handles the opposite case: the caret moved above the top of the
// view, for example after jumping to the start of the text.
func (t Tracker) Reveal(line int, m Metrics) Decision {
	y := t.CaretY(line, m)
	d := Decision{CaretY: y}
	if y < m.ScrollTop {
		d.Scroll = true
		d.Target = max(y-m.ViewportHeight*t.Target, 0)
	}
	return d
}
