// Package layout keeps an auto-growing block at its natural content height
// without letting the surrounding container collapse while it is measured.
package layout

// Element is a block whose height follows its content.
type Element interface {
	// Height is the last committed height.
	Height() int
	// ResetHeight returns the element to its intrinsic (auto) height.
	ResetHeight()
	// ScrollHeight is the natural content height while the height is auto.
	ScrollHeight() int
	SetHeight(h int)
}

// Container wraps an Element and provides an independent height floor.
type Container interface {
	MinHeight() int
	SetMinHeight(h int)
}

// Engine runs the pin, measure, commit sequence on an element and the
// container around it.
type Engine struct {
	element   Element
	container Container
}

func NewEngine(element Element, container Container) *Engine {
	return &Engine{
		element:   element,
		container: container,
	}
}

// Recompute sizes the element to its content and returns the new height.
// The container floor is pinned to the previous height before the element
// is reset, so the container never reads shorter than that height until
// the new one is committed.
func (e *Engine) Recompute() int {
	// pin
	e.container.SetMinHeight(e.element.Height())

	// measure
	e.element.ResetHeight()
	h := e.element.ScrollHeight()

	// commit
	e.element.SetHeight(h)
	e.container.SetMinHeight(h)
	return h
}
