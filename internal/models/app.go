package models

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Rorical/ZenPad/internal/caret"
	"github.com/Rorical/ZenPad/internal/chrome"
	"github.com/Rorical/ZenPad/internal/editor"
	"github.com/Rorical/ZenPad/internal/layout"
)

// Focus selects which input receives keystrokes.
type Focus int

const (
	FocusEditor Focus = iota
	FocusTitle
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
)

// ConfirmationRequest is a yes/no question blocking other input.
type ConfirmationRequest struct {
	Prompt string
	Action ConfirmAction
}

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Draft Draft

	Buffer *editor.Buffer
	Block  *editor.Block
	Page   *editor.Page
	Layout *layout.Engine

	Viewport   viewport.Model // scrolls the page
	Preview    viewport.Model // scrolls the rendered markdown
	TitleInput textinput.Model
	Spinner    spinner.Model
	Help       help.Model

	Chrome     *chrome.Controller
	Scroller   *caret.Scroller
	Tracker    caret.Tracker
	FlashTimer *chrome.Timer

	Status       AppStatus // Mirrors core, plus Writing while typing
	Online       bool      // Whether suggestions reach a real model
	Focus        Focus
	FontSize     int
	ReadingWidth int
	Fullscreen   bool
	Previewing   bool
	ShowFullHelp bool
	ExportDir    string

	Flash      string
	FlashError bool

	Width  int // Terminal width
	Height int // Terminal height

	PendingConfirmation *ConfirmationRequest
	PageRows            int // Page height last pushed into the viewport
}
