package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Rorical/ZenPad/internal/caret"
	"github.com/Rorical/ZenPad/internal/chrome"
	"github.com/Rorical/ZenPad/internal/config"
	"github.com/Rorical/ZenPad/internal/editor"
	"github.com/Rorical/ZenPad/internal/layout"
	"github.com/Rorical/ZenPad/internal/models"
	"github.com/Rorical/ZenPad/ui/components"
	"github.com/Rorical/ZenPad/ui/styles"
)

const (
	HeaderRows = 2
	FooterRows = 2

	topPad     = 1
	pageMargin = 4
	minWrap    = 16
	titleLimit = 120

	flashDuration = 3 * time.Second
)

// NewAppModel builds the UI state for a loaded draft. The size is zero
// until the first WindowSizeMsg arrives.
func NewAppModel(cfg *config.Config, d models.Draft) *models.AppModel {
	d = d.Normalized()
	d.Content = cleanInput(d.Content)

	buf := editor.NewBuffer(d.Content)
	block := editor.NewBlock(buf, cfg.Editor.ReadingWidth, cfg.Editor.LineSpacing)
	page := editor.NewPage(block)
	page.SetPadding(topPad, 0)

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = models.DefaultTitle
	title.CharLimit = titleLimit
	title.TextStyle = styles.TitleStyle()
	title.SetValue(d.Title)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.ThinkingStyle()

	m := &models.AppModel{
		Draft:        d,
		Buffer:       buf,
		Block:        block,
		Page:         page,
		Layout:       layout.NewEngine(block, page),
		Viewport:     viewport.New(0, 0),
		Preview:      viewport.New(0, 0),
		TitleInput:   title,
		Spinner:      sp,
		Help:         help.New(),
		Chrome:       chrome.NewController(cfg.IdleHide(), cfg.TypingHide()),
		Scroller:     caret.NewScroller(),
		Tracker:      caret.NewTracker(cfg.Editor.ScrollThreshold, cfg.Editor.ScrollTarget),
		FlashTimer:   chrome.NewTimer(flashDuration),
		Status:       models.Idle,
		Online:       cfg.IsValid(),
		Focus:        models.FocusEditor,
		FontSize:     config.ClampFontSize(cfg.Editor.FontSize),
		ReadingWidth: cfg.Editor.ReadingWidth,
		ExportDir:    cfg.ExportDirectory(),
	}

	// Keep the viewport's content as tall as the page at every step of a
	// recompute, so its offset is never clamped by a transient shrink.
	page.OnReflow(func(height int) {
		if height != m.PageRows {
			SyncViewport(m)
		}
	})
	Relayout(m)
	return m
}

// WrapWidth is the writing column for a font size: larger type means fewer
// cells per row, as fewer glyphs fit a fixed reading measure.
func WrapWidth(readingWidth, fontSize, termWidth int) int {
	w := readingWidth * config.MinFontSize / config.ClampFontSize(fontSize)
	if termWidth > 0 {
		w = min(w, termWidth-pageMargin)
	}
	return max(w, minWrap)
}

// SyncViewport renders the page into the viewport.
func SyncViewport(m *models.AppModel) {
	showCaret := m.Focus == models.FocusEditor && m.PendingConfirmation == nil
	m.Viewport.SetContent(components.RenderPage(m.Page, showCaret, m.Width))
	m.PageRows = m.Page.Height()
}

// Relayout remeasures the block and redraws the page.
func Relayout(m *models.AppModel) {
	m.Layout.Recompute()
	SyncViewport(m)
}

// Resize fits every region to the terminal size.
func Resize(m *models.AppModel, width, height int) {
	m.Width = width
	m.Height = height

	bodyHeight := max(height-HeaderRows-FooterRows, 1)
	m.Viewport.Width = width
	m.Viewport.Height = bodyHeight
	m.Preview.Width = width
	m.Preview.Height = bodyHeight
	m.Help.Width = max(width-pageMargin, 0)
	m.TitleInput.Width = max(width/2, minWrap)

	m.Block.SetWidth(WrapWidth(m.ReadingWidth, m.FontSize, width))
	// the last line can scroll up to the middle of the screen
	m.Page.SetPadding(topPad, bodyHeight/2)
	Relayout(m)
}

// cleanInput turns pasted or loaded text into what the page can show:
// tabs become spaces and carriage returns are dropped.
func cleanInput(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\t", "    ")
}
