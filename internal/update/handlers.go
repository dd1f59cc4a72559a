package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ZenPad/internal/chrome"
	"github.com/Rorical/ZenPad/internal/config"
	"github.com/Rorical/ZenPad/internal/eventbus"
	"github.com/Rorical/ZenPad/internal/models"
)

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(m *models.AppModel, msg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if key.Matches(msg, Keys.Quit) {
		return tea.Quit
	}
	if m.PendingConfirmation != nil {
		return handleConfirmation(m, msg, eb)
	}
	if m.ShowFullHelp {
		m.ShowFullHelp = false
		return nil
	}

	switch {
	case key.Matches(msg, Keys.Help):
		m.ShowFullHelp = true
		return nil
	case key.Matches(msg, Keys.Continue):
		return RequestSuggestion(m, eb, models.Continuation)
	case key.Matches(msg, Keys.SuggestTitle):
		return RequestSuggestion(m, eb, models.TitleSuggestion)
	case key.Matches(msg, Keys.FocusTitle):
		return toggleTitleFocus(m)
	case key.Matches(msg, Keys.Export):
		return exportCmd(m.ExportDir, m.Draft)
	case key.Matches(msg, Keys.Fullscreen):
		return toggleFullscreen(m)
	case key.Matches(msg, Keys.Preview):
		return togglePreview(m)
	case key.Matches(msg, Keys.Clear):
		askClear(m)
		return nil
	case key.Matches(msg, Keys.FontUp):
		return changeFontSize(m, config.FontSizeStep)
	case key.Matches(msg, Keys.FontDown):
		return changeFontSize(m, -config.FontSizeStep)
	}

	if msg.Type == tea.KeyEsc {
		switch {
		case m.Previewing:
			return togglePreview(m)
		case m.Focus == models.FocusTitle:
			return focusEditor(m)
		}
		return nil
	}

	if m.Focus == models.FocusTitle {
		return handleTitleKey(m, msg, eb)
	}
	if m.Previewing {
		var cmd tea.Cmd
		m.Preview, cmd = m.Preview.Update(msg)
		return cmd
	}

	changed, handled := handleEditorKey(m, msg)
	switch {
	case !handled:
		return nil
	case changed:
		return ContentChanged(m, eb, true)
	}
	// the caret moved; only edits count as typing
	SyncViewport(m)
	return followCaret()
}

func handleTitleKey(m *models.AppModel, msg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		return focusEditor(m)
	}
	before := m.TitleInput.Value()
	var cmd tea.Cmd
	m.TitleInput, cmd = m.TitleInput.Update(msg)
	if m.TitleInput.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, TitleChanged(m, eb))
}

func toggleTitleFocus(m *models.AppModel) tea.Cmd {
	if m.Focus == models.FocusTitle {
		return focusEditor(m)
	}
	m.Focus = models.FocusTitle
	m.Chrome.Show()
	SyncViewport(m)
	return m.TitleInput.Focus()
}

func focusEditor(m *models.AppModel) tea.Cmd {
	m.Focus = models.FocusEditor
	m.TitleInput.Blur()
	SyncViewport(m)
	return followCaret()
}

// RequestSuggestion asks core for a continuation or a title. Nothing is
// sent while a suggestion is outstanding or the draft is blank.
func RequestSuggestion(m *models.AppModel, eb *eventbus.EventBus, kind models.SuggestionKind) tea.Cmd {
	if m.Status == models.AiThinking || m.Buffer.IsBlank() {
		return nil
	}
	if err := eb.SendToCore(eventbus.SuggestEvent{Kind: kind, Content: m.Buffer.String()}); err != nil {
		return ShowFlash(m, "Suggestion unavailable: "+err.Error(), true)
	}
	m.Status = models.AiThinking
	return m.Spinner.Tick
}

func toggleFullscreen(m *models.AppModel) tea.Cmd {
	m.Fullscreen = !m.Fullscreen
	if m.Fullscreen {
		return tea.EnterAltScreen
	}
	return tea.ExitAltScreen
}

func togglePreview(m *models.AppModel) tea.Cmd {
	m.Previewing = !m.Previewing
	if !m.Previewing {
		SyncViewport(m)
		return followCaret()
	}
	m.Preview.SetContent("")
	return previewCmd(m.Draft, m.Block.Width())
}

func askClear(m *models.AppModel) {
	m.PendingConfirmation = &models.ConfirmationRequest{
		Prompt: "Clear the whole draft? This cannot be undone.",
		Action: models.ConfirmClear,
	}
	m.Chrome.Show()
	SyncViewport(m)
}

func handleConfirmation(m *models.AppModel, msg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	req := m.PendingConfirmation
	switch msg.String() {
	case "y", "Y", "enter":
		m.PendingConfirmation = nil
		switch req.Action {
		case models.ConfirmClear:
			return clearDraft(m, eb)
		}
	case "n", "N", "esc":
		m.PendingConfirmation = nil
		SyncViewport(m)
	}
	return nil
}

// clearDraft empties the content and resets the title.
func clearDraft(m *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	m.Buffer.SetText("")
	m.TitleInput.SetValue("")
	m.Draft.Title = models.DefaultTitle
	m.Scroller.Stop()
	m.Viewport.GotoTop()
	return tea.Batch(ContentChanged(m, eb, false), ShowFlash(m, "Draft cleared", false))
}

func changeFontSize(m *models.AppModel, delta int) tea.Cmd {
	size := config.ClampFontSize(m.FontSize + delta)
	if size == m.FontSize {
		return nil
	}
	m.FontSize = size
	m.Block.SetWidth(WrapWidth(m.ReadingWidth, m.FontSize, m.Width))
	Relayout(m)
	return tea.Batch(followCaret(), ShowFlash(m, fmt.Sprintf("Font size %d", size), false))
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(m *models.AppModel, msg CoreEventMsg, eb *eventbus.EventBus) tea.Cmd {
	switch event := msg.Event.(type) {
	case eventbus.StatusEvent:
		m.Online = event.Online
		switch {
		case event.Status == models.AiThinking:
			if m.Status != models.AiThinking {
				m.Status = models.AiThinking
				return m.Spinner.Tick
			}
		case m.Status == models.AiThinking:
			m.Status = models.Idle
		}
	case eventbus.SuggestionEvent:
		return applySuggestion(m, eb, event)
	case eventbus.NoticeEvent:
		return ShowFlash(m, event.Text, event.Error)
	}
	return nil
}

// applySuggestion puts a finished suggestion into the draft: a title
// replaces the title, a continuation follows the text after a blank line.
func applySuggestion(m *models.AppModel, eb *eventbus.EventBus, e eventbus.SuggestionEvent) tea.Cmd {
	switch e.Kind {
	case models.TitleSuggestion:
		m.TitleInput.SetValue(e.Text)
		m.Draft.Title = m.TitleInput.Value()
		m.Draft.UpdatedAt = time.Now()
		return persist(m, eb)
	default:
		m.Buffer.Append("\n\n" + cleanInput(e.Text))
		return ContentChanged(m, eb, false)
	}
}

func HandleWindowSizeMsg(m *models.AppModel, msg tea.WindowSizeMsg) tea.Cmd {
	Resize(m, msg.Width, msg.Height)
	if m.Previewing {
		return previewCmd(m.Draft, m.Block.Width())
	}
	return followCaret()
}

// HandleMouseMsg treats every mouse event as pointer activity; the wheel
// also scrolls and takes over from any running caret scroll.
func HandleMouseMsg(m *models.AppModel, msg tea.MouseMsg) tea.Cmd {
	cmds := []tea.Cmd{m.Chrome.PointerMoved()}
	if tea.MouseEvent(msg).IsWheel() {
		m.Scroller.Stop()
		var cmd tea.Cmd
		if m.Previewing {
			m.Preview, cmd = m.Preview.Update(msg)
		} else {
			m.Viewport, cmd = m.Viewport.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func HandleExpired(m *models.AppModel, msg chrome.ExpiredMsg) tea.Cmd {
	if m.FlashTimer.Fired(msg) {
		m.Flash = ""
		m.FlashError = false
		return nil
	}
	if m.Chrome.Expire(msg, !m.Buffer.IsBlank()) == chrome.TypingPaused && m.Status == models.Writing {
		m.Status = models.Idle
	}
	return nil
}

func HandleExported(m *models.AppModel, msg ExportedMsg) tea.Cmd {
	if msg.Err != nil {
		return ShowFlash(m, "Export failed: "+msg.Err.Error(), true)
	}
	return ShowFlash(m, "Exported to "+msg.Path, false)
}

func HandlePreview(m *models.AppModel, msg PreviewMsg) tea.Cmd {
	if !m.Previewing {
		return nil
	}
	if msg.Err != nil {
		m.Previewing = false
		return ShowFlash(m, "Preview failed: "+msg.Err.Error(), true)
	}
	m.Preview.SetContent(msg.Text)
	m.Preview.GotoTop()
	return nil
}
