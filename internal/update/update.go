package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ZenPad/internal/caret"
	"github.com/Rorical/ZenPad/internal/chrome"
	"github.com/Rorical/ZenPad/internal/eventbus"
	"github.com/Rorical/ZenPad/internal/models"
)

func HandleUpdateWithEventBus(m *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(m, msg, eb)
	case tea.MouseMsg:
		return HandleMouseMsg(m, msg)
	case tea.WindowSizeMsg:
		return HandleWindowSizeMsg(m, msg)
	case CoreEventMsg:
		return HandleCoreEvent(m, msg, eb)
	case FollowCaretMsg:
		return HandleFollowCaret(m)
	case caret.FrameMsg:
		return HandleScrollFrame(m, msg)
	case chrome.ExpiredMsg:
		return HandleExpired(m, msg)
	case ExportedMsg:
		return HandleExported(m, msg)
	case PreviewMsg:
		return HandlePreview(m, msg)
	case spinner.TickMsg:
		if m.Status != models.AiThinking {
			return nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return cmd
	}

	// cursor blink
	if m.Focus == models.FocusTitle {
		var cmd tea.Cmd
		m.TitleInput, cmd = m.TitleInput.Update(msg)
		return cmd
	}
	return nil
}
