package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ZenPad/internal/caret"
	"github.com/Rorical/ZenPad/internal/eventbus"
	"github.com/Rorical/ZenPad/internal/models"
)

// FollowCaretMsg asks for a caret check once the edit has been drawn.
type FollowCaretMsg struct{}

func followCaret() tea.Cmd {
	return func() tea.Msg {
		return FollowCaretMsg{}
	}
}

// handleEditorKey applies one key to the buffer. It reports whether the
// text changed and whether the key was an editing key at all.
func handleEditorKey(m *models.AppModel, msg tea.KeyMsg) (changed, handled bool) {
	buf := m.Buffer
	switch msg.Type {
	case tea.KeyRunes:
		buf.Insert(cleanInput(string(msg.Runes)))
		return true, true
	case tea.KeySpace:
		buf.Insert(" ")
		return true, true
	case tea.KeyEnter, tea.KeyCtrlJ:
		buf.Insert("\n")
		return true, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		if msg.Alt {
			return buf.DeleteWordBackward(), true
		}
		return buf.Backspace(), true
	case tea.KeyCtrlW:
		return buf.DeleteWordBackward(), true
	case tea.KeyDelete, tea.KeyCtrlD:
		return buf.Delete(), true
	case tea.KeyLeft:
		if msg.Alt {
			buf.WordLeft()
		} else {
			buf.Left()
		}
	case tea.KeyRight:
		if msg.Alt {
			buf.WordRight()
		} else {
			buf.Right()
		}
	case tea.KeyCtrlLeft:
		buf.WordLeft()
	case tea.KeyCtrlRight:
		buf.WordRight()
	case tea.KeyUp:
		m.Block.MoveRows(-1)
	case tea.KeyDown:
		m.Block.MoveRows(1)
	case tea.KeyPgUp:
		m.Block.MoveRows(-pageRows(m))
	case tea.KeyPgDown:
		m.Block.MoveRows(pageRows(m))
	case tea.KeyHome, tea.KeyCtrlA:
		buf.Home()
	case tea.KeyEnd, tea.KeyCtrlE:
		buf.End()
	case tea.KeyCtrlHome:
		buf.Top()
	case tea.KeyCtrlEnd:
		buf.Bottom()
	default:
		return false, false
	}
	return false, true
}

// pageRows is how many visual rows one page-up or page-down moves.
func pageRows(m *models.AppModel) int {
	return max(m.Viewport.Height/m.Block.Spacing()-1, 1)
}

// ContentChanged runs after every change of the draft text: the block is
// remeasured, the draft goes to the store and the caret check is queued.
// typed marks changes made by the writer rather than by a suggestion.
func ContentChanged(m *models.AppModel, eb *eventbus.EventBus, typed bool) tea.Cmd {
	m.Draft.Content = m.Buffer.String()
	m.Draft.UpdatedAt = time.Now()
	Relayout(m)

	cmds := []tea.Cmd{persist(m, eb), followCaret()}
	if typed {
		cmds = append(cmds, keystroke(m))
	}
	return tea.Batch(cmds...)
}

// TitleChanged stores a title edit.
func TitleChanged(m *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	m.Draft.Title = m.TitleInput.Value()
	m.Draft.UpdatedAt = time.Now()
	return tea.Batch(persist(m, eb), keystroke(m))
}

func keystroke(m *models.AppModel) tea.Cmd {
	if m.Status != models.AiThinking {
		m.Status = models.Writing
	}
	return m.Chrome.Keystroke()
}

// persist hands the draft to core under the next revision.
func persist(m *models.AppModel, eb *eventbus.EventBus) tea.Cmd {
	m.Draft.Revision++
	if err := eb.SendToCore(eventbus.SaveDraftEvent{Draft: m.Draft.Normalized()}); err != nil {
		return ShowFlash(m, "Autosave unavailable: "+err.Error(), true)
	}
	return nil
}

// ShowFlash puts a message in the footer until the flash timer expires.
func ShowFlash(m *models.AppModel, text string, isError bool) tea.Cmd {
	m.Flash = text
	m.FlashError = isError
	return m.FlashTimer.Start()
}

// HandleFollowCaret scrolls the page when the caret has passed the trigger
// line, or has left the top of the view.
func HandleFollowCaret(m *models.AppModel) tea.Cmd {
	if m.Previewing || m.Viewport.Height <= 0 {
		return nil
	}
	row, _ := m.Block.CaretCell()
	offset := m.Viewport.YOffset
	metrics := caret.Metrics{
		LineHeight:     float64(m.Block.Spacing()),
		FontSize:       float64(m.FontSize),
		EditorTop:      float64(m.Page.TopPad() - offset),
		ScrollTop:      float64(offset),
		ViewportHeight: float64(m.Viewport.Height),
	}

	decision := m.Tracker.Follow(row, metrics)
	if !decision.Scroll {
		decision = m.Tracker.Reveal(row, metrics)
	}
	if !decision.Scroll {
		return nil
	}
	return m.Scroller.ScrollTo(offset, decision.Target)
}

// HandleScrollFrame moves the viewport one animation step.
func HandleScrollFrame(m *models.AppModel, msg caret.FrameMsg) tea.Cmd {
	offset, cmd, ok := m.Scroller.Update(msg)
	if ok {
		m.Viewport.SetYOffset(offset)
	}
	return cmd
}
