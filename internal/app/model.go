package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ZenPad/internal/update"
	"github.com/Rorical/ZenPad/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	eventBus := m.dispatcher.GetEventBus()

	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(m.appModel, coreEvent, eventBus)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	cmd := update.HandleUpdateWithEventBus(m.appModel, msg, eventBus)
	return m, cmd
}

func (m *AppModel) View() string {
	a := m.appModel
	if a.Width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(components.RenderHeader(a))
	b.WriteString("\n")
	switch {
	case a.ShowFullHelp:
		b.WriteString(components.RenderKeyHelp(a, update.Keys, a.Viewport.Height))
	case a.Previewing:
		b.WriteString(a.Preview.View())
	default:
		b.WriteString(a.Viewport.View())
	}
	b.WriteString("\n")
	b.WriteString(components.RenderFooter(a, update.Keys))

	return b.String()
}
