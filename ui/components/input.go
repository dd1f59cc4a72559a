package components

import (
	"github.com/mattn/go-runewidth"

	"github.com/Rorical/ZenPad/internal/models"
	"github.com/Rorical/ZenPad/ui/styles"
)

// RenderTitle shows the live title input while it has focus, otherwise the
// draft title cut to fit.
func RenderTitle(m *models.AppModel, avail int) string {
	if m.Focus == models.FocusTitle {
		return m.TitleInput.View()
	}
	title := m.TitleInput.Value()
	if title == "" {
		title = models.DefaultTitle
	}
	return styles.TitleStyle().Render(runewidth.Truncate(title, max(avail, 1), "…"))
}
