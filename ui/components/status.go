package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/ZenPad/internal/models"
	"github.com/Rorical/ZenPad/ui/styles"
)

const chromePadding = 4

// RenderStatus is the right side of the header.
func RenderStatus(m *models.AppModel) string {
	var status string
	if m.Status == models.AiThinking {
		status = styles.ThinkingStyle().Render(m.Spinner.View() + " " + m.Status.String())
	} else {
		status = styles.StatusStyle().Render(m.Status.String())
	}

	words := m.Draft.WordCount()
	unit := "words"
	if words == 1 {
		unit = "word"
	}
	parts := []string{status, styles.StatusStyle().Render(fmt.Sprintf("%d %s", words, unit))}
	if !m.Online {
		parts = append(parts, styles.StatusStyle().Render("offline"))
	}
	return strings.Join(parts, styles.StatusStyle().Render(" · "))
}

// HeaderVisible reports whether the header is drawn. Editing the title and
// answering a question keep it on screen.
func HeaderVisible(m *models.AppModel) bool {
	return m.Chrome.Visible() || m.Focus == models.FocusTitle || m.PendingConfirmation != nil
}

// RenderHeader returns the header's two rows. A hidden header keeps its
// rows so the page does not jump.
func RenderHeader(m *models.AppModel) string {
	if !HeaderVisible(m) {
		return "\n"
	}
	right := RenderStatus(m)
	avail := m.Width - chromePadding - lipgloss.Width(right) - 1
	left := RenderTitle(m, avail)
	gap := max(m.Width-chromePadding-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return styles.HeaderStyle(m.Width).Render(left+strings.Repeat(" ", gap)+right) + "\n"
}

// RenderFooter returns the footer's two rows: a spacer and one line for
// whatever needs saying most.
func RenderFooter(m *models.AppModel, keys help.KeyMap) string {
	style := styles.FooterStyle(m.Width)
	var line string
	switch {
	case m.PendingConfirmation != nil:
		line = styles.ConfirmStyle().Render(m.PendingConfirmation.Prompt + " (y/n)")
	case m.Flash != "" && m.FlashError:
		line = styles.ErrorStyle().Render(m.Flash)
	case m.Flash != "":
		line = styles.FlashStyle().Render(m.Flash)
	case m.Chrome.Visible():
		line = m.Help.ShortHelpView(keys.ShortHelp())
	}
	if line == "" {
		return "\n"
	}
	return "\n" + style.Render(line)
}

// RenderKeyHelp is the full binding list shown in place of the page.
func RenderKeyHelp(m *models.AppModel, keys help.KeyMap, height int) string {
	return lipgloss.Place(m.Width, height, lipgloss.Center, lipgloss.Center,
		m.Help.FullHelpView(keys.FullHelp()))
}
