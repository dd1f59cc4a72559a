package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/Rorical/ZenPad/internal/export"
	"github.com/Rorical/ZenPad/internal/models"
)

// ExportedMsg reports the outcome of an export.
type ExportedMsg struct {
	Path string
	Err  error
}

// PreviewMsg carries the rendered markdown preview.
type PreviewMsg struct {
	Text string
	Err  error
}

func exportCmd(dir string, d models.Draft) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Write(dir, d)
		return ExportedMsg{Path: path, Err: err}
	}
}

// previewCmd renders the draft as markdown, the title as its heading.
func previewCmd(d models.Draft, width int) tea.Cmd {
	return func() tea.Msg {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return PreviewMsg{Err: err}
		}
		d = d.Normalized()
		out, err := r.Render("# " + d.Title + "\n\n" + d.Content)
		return PreviewMsg{Text: out, Err: err}
	}
}
