package components

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Rorical/ZenPad/internal/editor"
	"github.com/Rorical/ZenPad/ui/styles"
)

// RenderPage draws the page row by row, centered in width. Rows past the
// block's committed height are left blank, as are the padding rows.
func RenderPage(page *editor.Page, showCaret bool, width int) string {
	block := page.Block()
	text := block.Buffer().Runes()
	rows := block.Rows()
	spacing := block.Spacing()
	body := page.BodyHeight()
	caretRow, caretCol := block.CaretCell()

	margin := strings.Repeat(" ", max((width-block.Width())/2, 0))
	textStyle := styles.TextStyle()

	lines := make([]string, page.Height())
	for i, r := range rows {
		offset := i * spacing
		if offset >= min(block.Height(), body) {
			break
		}
		line := string(text[r.Start:r.End])
		if showCaret && i == caretRow {
			line = withCaret(line, caretCol)
		} else {
			line = textStyle.Render(line)
		}
		lines[page.TopPad()+offset] = margin + line
	}
	return strings.Join(lines, "\n")
}

// withCaret highlights the cell at col, or a trailing blank when the caret
// sits at the end of the row.
func withCaret(line string, col int) string {
	textStyle := styles.TextStyle()
	caretStyle := styles.CaretStyle()

	runes := []rune(line)
	w := 0
	for i, r := range runes {
		if w >= col {
			return textStyle.Render(string(runes[:i])) +
				caretStyle.Render(string(r)) +
				textStyle.Render(string(runes[i+1:]))
		}
		w += runewidth.RuneWidth(r)
	}
	return textStyle.Render(line) + caretStyle.Render(" ")
}
