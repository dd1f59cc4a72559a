package editor

import (
	"github.com/mattn/go-runewidth"
)

// Row is one visual row of soft-wrapped text. Start and End are rune
// offsets into the text; End is exclusive and never includes a newline.
type Row struct {
	Start int
	End   int
}

// Wrap soft-wraps text into rows no wider than width cells. Lines break
// after the last space that fits; words longer than a row are split.
// There is always at least one row.
func Wrap(text []rune, width int) []Row {
	if width < 1 {
		width = 1
	}
	var rows []Row
	start := 0
	for {
		end := start
		for end < len(text) && text[end] != '\n' {
			end++
		}
		rows = wrapLine(rows, text, start, end, width)
		if end >= len(text) {
			break
		}
		start = end + 1
	}
	return rows
}

func wrapLine(rows []Row, text []rune, start, end, width int) []Row {
	if start == end {
		return append(rows, Row{Start: start, End: end})
	}
	for start < end {
		w := 0
		i := start
		lastSpace := -1
		for i < end {
			rw := runewidth.RuneWidth(text[i])
			if w+rw > width {
				break
			}
			w += rw
			if text[i] == ' ' {
				lastSpace = i
			}
			i++
		}
		switch {
		case i == end:
			rows = append(rows, Row{Start: start, End: end})
			return rows
		case text[i] == ' ':
			// the space that overflows stays on this row
			rows = append(rows, Row{Start: start, End: i + 1})
			start = i + 1
		case lastSpace >= start:
			rows = append(rows, Row{Start: start, End: lastSpace + 1})
			start = lastSpace + 1
		case i == start:
			rows = append(rows, Row{Start: start, End: start + 1})
			start++
		default:
			rows = append(rows, Row{Start: start, End: i})
			start = i
		}
	}
	return rows
}

// Locate returns the row index and cell column of the rune offset pos.
func Locate(text []rune, rows []Row, pos int) (row, col int) {
	if len(rows) == 0 {
		return 0, 0
	}
	lo, hi := 0, len(rows)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if rows[mid].Start <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	r := rows[lo]
	end := min(pos, r.End)
	if end < r.Start {
		end = r.Start
	}
	return lo, runewidth.StringWidth(string(text[r.Start:end]))
}
