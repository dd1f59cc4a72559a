package editor

import "github.com/mattn/go-runewidth"

// Block is the writing area: the buffer soft-wrapped to a column width.
// Heights are in terminal rows. While the height is auto the block renders
// at its intrinsic height of a single line, like an unsized text area.
type Block struct {
	buf     *Buffer
	width   int
	spacing int

	height int
	auto   bool

	rows      []Row
	rowsRev   uint64
	rowsWidth int

	onResize func()
}

func NewBlock(buf *Buffer, width, spacing int) *Block {
	if spacing < 1 {
		spacing = 1
	}
	return &Block{
		buf:     buf,
		width:   max(width, 1),
		spacing: spacing,
		auto:    true,
	}
}

func (b *Block) Buffer() *Buffer {
	return b.buf
}

func (b *Block) Width() int {
	return b.width
}

func (b *Block) SetWidth(w int) {
	b.width = max(w, 1)
}

// Spacing is the number of terminal rows each visual line occupies.
func (b *Block) Spacing() int {
	return b.spacing
}

func (b *Block) SetSpacing(s int) {
	b.spacing = max(s, 1)
}

// Rows returns the wrapped rows for the current text and width.
func (b *Block) Rows() []Row {
	if b.rows == nil || b.rowsRev != b.buf.Revision() || b.rowsWidth != b.width {
		b.rows = Wrap(b.buf.Runes(), b.width)
		b.rowsRev = b.buf.Revision()
		b.rowsWidth = b.width
	}
	return b.rows
}

// CaretCell returns the visual row and column of the caret.
func (b *Block) CaretCell() (row, col int) {
	return Locate(b.buf.Runes(), b.Rows(), b.buf.Caret())
}

// MoveRows moves the caret delta visual rows, keeping its cell column.
// Moving past the first or last row lands at the start or end of the text.
func (b *Block) MoveRows(delta int) {
	rows := b.Rows()
	row, col := b.CaretCell()
	target := clamp(row+delta, 0, len(rows)-1)
	if target == row {
		switch {
		case delta < 0:
			b.buf.SetCaret(rows[0].Start)
		case delta > 0:
			b.buf.SetCaret(rows[len(rows)-1].End)
		}
		return
	}

	r := rows[target]
	end := r.End
	// a soft-wrapped row's end offset belongs to the next row
	if target+1 < len(rows) && rows[target+1].Start == r.End && end > r.Start {
		end--
	}
	text := b.buf.Runes()
	pos, w := r.Start, 0
	for pos < end {
		rw := runewidth.RuneWidth(text[pos])
		if w+rw > col {
			break
		}
		w += rw
		pos++
	}
	b.buf.SetCaret(pos)
}

func (b *Block) Height() int {
	if b.auto {
		return b.spacing
	}
	return b.height
}

func (b *Block) ResetHeight() {
	b.auto = true
	b.resized()
}

func (b *Block) ScrollHeight() int {
	return max(len(b.Rows()), 1) * b.spacing
}

func (b *Block) SetHeight(h int) {
	b.auto = false
	b.height = h
	b.resized()
}

func (b *Block) resized() {
	if b.onResize != nil {
		b.onResize()
	}
}

// Page is the scrollable sheet around the block. Its body is never shorter
// than its minimum height, and it carries padding above and below so the
// first line is not glued to the chrome and the last line can scroll to
// the middle of the screen.
type Page struct {
	block     *Block
	min       int
	topPad    int
	bottomPad int
	onReflow  func(height int)
}

func NewPage(block *Block) *Page {
	p := &Page{block: block}
	block.onResize = p.reflow
	return p
}

func (p *Page) Block() *Block {
	return p.block
}

func (p *Page) MinHeight() int {
	return p.min
}

func (p *Page) SetMinHeight(h int) {
	p.min = h
	p.reflow()
}

func (p *Page) SetPadding(top, bottom int) {
	p.topPad = max(top, 0)
	p.bottomPad = max(bottom, 0)
}

// TopPad is the row offset of the block within the page.
func (p *Page) TopPad() int {
	return p.topPad
}

func (p *Page) BodyHeight() int {
	return max(p.min, p.block.Height())
}

func (p *Page) Height() int {
	return p.topPad + p.BodyHeight() + p.bottomPad
}

// OnReflow registers fn to run whenever the block or the floor changes.
func (p *Page) OnReflow(fn func(height int)) {
	p.onReflow = fn
}

func (p *Page) reflow() {
	if p.onReflow != nil {
		p.onReflow(p.Height())
	}
}
