package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/ZenPad/internal/layout"
)

func TestBufferInsertAndBackspace(t *testing.T) {
	b := NewBuffer("helo")
	b.SetCaret(3)
	b.Insert("l")
	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 4, b.Caret())

	require.True(t, b.Backspace())
	assert.Equal(t, "helo", b.String())
	assert.Equal(t, 3, b.Caret())

	b.Top()
	assert.False(t, b.Backspace())
	require.True(t, b.Delete())
	assert.Equal(t, "elo", b.String())
}

func TestBufferRevisionTracksChanges(t *testing.T) {
	b := NewBuffer("")
	rev := b.Revision()
	b.Left()
	assert.Equal(t, rev, b.Revision())
	b.Insert("x")
	assert.Greater(t, b.Revision(), rev)
}

func TestBufferDeleteWordBackward(t *testing.T) {
	b := NewBuffer("one two  ")
	require.True(t, b.DeleteWordBackward())
	assert.Equal(t, "one ", b.String())
	assert.Equal(t, 4, b.Caret())
}

func TestWrapBreaksAtSpaces(t *testing.T) {
	text := []rune("the quick brown fox")
	rows := Wrap(text, 10)

	var got []string
	for _, r := range rows {
		got = append(got, string(text[r.Start:r.End]))
	}
	assert.Equal(t, []string{"the quick ", "brown fox"}, got)
}

func TestWrapSplitsLongWords(t *testing.T) {
	text := []rune("abcdefghij")
	rows := Wrap(text, 4)
	assert.Equal(t, []Row{{0, 4}, {4, 8}, {8, 10}}, rows)
}

func TestWrapKeepsEmptyLines(t *testing.T) {
	text := []rune("a\n\nb\n")
	rows := Wrap(text, 20)
	assert.Equal(t, []Row{{0, 1}, {2, 2}, {3, 4}, {5, 5}}, rows)

	assert.Len(t, Wrap(nil, 20), 1)
}

func TestLocate(t *testing.T) {
	text := []rune("ab\ncdef")
	rows := Wrap(text, 2)

	row, col := Locate(text, rows, 2)
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)

	row, col = Locate(text, rows, 5)
	assert.Equal(t, 2, row)
	assert.Equal(t, 0, col)

	row, col = Locate(text, rows, len(text))
	assert.Equal(t, 2, row)
	assert.Equal(t, 2, col)
}

func TestBlockHeightFollowsEngine(t *testing.T) {
	buf := NewBuffer(strings.Repeat("line\n", 9) + "last")
	block := NewBlock(buf, 40, 1)
	page := NewPage(block)
	engine := layout.NewEngine(block, page)

	assert.Equal(t, 10, engine.Recompute())
	assert.Equal(t, 10, page.BodyHeight())

	block.SetSpacing(2)
	assert.Equal(t, 20, engine.Recompute())
}

func TestPageDoesNotCollapseDuringRecompute(t *testing.T) {
	buf := NewBuffer(strings.Repeat("x\n", 29))
	block := NewBlock(buf, 40, 1)
	page := NewPage(block)
	page.SetPadding(1, 5)
	engine := layout.NewEngine(block, page)
	engine.Recompute()
	require.Equal(t, 30, block.Height())

	var seen []int
	page.OnReflow(func(h int) { seen = append(seen, h) })

	buf.Insert("more")
	engine.Recompute()

	require.NotEmpty(t, seen)
	for _, h := range seen {
		assert.GreaterOrEqual(t, h, 1+30+5, "page shrank below its previous height mid-layout")
	}
	assert.Equal(t, 1+30+5, page.Height())
}

func TestPageShrinksOnlyAtCommit(t *testing.T) {
	buf := NewBuffer(strings.Repeat("x\n", 19))
	block := NewBlock(buf, 40, 1)
	page := NewPage(block)
	engine := layout.NewEngine(block, page)
	engine.Recompute()

	var seen []int
	page.OnReflow(func(h int) { seen = append(seen, h) })

	buf.SetText("short")
	engine.Recompute()

	require.GreaterOrEqual(t, len(seen), 2)
	for _, h := range seen[:len(seen)-1] {
		assert.GreaterOrEqual(t, h, 20)
	}
	assert.Equal(t, 1, seen[len(seen)-1])
}

func TestBlockMoveRowsFollowsWrappedRows(t *testing.T) {
	buf := NewBuffer("aaaa bbbb cccc")
	block := NewBlock(buf, 5, 1)
	require.Len(t, block.Rows(), 3)

	buf.SetCaret(1)
	block.MoveRows(1)
	assert.Equal(t, 6, buf.Caret())

	block.MoveRows(1)
	assert.Equal(t, 11, buf.Caret())

	block.MoveRows(1)
	assert.Equal(t, buf.Len(), buf.Caret(), "moving below the last row goes to the end")

	block.MoveRows(-5)
	assert.Equal(t, 4, buf.Caret(), "column is kept on the first row")

	block.MoveRows(-1)
	assert.Equal(t, 0, buf.Caret(), "moving above the first row goes to the start")
}
