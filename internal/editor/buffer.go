package editor

import "strings"

// Buffer is an editable rune sequence with a single caret.
type Buffer struct {
	text     []rune
	caret    int
	revision uint64
}

// NewBuffer creates a buffer holding s with the caret at the end.
func NewBuffer(s string) *Buffer {
	b := &Buffer{}
	b.SetText(s)
	return b
}

func (b *Buffer) String() string {
	return string(b.text)
}

func (b *Buffer) Runes() []rune {
	return b.text
}

func (b *Buffer) Len() int {
	return len(b.text)
}

func (b *Buffer) Caret() int {
	return b.caret
}

// Revision increases on every change to the text.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// IsBlank reports whether the buffer holds only whitespace.
func (b *Buffer) IsBlank() bool {
	return strings.TrimSpace(string(b.text)) == ""
}

// SetText replaces the whole text and moves the caret to the end.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.caret = len(b.text)
	b.revision++
}

// Append adds s to the end of the text and moves the caret after it.
func (b *Buffer) Append(s string) {
	b.text = append(b.text, []rune(s)...)
	b.caret = len(b.text)
	b.revision++
}

func (b *Buffer) SetCaret(pos int) {
	b.caret = clamp(pos, 0, len(b.text))
}

// Insert places s at the caret and advances the caret past it.
func (b *Buffer) Insert(s string) {
	if s == "" {
		return
	}
	r := []rune(s)
	next := make([]rune, 0, len(b.text)+len(r))
	next = append(next, b.text[:b.caret]...)
	next = append(next, r...)
	next = append(next, b.text[b.caret:]...)
	b.text = next
	b.caret += len(r)
	b.revision++
}

// Backspace removes the rune before the caret.
func (b *Buffer) Backspace() bool {
	if b.caret == 0 {
		return false
	}
	b.text = append(b.text[:b.caret-1], b.text[b.caret:]...)
	b.caret--
	b.revision++
	return true
}

// Delete removes the rune under the caret.
func (b *Buffer) Delete() bool {
	if b.caret >= len(b.text) {
		return false
	}
	b.text = append(b.text[:b.caret], b.text[b.caret+1:]...)
	b.revision++
	return true
}

// DeleteWordBackward removes the word before the caret along with any
// whitespace between it and the caret.
func (b *Buffer) DeleteWordBackward() bool {
	if b.caret == 0 {
		return false
	}
	start := b.caret
	for start > 0 && isSpace(b.text[start-1]) {
		start--
	}
	for start > 0 && !isSpace(b.text[start-1]) {
		start--
	}
	b.text = append(b.text[:start], b.text[b.caret:]...)
	b.caret = start
	b.revision++
	return true
}

func (b *Buffer) Left() {
	b.SetCaret(b.caret - 1)
}

func (b *Buffer) Right() {
	b.SetCaret(b.caret + 1)
}

func (b *Buffer) WordLeft() {
	pos := b.caret
	for pos > 0 && isSpace(b.text[pos-1]) {
		pos--
	}
	for pos > 0 && !isSpace(b.text[pos-1]) {
		pos--
	}
	b.caret = pos
}

func (b *Buffer) WordRight() {
	pos := b.caret
	for pos < len(b.text) && isSpace(b.text[pos]) {
		pos++
	}
	for pos < len(b.text) && !isSpace(b.text[pos]) {
		pos++
	}
	b.caret = pos
}

// LineStart returns the offset of the first rune of the logical line
// containing pos.
func (b *Buffer) LineStart(pos int) int {
	for pos > 0 && b.text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// LineEnd returns the offset of the newline ending the logical line
// containing pos, or the text length on the last line.
func (b *Buffer) LineEnd(pos int) int {
	for pos < len(b.text) && b.text[pos] != '\n' {
		pos++
	}
	return pos
}

func (b *Buffer) Home() {
	b.caret = b.LineStart(b.caret)
}

func (b *Buffer) End() {
	b.caret = b.LineEnd(b.caret)
}

func (b *Buffer) Top() {
	b.caret = 0
}

func (b *Buffer) Bottom() {
	b.caret = len(b.text)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
