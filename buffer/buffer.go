package buffer

import (
	"fmt"
	"strings"
)

type Options struct {
	// NormalizeNewlines rewrites "\r\n" and lone "\r" to "\n" on every write.
	NormalizeNewlines bool
}

// Buffer is the pure document state: a sequence of runes and a version
// counter bumped on every effective mutation.
type Buffer struct {
	text    []rune
	version uint64

	opt Options

	lastChange    Change
	hasLastChange bool

	// text as a string, valid while textVersion == version.
	textCache   string
	textVersion uint64
	textCached  bool
}

func New(text string, opt Options) *Buffer {
	b := &Buffer{opt: opt}
	b.text = []rune(b.normalize(text))
	return b
}

func (b *Buffer) Text() string {
	if !b.textCached || b.textVersion != b.version {
		b.textCache = string(b.text)
		b.textVersion = b.version
		b.textCached = true
	}
	return b.textCache
}

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

// Slice returns the text in [start, end). The bounds may be given in either
// order.
func (b *Buffer) Slice(start, end int) string {
	b.checkOffset("slice", start)
	b.checkOffset("slice", end)
	r := NormalizeRange(Range{Start: start, End: end})
	return string(b.text[r.Start:r.End])
}

// RuneAt returns the rune starting at offset. offset must be < Len().
func (b *Buffer) RuneAt(offset int) rune {
	if offset < 0 || offset >= len(b.text) {
		panic(fmt.Sprintf("buffer: rune at: offset %d out of range [0, %d)", offset, len(b.text)))
	}
	return b.text[offset]
}

// ClampOffset clamps off into [0, Len()].
func (b *Buffer) ClampOffset(off int) int {
	return clampInt(off, 0, len(b.text))
}

// SetText replaces the whole document.
func (b *Buffer) SetText(text string) {
	text = b.normalize(text)
	if text == b.Text() {
		return
	}
	change := b.beginChange()
	deleted := b.Text()
	b.text = []rune(text)
	b.version++
	b.commitChange(change, Range{Start: 0, End: len([]rune(deleted))}, deleted, text)
}

func (b *Buffer) normalize(s string) string {
	if !b.opt.NormalizeNewlines || !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
