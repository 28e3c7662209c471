package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// LineCount returns the number of logical lines ('\n'-separated).
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// LineCol maps offset to a 0-based logical line and rune column.
func (b *Buffer) LineCol(offset int) (line, col int) {
	b.checkOffset("line col", offset)
	lineStart := 0
	for i := 0; i < offset; i++ {
		if b.text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart
}

// OffsetFromLineCol maps a logical line and rune column to an offset.
//
// With OffsetError, positions outside the document report ok=false. With
// OffsetClamp they are clamped to the nearest valid position.
func (b *Buffer) OffsetFromLineCol(line, col int, mode OffsetClampMode) (int, bool) {
	if mode != OffsetError && mode != OffsetClamp {
		return 0, false
	}
	if line < 0 || col < 0 {
		if mode == OffsetError {
			return 0, false
		}
		line = max(line, 0)
		col = max(col, 0)
	}

	cur := 0
	start := 0
	for i, r := range b.text {
		if cur == line {
			break
		}
		if r == '\n' {
			cur++
			start = i + 1
		}
	}
	if cur < line {
		if mode == OffsetError {
			return 0, false
		}
		return len(b.text), true
	}

	end := start
	for end < len(b.text) && b.text[end] != '\n' {
		end++
	}
	if start+col > end {
		if mode == OffsetError {
			return 0, false
		}
		return end, true
	}
	return start + col, true
}

// ByteOffset returns the UTF-8 byte offset of a rune offset.
func (b *Buffer) ByteOffset(offset int) int {
	b.checkOffset("byte offset", offset)
	n := 0
	for _, r := range b.text[:offset] {
		n += utf8.RuneLen(r)
	}
	return n
}

// OffsetFromByte maps a UTF-8 byte offset to a rune offset. Byte offsets that
// fall inside a rune report ok=false in OffsetError mode and round down in
// OffsetClamp mode.
func (b *Buffer) OffsetFromByte(byteOff int, mode OffsetClampMode) (int, bool) {
	if mode != OffsetError && mode != OffsetClamp {
		return 0, false
	}
	if byteOff < 0 {
		if mode == OffsetError {
			return 0, false
		}
		return 0, true
	}

	cur := 0
	for i, r := range b.text {
		if cur == byteOff {
			return i, true
		}
		next := cur + utf8.RuneLen(r)
		if byteOff < next {
			if mode == OffsetError {
				return 0, false
			}
			return i, true
		}
		cur = next
	}
	if cur == byteOff || mode == OffsetClamp {
		return len(b.text), true
	}
	return 0, false
}
