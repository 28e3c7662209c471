package buffer

// Insert inserts s at offset at and returns the offset just past the inserted
// text.
func (b *Buffer) Insert(at int, s string) int {
	b.checkOffset("insert", at)
	return b.replaceRange(Range{Start: at, End: at}, s)
}

// DeleteRange removes the runes in [start, end). The bounds may be given in
// either order; an empty range is a no-op.
func (b *Buffer) DeleteRange(start, end int) {
	b.checkOffset("delete range", start)
	b.checkOffset("delete range", end)
	b.replaceRange(Range{Start: start, End: end}, "")
}

// Replace substitutes s for [start, end) as a single change and returns the
// offset just past the inserted text.
func (b *Buffer) Replace(start, end int, s string) int {
	b.checkOffset("replace", start)
	b.checkOffset("replace", end)
	return b.replaceRange(Range{Start: start, End: end}, s)
}

func (b *Buffer) replaceRange(r Range, s string) int {
	r = NormalizeRange(r)
	s = b.normalize(s)
	ins := []rune(s)
	if r.IsEmpty() && len(ins) == 0 {
		return r.Start
	}
	deleted := string(b.text[r.Start:r.End])
	if deleted == s {
		return r.Start + len(ins)
	}

	change := b.beginChange()
	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)
	b.text = out
	b.version++
	b.commitChange(change, r, deleted, s)
	return r.Start + len(ins)
}

// DeleteCharBefore removes the rune immediately before offset and returns the
// new caret offset. At offset 0 it does nothing and returns 0.
func (b *Buffer) DeleteCharBefore(offset int) int {
	b.checkOffset("delete char before", offset)
	if offset == 0 {
		return 0
	}
	b.DeleteRange(offset-1, offset)
	return offset - 1
}

// DeleteCharAfter removes the rune immediately after offset. The caret offset
// does not move.
func (b *Buffer) DeleteCharAfter(offset int) int {
	b.checkOffset("delete char after", offset)
	if offset == len(b.text) {
		return offset
	}
	b.DeleteRange(offset, offset+1)
	return offset
}

// DeleteWordBefore removes the word unit ending at offset (see
// PrevWordBoundary) and returns the offset where it started.
func (b *Buffer) DeleteWordBefore(offset int) int {
	b.checkOffset("delete word before", offset)
	start := b.PrevWordBoundary(offset)
	b.DeleteRange(start, offset)
	return start
}

// DeleteLinePrefixBefore removes everything between the start of the visual
// row containing offset and offset itself. rows must describe the current
// text.
func (b *Buffer) DeleteLinePrefixBefore(offset int, rows RowLocator) int {
	b.checkOffset("delete line prefix before", offset)
	start := rows.RowBegin(offset)
	if start < 0 || start > offset {
		panic("buffer: delete line prefix before: row locator is out of sync with the text")
	}
	b.DeleteRange(start, offset)
	return start
}
