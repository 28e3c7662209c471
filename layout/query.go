package layout

import "sort"

// RowOf returns the index of the row that displays offset. An offset at the
// end of a soft-wrapped row belongs to the row that follows it.
func (l *Layout) RowOf(offset int) int {
	l.checkOffset("row of", offset)
	i := sort.Search(len(l.Rows), func(i int) bool { return l.Rows[i].Start > offset })
	return max(i-1, 0)
}

// RowCol returns the row displaying offset and the column within it.
func (l *Layout) RowCol(offset int) (row, col int) {
	row = l.RowOf(offset)
	return row, offset - l.Rows[row].Start
}

// CursorRect returns the zero-width caret rectangle at offset.
func (l *Layout) CursorRect(offset int) Rect {
	row, col := l.RowCol(offset)
	r := l.Rows[row]
	x := r.Xs[col]
	return Rect{Min: Point{X: x, Y: r.Rect.Min.Y}, Max: Point{X: x, Y: r.Rect.Max.Y}}
}

// RowBegin returns the first offset of the row displaying offset.
func (l *Layout) RowBegin(offset int) int {
	return l.Rows[l.RowOf(offset)].Start
}

// RowEnd returns the last caret position on the row displaying offset. For a
// soft-wrapped row that is one before its End, since End itself is displayed
// at the start of the next row.
func (l *Layout) RowEnd(offset int) int {
	i := l.RowOf(offset)
	r := l.Rows[i]
	if l.softWrapped(i) && r.End > r.Start {
		return r.End - 1
	}
	return r.End
}

// OffsetAtX returns the offset on row whose column x is nearest to x. row is
// clamped into range.
func (l *Layout) OffsetAtX(row int, x float32) int {
	if len(l.Rows) == 0 {
		return 0
	}
	row = min(max(row, 0), len(l.Rows)-1)
	r := l.Rows[row]

	last := len(r.Xs) - 1
	if l.softWrapped(row) && last > 0 {
		last--
	}
	best := 0
	bestDist := abs32(r.Xs[0] - x)
	for col := 1; col <= last; col++ {
		d := abs32(r.Xs[col] - x)
		if d < bestDist {
			best, bestDist = col, d
		}
	}
	return r.Start + best
}

// OffsetAt hit-tests p. Points outside the layout are clamped to the nearest
// row and column.
func (l *Layout) OffsetAt(p Point) int {
	if len(l.Rows) == 0 {
		return 0
	}
	row := sort.Search(len(l.Rows), func(i int) bool { return l.Rows[i].Rect.Max.Y > p.Y })
	return l.OffsetAtX(row, p.X)
}

// Up returns the offset one row above offset, nearest to x. On the first row
// it returns 0.
func (l *Layout) Up(offset int, x float32) int {
	row := l.RowOf(offset)
	if row == 0 {
		return 0
	}
	return l.OffsetAtX(row-1, x)
}

// Down returns the offset one row below offset, nearest to x. On the last row
// it returns the end of the text.
func (l *Layout) Down(offset int, x float32) int {
	row := l.RowOf(offset)
	if row >= len(l.Rows)-1 {
		return l.Len()
	}
	return l.OffsetAtX(row+1, x)
}

// SelectionRects returns one rectangle per row covered by [start, end). The
// bounds may be given in either order. A selected newline widens its row's
// rectangle by NewlineWidth.
func (l *Layout) SelectionRects(start, end int) []Rect {
	l.checkOffset("selection rects", start)
	l.checkOffset("selection rects", end)
	if start > end {
		start, end = end, start
	}
	if start == end {
		return nil
	}

	first := l.RowOf(start)
	last := l.RowOf(end)
	if last > first && end == l.Rows[last].Start {
		last--
	}

	out := make([]Rect, 0, last-first+1)
	for i := first; i <= last; i++ {
		r := l.Rows[i]
		x0 := r.Xs[0]
		if i == first {
			x0 = r.Xs[start-r.Start]
		}
		x1 := r.Xs[len(r.Xs)-1]
		if i == last && end <= r.End {
			x1 = r.Xs[end-r.Start]
		} else if r.EndsWithNewline {
			x1 += l.NewlineWidth
		}
		out = append(out, Rect{
			Min: Point{X: x0, Y: r.Rect.Min.Y},
			Max: Point{X: x1, Y: r.Rect.Max.Y},
		})
	}
	return out
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
