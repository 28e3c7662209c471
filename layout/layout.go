// Package layout turns text into rows of positioned glyphs and answers
// offset and geometry queries against the result.
//
// Offsets are rune indices into the laid out text. A Layout is immutable and
// describes exactly one (text, wrap width) pair; querying it with offsets
// computed against different text is a programming error.
package layout

import "fmt"

// Point is a position in layout coordinates. The origin is the top-left
// corner of the first row.
type Point struct {
	X float32
	Y float32
}

type Rect struct {
	Min Point
	Max Point
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Job is a layout request.
type Job struct {
	Text     string
	Sections []Section

	// WrapWidth is the maximum row width. Values <= 0 disable wrapping.
	WrapWidth float32
}

// Layouter produces a Layout for a Job.
type Layouter interface {
	Layout(job Job) *Layout
}

// LayouterFunc adapts a function to the Layouter interface.
type LayouterFunc func(job Job) *Layout

func (f LayouterFunc) Layout(job Job) *Layout { return f(job) }

// Row is one visual row.
type Row struct {
	// Start and End delimit the row's text, excluding a trailing newline.
	Start int
	End   int

	EndsWithNewline bool

	Rect Rect

	// Xs holds the x position of every column in the row: Xs[i] is the left
	// edge of the rune at Start+i and Xs[End-Start] is the row's right edge.
	// Runes that continue a grapheme cluster share the x of its first rune.
	Xs []float32

	// Sections cover [Start, End) without gaps.
	Sections []Section
}

// Len returns the number of runes on the row.
func (r Row) Len() int { return r.End - r.Start }

type Layout struct {
	Rows []Row

	Text      string
	WrapWidth float32
	RowHeight float32

	// NewlineWidth is the width a selected newline occupies at a row end.
	NewlineWidth float32

	runes []rune
}

// Len returns the length of the laid out text in runes.
func (l *Layout) Len() int { return len(l.runes) }

// RowText returns the text of row i.
func (l *Layout) RowText(i int) string {
	r := l.Rows[i]
	return string(l.runes[r.Start:r.End])
}

// Size returns the extent of the layout.
func (l *Layout) Size() Point {
	var w float32
	for _, r := range l.Rows {
		w = max(w, r.Rect.Max.X)
	}
	return Point{X: w, Y: float32(len(l.Rows)) * l.RowHeight}
}

// softWrapped reports whether row i was broken by wrapping rather than by a
// newline or the end of text.
func (l *Layout) softWrapped(i int) bool {
	return !l.Rows[i].EndsWithNewline && i < len(l.Rows)-1
}

func (l *Layout) checkOffset(op string, off int) {
	if off < 0 || off > len(l.runes) {
		panic(fmt.Sprintf("layout: %s: offset %d out of range [0, %d]", op, off, len(l.runes)))
	}
}
