package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/caret/internal/grapheme"
)

const defaultTabWidth = 4

// Monospace lays text out on a fixed grid: every glyph advances by
// CharWidth times its terminal cell width.
type Monospace struct {
	CharWidth float32
	RowHeight float32
	TabWidth  int
}

// Cells returns a Monospace for terminal cell coordinates.
func Cells(tabWidth int) Monospace {
	return Monospace{CharWidth: 1, RowHeight: 1, TabWidth: tabWidth}
}

func (m Monospace) normalized() Monospace {
	if m.CharWidth <= 0 {
		m.CharWidth = 1
	}
	if m.RowHeight <= 0 {
		m.RowHeight = 1
	}
	if m.TabWidth <= 0 {
		m.TabWidth = defaultTabWidth
	}
	return m
}

// glyph is one grapheme cluster of a logical line.
type glyph struct {
	start int // rune offset in the document
	runes int
	cells int

	isWhitespace bool
	isPunct      bool
}

func (m Monospace) Layout(job Job) *Layout {
	m = m.normalized()

	l := &Layout{
		Text:         job.Text,
		WrapWidth:    job.WrapWidth,
		RowHeight:    m.RowHeight,
		NewlineWidth: m.CharWidth,
		runes:        []rune(job.Text),
	}
	secs := sortedSections(job.Sections)

	budget := 0
	if job.WrapWidth > 0 {
		budget = max(int(job.WrapWidth/m.CharWidth), 1)
	}

	lines := strings.Split(job.Text, "\n")
	off := 0
	for li, line := range lines {
		glyphs := m.glyphs(line, off)
		segs := wrapGlyphs(glyphs, budget)
		for si, seg := range segs {
			row := m.row(glyphs[seg.start:seg.end], off, len(l.Rows))
			if seg.start < seg.end {
				row.Start = glyphs[seg.start].start
				last := glyphs[seg.end-1]
				row.End = last.start + last.runes
			}
			row.Sections = clipSections(secs, row.Start, row.End)
			row.EndsWithNewline = si == len(segs)-1 && li < len(lines)-1
			l.Rows = append(l.Rows, row)
		}
		off += utf8.RuneCountInString(line) + 1
	}
	return l
}

func (m Monospace) glyphs(line string, off int) []glyph {
	clusters := grapheme.Split(line)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]glyph, 0, len(clusters))
	cell := 0
	for _, c := range clusters {
		w := graphemeCellWidth(c, cell, m.TabWidth)
		class := grapheme.ClassOf(c)
		out = append(out, glyph{
			start:        off,
			runes:        utf8.RuneCountInString(c),
			cells:        w,
			isWhitespace: class == grapheme.ClassSpace,
			isPunct:      class == grapheme.ClassPunct,
		})
		off += out[len(out)-1].runes
		cell += w
	}
	return out
}

// row positions glyphs on row index i. An empty glyph run yields an empty row
// starting at off.
func (m Monospace) row(glyphs []glyph, off, i int) Row {
	n := 0
	for _, g := range glyphs {
		n += g.runes
	}
	xs := make([]float32, 0, n+1)
	var x float32
	for _, g := range glyphs {
		for k := 0; k < g.runes; k++ {
			xs = append(xs, x)
		}
		x += float32(g.cells) * m.CharWidth
	}
	xs = append(xs, x)

	y := float32(i) * m.RowHeight
	return Row{
		Start: off,
		End:   off,
		Rect:  Rect{Min: Point{X: 0, Y: y}, Max: Point{X: x, Y: y + m.RowHeight}},
		Xs:    xs,
	}
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	adv := tabWidth - visualCol%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}
