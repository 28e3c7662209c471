package termui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/caret/internal/grapheme"
	"github.com/iw2rmb/caret/layout"
)

// frame is what one render pass needs from the editor.
type frame struct {
	layout    *layout.Layout
	caret     int
	showCaret bool
	selLo     int
	selHi     int
}

func renderLayout(st Style, f frame) string {
	if f.layout == nil {
		return ""
	}
	caretRow := -1
	if f.showCaret {
		caretRow = f.layout.RowOf(f.caret)
	}
	out := make([]string, len(f.layout.Rows))
	for i := range f.layout.Rows {
		out[i] = renderRow(st, f, i, i == caretRow)
	}
	return strings.Join(out, "\n")
}

func renderRow(st Style, f frame, i int, hasCaret bool) string {
	l := f.layout
	r := l.Rows[i]
	text := l.RowText(i)

	var sb strings.Builder
	col := 0
	for _, cluster := range grapheme.Split(text) {
		n := utf8.RuneCountInString(cluster)
		off := r.Start + col
		cells := int(r.Xs[col+n] - r.Xs[col])

		glyph := cluster
		if cluster == "\t" {
			glyph = strings.Repeat(" ", max(cells, 1))
		}

		var style lipgloss.Style
		switch {
		case hasCaret && off == f.caret:
			style = st.Cursor
		case off >= f.selLo && off < f.selHi:
			style = st.Selection
		default:
			style = sectionStyle(st.Text, sectionAt(r.Sections, off).Style)
		}
		sb.WriteString(style.Render(glyph))
		col += n
	}

	// The caret after the last glyph, and a selected newline, each take one
	// placeholder cell.
	switch {
	case hasCaret && f.caret == r.End:
		sb.WriteString(st.Cursor.Render(" "))
	case r.EndsWithNewline && r.End >= f.selLo && r.End < f.selHi:
		sb.WriteString(st.Selection.Render(" "))
	}
	return sb.String()
}

func sectionAt(secs []layout.Section, off int) layout.Section {
	for _, s := range secs {
		if off >= s.Start && off < s.End {
			return s
		}
	}
	return layout.Section{}
}
