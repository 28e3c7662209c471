package termui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/caret/layout"
)

func markerStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	wrap := func(open, close string) lipgloss.Style {
		return r.NewStyle().Transform(func(s string) string { return open + s + close })
	}
	return Style{
		Text:      r.NewStyle(),
		Cursor:    wrap("[", "]"),
		Selection: wrap("{", "}"),
	}
}

func layoutOf(text string) *layout.Layout {
	return layout.Cells(4).Layout(layout.Job{Text: text})
}

func TestRender_CaretOnGlyph(t *testing.T) {
	got := renderLayout(markerStyle(), frame{layout: layoutOf("ab\ncd"), caret: 1, showCaret: true})
	if want := "a[b]\ncd"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_CaretAtRowEndUsesPlaceholder(t *testing.T) {
	got := renderLayout(markerStyle(), frame{layout: layoutOf("ab\ncd"), caret: 2, showCaret: true})
	if want := "ab[ ]\ncd"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_HiddenCaret(t *testing.T) {
	got := renderLayout(markerStyle(), frame{layout: layoutOf("ab"), caret: 2})
	if want := "ab"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_SelectionAcrossNewline(t *testing.T) {
	got := renderLayout(markerStyle(), frame{
		layout:    layoutOf("ab\ncd"),
		caret:     4,
		showCaret: true,
		selLo:     1,
		selHi:     4,
	})
	if want := "a{b}{ }\n{c}[d]"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_TabExpandsToItsCells(t *testing.T) {
	got := renderLayout(markerStyle(), frame{layout: layoutOf("\tx")})
	if want := "    x"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_WrappedRowCaretMovesToNextRow(t *testing.T) {
	l := layout.Cells(4).Layout(layout.Job{Text: "abcdef", WrapWidth: 3})
	got := renderLayout(markerStyle(), frame{layout: l, caret: 3, showCaret: true})
	if want := "abc\n[d]ef"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}
