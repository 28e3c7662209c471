package highlight

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/caret/layout"
)

func TestAlternating_ColorsEveryOtherWord(t *testing.T) {
	// The empty word between the two spaces still counts.
	secs, err := Alternating{}.Highlight("ab cd  ef")
	require.NoError(t, err)

	want := []layout.Section{
		{Start: 0, End: 2, Style: fg(blue)},
		{Start: 3, End: 5, Style: fg(red)},
		{Start: 7, End: 9, Style: fg(red)},
	}
	require.Equal(t, want, secs)
}

func TestAlternating_DarkUsesLightShades(t *testing.T) {
	secs, err := Alternating{Dark: true}.Highlight("a b")
	require.NoError(t, err)
	require.Len(t, secs, 2)
	require.Equal(t, fg(lightBlue), secs[0].Style)
	require.Equal(t, fg(lightRed), secs[1].Style)
}

func TestNormalizeSections_ClampsSortsAndDropsOverlaps(t *testing.T) {
	in := []layout.Section{
		{Start: 4, End: 9},
		{Start: 2, End: 1},
		{Start: 3, End: 3},
		{Start: 1, End: 5},
	}
	got := normalizeSections(in, 6)
	require.Equal(t, []layout.Section{{Start: 1, End: 2}, {Start: 4, End: 6}}, got)
}

func TestChroma_HighlightsKeywords(t *testing.T) {
	p := DarkPalette()
	h := NewChroma("go", "", p)
	require.Equal(t, "Go", h.Language())

	text := "package main\n\nfunc main() {}\n"
	secs, err := h.Highlight(text)
	require.NoError(t, err)
	require.NotEmpty(t, secs)
	require.Equal(t, layout.Section{Start: 0, End: 7, Style: p.Keyword}, secs[0])

	n := len([]rune(text))
	for i, s := range secs {
		require.Less(t, s.Start, s.End)
		require.LessOrEqual(t, s.End, n)
		if i > 0 {
			require.LessOrEqual(t, secs[i-1].End, s.Start)
		}
	}
}

func TestChroma_MatchesByFilename(t *testing.T) {
	h := NewChroma("", "main.py", LightPalette())
	require.Equal(t, "Python", h.Language())
}

func TestChroma_UnknownLanguageStillHighlights(t *testing.T) {
	h := NewChroma("no-such-language", "", DarkPalette())
	require.Equal(t, "", h.Language())

	secs, err := h.Highlight("just some words")
	require.NoError(t, err)
	for _, s := range secs {
		require.LessOrEqual(t, s.End, len("just some words"))
	}
}
