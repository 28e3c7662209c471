// Package highlight styles text for display and memoizes the resulting
// layouts for the duration of a redraw cycle.
package highlight

import (
	"sort"

	"github.com/iw2rmb/caret/layout"
)

// Highlighter returns styled sections for text. Section offsets are rune
// offsets into text. Sections may be unsorted; overlapping sections are
// resolved in favor of the one that starts first.
type Highlighter interface {
	Highlight(text string) ([]layout.Section, error)
}

// Func adapts a function to the Highlighter interface.
type Func func(text string) ([]layout.Section, error)

func (f Func) Highlight(text string) ([]layout.Section, error) { return f(text) }

// Plain leaves text unstyled.
type Plain struct{}

func (Plain) Highlight(string) ([]layout.Section, error) { return nil, nil }

func normalizeSections(secs []layout.Section, n int) []layout.Section {
	if len(secs) == 0 {
		return nil
	}
	n = max(n, 0)

	out := make([]layout.Section, 0, len(secs))
	for _, s := range secs {
		start := min(max(s.Start, 0), n)
		end := min(max(s.End, 0), n)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, layout.Section{Start: start, End: end, Style: s.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})

	merged := make([]layout.Section, 0, len(out))
	for _, s := range out {
		if len(merged) > 0 && s.Start < merged[len(merged)-1].End {
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// appendSection appends s, extending the last section instead when it is
// adjacent and equally styled.
func appendSection(secs []layout.Section, s layout.Section) []layout.Section {
	if s.Start >= s.End {
		return secs
	}
	if len(secs) > 0 {
		last := &secs[len(secs)-1]
		if last.End == s.Start && last.Style == s.Style {
			last.End = s.End
			return secs
		}
	}
	return append(secs, s)
}
