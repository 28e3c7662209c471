package layout

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Style is the visual treatment of a run of text. The zero Style renders
// with the shell's defaults.
type Style struct {
	Foreground    colorful.Color
	HasForeground bool

	Bold      bool
	Italic    bool
	Underline bool
}

// WithForeground returns s with its foreground set to c.
func (s Style) WithForeground(c colorful.Color) Style {
	s.Foreground = c
	s.HasForeground = true
	return s
}

// ForegroundHex returns the foreground as "#rrggbb", or "" when unset.
func (s Style) ForegroundHex() string {
	if !s.HasForeground {
		return ""
	}
	return s.Foreground.Clamped().Hex()
}

// Section styles the runes in [Start, End).
type Section struct {
	Start int
	End   int
	Style Style
}

// clipSections returns the sections that intersect [start, end), clipped to
// it, with unstyled sections filling any gaps. secs must be sorted by Start.
func clipSections(secs []Section, start, end int) []Section {
	if start >= end {
		return nil
	}
	out := make([]Section, 0, 2)
	at := start
	for _, s := range secs {
		if s.End <= at || s.Start >= s.End {
			continue
		}
		if s.Start >= end {
			break
		}
		if s.Start > at {
			out = append(out, Section{Start: at, End: s.Start})
			at = s.Start
		}
		e := min(s.End, end)
		out = append(out, Section{Start: at, End: e, Style: s.Style})
		at = e
		if at >= end {
			break
		}
	}
	if at < end {
		out = append(out, Section{Start: at, End: end})
	}
	return out
}

func sortedSections(secs []Section) []Section {
	if len(secs) == 0 {
		return nil
	}
	out := make([]Section, len(secs))
	copy(out, secs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
