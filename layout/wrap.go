package layout

type segment struct {
	start int
	end   int
}

// wrapGlyphs splits a logical line into rows of at most budget cells,
// breaking after whitespace where possible and between grapheme clusters
// otherwise. budget <= 0 disables wrapping. An empty line yields one empty
// segment.
func wrapGlyphs(glyphs []glyph, budget int) []segment {
	if len(glyphs) == 0 {
		return []segment{{}}
	}
	if budget <= 0 {
		return []segment{{start: 0, end: len(glyphs)}}
	}

	segs := make([]segment, 0, 1+len(glyphs)/budget)
	for start := 0; start < len(glyphs); {
		used := 0
		overflow := start
		for overflow < len(glyphs) {
			w := max(glyphs[overflow].cells, 1)
			if used > 0 && used+w > budget {
				break
			}
			used += w
			overflow++
		}
		// Whitespace hangs past the edge rather than opening the next row.
		for overflow < len(glyphs) && glyphs[overflow].isWhitespace {
			overflow++
		}

		end := overflow
		if overflow < len(glyphs) {
			if br, ok := findWordWrapBreak(glyphs, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(glyphs, start, overflow)
			}
		}
		if end <= start {
			end = min(start+1, len(glyphs))
		}

		segs = append(segs, segment{start: start, end: end})
		start = end
	}
	return segs
}

// findWordWrapBreak returns the index just past the last whitespace run in
// [start, overflow).
func findWordWrapBreak(glyphs []glyph, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(glyphs) {
		overflow = len(glyphs)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !glyphs[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && glyphs[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// adjustBreakForLeadingPunctuation moves a forced break left so the next row
// does not open with punctuation.
func adjustBreakForLeadingPunctuation(glyphs []glyph, start, overflow int) int {
	end := overflow
	for end < len(glyphs) && glyphs[end].isPunct && end-1 > start {
		end--
	}
	return end
}
