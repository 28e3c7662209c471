package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/caret/layout"
)

var (
	blue      = rgb(0, 0, 255)
	lightBlue = rgb(173, 216, 230)
	red       = rgb(255, 0, 0)
	lightRed  = rgb(255, 128, 128)
)

// Alternating colors space-separated words: even words blue, odd words red.
// Spaces stay unstyled. Dark selects the lighter shades.
type Alternating struct {
	Dark bool
}

func (a Alternating) Highlight(text string) ([]layout.Section, error) {
	even, odd := blue, red
	if a.Dark {
		even, odd = lightBlue, lightRed
	}

	var out []layout.Section
	off := 0
	for i, word := range strings.Split(text, " ") {
		n := utf8.RuneCountInString(word)
		if n > 0 {
			c := even
			if i%2 == 1 {
				c = odd
			}
			out = append(out, layout.Section{Start: off, End: off + n, Style: fg(c)})
		}
		off += n + 1
	}
	return out, nil
}
