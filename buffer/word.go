package buffer

import (
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/caret/internal/grapheme"
)

// Word boundary rules:
//   - whitespace (newlines included) next to the caret is skipped first
//   - then one run of grapheme clusters of the same class is skipped, where
//     the classes are word characters and punctuation
//   - a whitespace-only stretch that reaches the document edge is its own unit

// PrevWordBoundary returns the offset of the word boundary left of offset.
func (b *Buffer) PrevWordBoundary(offset int) int {
	b.checkOffset("prev word boundary", offset)

	i := offset
	for i > 0 && unicode.IsSpace(b.text[i-1]) {
		i--
	}
	if i == 0 {
		return 0
	}

	j := i
	for j > 0 && !unicode.IsSpace(b.text[j-1]) {
		j--
	}
	clusters := grapheme.Split(string(b.text[j:i]))
	if len(clusters) == 0 {
		return i
	}

	class := grapheme.ClassOf(clusters[len(clusters)-1])
	for k := len(clusters) - 1; k >= 0; k-- {
		if grapheme.ClassOf(clusters[k]) != class {
			break
		}
		i -= utf8.RuneCountInString(clusters[k])
	}
	return i
}

// NextWordBoundary returns the offset of the word boundary right of offset.
func (b *Buffer) NextWordBoundary(offset int) int {
	b.checkOffset("next word boundary", offset)

	n := len(b.text)
	i := offset
	for i < n && unicode.IsSpace(b.text[i]) {
		i++
	}
	if i == n {
		return n
	}

	j := i
	for j < n && !unicode.IsSpace(b.text[j]) {
		j++
	}
	clusters := grapheme.Split(string(b.text[i:j]))
	if len(clusters) == 0 {
		return i
	}

	class := grapheme.ClassOf(clusters[0])
	for _, c := range clusters {
		if grapheme.ClassOf(c) != class {
			break
		}
		i += utf8.RuneCountInString(c)
	}
	return i
}
