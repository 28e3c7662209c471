package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Class groups grapheme clusters for word stepping.
type Class uint8

const (
	ClassWord Class = iota
	ClassSpace
	ClassPunct
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether the cluster's base rune is punctuation or a symbol.
// Connector punctuation ('_') counts as a word character. Trailing combining
// marks do not change the class of their base.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	if unicode.Is(unicode.Pc, r) {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// ClassOf classifies a single grapheme cluster.
func ClassOf(cluster string) Class {
	switch {
	case IsSpace(cluster):
		return ClassSpace
	case IsPunct(cluster):
		return ClassPunct
	default:
		return ClassWord
	}
}

// Width returns the terminal cell width of cluster.
func Width(cluster string) int {
	return uniseg.StringWidth(cluster)
}
