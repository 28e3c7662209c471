package highlight

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/caret/layout"
)

// Chroma highlights source code with a chroma lexer.
type Chroma struct {
	lexer   chroma.Lexer
	palette Palette
}

// NewChroma selects a lexer by language name, then by file name. When
// neither matches, the lexer is chosen per call by analysing the text.
func NewChroma(language, filename string, p Palette) *Chroma {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil && filename != "" {
		lexer = lexers.Match(filename)
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return &Chroma{lexer: lexer, palette: p}
}

// Language returns the name of the selected lexer, or "" when the lexer is
// chosen by analysis.
func (c *Chroma) Language() string {
	if c.lexer == nil {
		return ""
	}
	return c.lexer.Config().Name
}

func (c *Chroma) Highlight(text string) ([]layout.Section, error) {
	if text == "" {
		return nil, nil
	}

	lexer := c.lexer
	if lexer == nil {
		lexer = lexers.Analyse(text)
		if lexer == nil {
			lexer = lexers.Fallback
		}
		lexer = chroma.Coalesce(lexer)
	}

	// Line endings are left alone so token offsets stay aligned with text.
	iter, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return nil, fmt.Errorf("highlight: tokenise %s: %w", lexer.Config().Name, err)
	}

	var out []layout.Section
	off := 0
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		n := utf8.RuneCountInString(tok.Value)
		if n == 0 {
			continue
		}
		if style := c.styleForToken(tok.Type); style != (layout.Style{}) {
			out = appendSection(out, layout.Section{Start: off, End: off + n, Style: style})
		}
		off += n
	}
	return normalizeSections(out, utf8.RuneCountInString(text)), nil
}

func (c *Chroma) styleForToken(ttype chroma.TokenType) layout.Style {
	p := c.palette
	if ttype == chroma.Error {
		return p.Error
	}
	switch {
	case ttype.InCategory(chroma.Comment):
		return p.Comment
	case ttype.InCategory(chroma.Keyword):
		return p.Keyword
	case ttype.InCategory(chroma.LiteralString):
		return p.String
	case ttype.InCategory(chroma.LiteralNumber):
		return p.Number
	case ttype.InCategory(chroma.Operator):
		return p.Operator
	case ttype.InCategory(chroma.Punctuation):
		return p.Punctuation
	case ttype.InCategory(chroma.Name):
		switch ttype {
		case chroma.NameFunction, chroma.NameFunctionMagic:
			return p.Function
		case chroma.NameClass, chroma.NameNamespace:
			return p.TypeName
		case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
			return p.Builtin
		case chroma.NameConstant:
			return p.Number
		}
	}
	return p.Default
}
