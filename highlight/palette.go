package highlight

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iw2rmb/caret/layout"
)

// Palette maps token categories to styles. Default applies to everything
// else and is normally the zero Style.
type Palette struct {
	Default     layout.Style
	Keyword     layout.Style
	TypeName    layout.Style
	Function    layout.Style
	String      layout.Style
	Number      layout.Style
	Comment     layout.Style
	Operator    layout.Style
	Punctuation layout.Style
	Builtin     layout.Style
	Error       layout.Style
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fg(c colorful.Color) layout.Style { return layout.Style{}.WithForeground(c) }

// DarkPalette suits light text on a dark background.
func DarkPalette() Palette {
	kw := fg(rgb(0xc6, 0x78, 0xdd))
	kw.Bold = true
	comment := fg(rgb(0x7f, 0x84, 0x8e))
	comment.Italic = true
	errStyle := fg(rgb(0xe0, 0x6c, 0x75))
	errStyle.Bold = true
	return Palette{
		Keyword:     kw,
		TypeName:    fg(rgb(0xe5, 0xc0, 0x7b)),
		Function:    fg(rgb(0x61, 0xaf, 0xef)),
		String:      fg(rgb(0x98, 0xc3, 0x79)),
		Number:      fg(rgb(0xd1, 0x9a, 0x66)),
		Comment:     comment,
		Operator:    fg(rgb(0x56, 0xb6, 0xc2)),
		Punctuation: fg(rgb(0xab, 0xb2, 0xbf)),
		Builtin:     fg(rgb(0xe5, 0xc0, 0x7b)),
		Error:       errStyle,
	}
}

// LightPalette suits dark text on a light background.
func LightPalette() Palette {
	kw := fg(rgb(0xa6, 0x26, 0xa4))
	kw.Bold = true
	comment := fg(rgb(0xa0, 0xa1, 0xa7))
	comment.Italic = true
	errStyle := fg(rgb(0xe4, 0x56, 0x49))
	errStyle.Bold = true
	return Palette{
		Keyword:     kw,
		TypeName:    fg(rgb(0xc1, 0x84, 0x01)),
		Function:    fg(rgb(0x40, 0x78, 0xf2)),
		String:      fg(rgb(0x50, 0xa1, 0x4f)),
		Number:      fg(rgb(0x98, 0x68, 0x01)),
		Comment:     comment,
		Operator:    fg(rgb(0x01, 0x84, 0xbc)),
		Punctuation: fg(rgb(0x38, 0x3a, 0x42)),
		Builtin:     fg(rgb(0xc1, 0x84, 0x01)),
		Error:       errStyle,
	}
}
