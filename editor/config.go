package editor

import (
	"log/slog"

	"github.com/iw2rmb/caret/fileio"
	"github.com/iw2rmb/caret/highlight"
	"github.com/iw2rmb/caret/layout"
)

// Clipboard provides editor-level clipboard integration. Errors are logged
// and otherwise ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Config configures the editor Model.
type Config struct {
	// Initial text and the file it came from.
	Text string
	Path string

	// ReadOnly ignores every mutation. Navigation and selection still work.
	ReadOnly bool
	// Focused starts the editor focused instead of idle.
	Focused bool

	// Forwarded to buffer.Options.
	NormalizeNewlines bool

	// WrapWidth is the initial wrap width; Tick replaces it with the frame's.
	WrapWidth float32

	// Cache lays out and highlights text. When nil, one is built from
	// Highlighter and Layouter.
	Cache       *highlight.Cache
	Highlighter highlight.Highlighter
	Layouter    layout.Layouter

	// Bridge serves open requests. Cwd is where the chooser starts when the
	// editor has no path yet.
	Bridge *fileio.Bridge
	Cwd    string

	// WriteFile saves text to path. Defaults to fileio.Write.
	WriteFile func(path, text string) error

	Clipboard Clipboard

	// OnChange is called after every effective text or selection change.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}
