// Package editor is a headless text editing engine.
//
// A Model owns a buffer, a selection and focus state. Input arrives as
// discrete events applied one at a time with Apply, or batched per redraw
// cycle with Tick, which also returns the geometry a shell needs to draw.
package editor

import (
	"log/slog"

	"github.com/iw2rmb/caret/buffer"
	"github.com/iw2rmb/caret/fileio"
	"github.com/iw2rmb/caret/highlight"
	"github.com/iw2rmb/caret/layout"
)

// Model is the editor state. Methods use value receivers and return the
// updated Model; the buffer and cache are shared between copies.
type Model struct {
	cfg    Config
	buf    *buffer.Buffer
	cache  *highlight.Cache
	bridge *fileio.Bridge
	logger *slog.Logger

	sel       Selection
	focused   bool
	dragging  bool
	wrapWidth float32

	// preferredX is the x vertical moves aim for. It survives consecutive
	// vertical moves and is dropped by anything else.
	preferredX    float32
	hasPreferredX bool

	path          string
	savedVersion  uint64
	openRequested bool

	errs []error
}

func New(cfg Config) Model {
	m := Model{
		cfg:       cfg,
		buf:       buffer.New(cfg.Text, buffer.Options{NormalizeNewlines: cfg.NormalizeNewlines}),
		cache:     cfg.Cache,
		bridge:    cfg.Bridge,
		logger:    cfg.Logger,
		focused:   cfg.Focused,
		wrapWidth: cfg.WrapWidth,
		path:      cfg.Path,
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	if m.cache == nil {
		m.cache = highlight.NewCache(highlight.Options{
			Highlighter: cfg.Highlighter,
			Layouter:    cfg.Layouter,
			Logger:      m.logger,
		})
	}
	if m.cfg.WriteFile == nil {
		m.cfg.WriteFile = fileio.Write
	}
	m.savedVersion = m.buf.Version()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Text() string { return m.buf.Text() }

func (m Model) Selection() Selection { return m.sel }

// Cursor returns the primary cursor.
func (m Model) Cursor() Cursor { return m.sel.Primary }

func (m Model) Focused() bool { return m.focused }

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) State() State {
	switch {
	case !m.focused:
		return StateIdle
	case m.sel.IsEmpty():
		return StateFocusedEmpty
	default:
		return StateFocusedSelecting
	}
}

// Path returns the file the document was opened from or will be saved to.
func (m Model) Path() string { return m.path }

// Modified reports whether the text changed since it was loaded or saved.
func (m Model) Modified() bool { return m.buf.Version() != m.savedVersion }

func (m Model) WrapWidth() float32 { return m.wrapWidth }

// Layout returns the layout of the current text.
func (m Model) Layout() *layout.Layout { return m.layout() }

// SelectedText returns the text covered by the selection.
func (m Model) SelectedText() string {
	lo, hi := m.sel.Sorted()
	return m.buf.Slice(lo, hi)
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.dragging = false
	return m
}

func (m Model) SetWrapWidth(w float32) Model {
	m.wrapWidth = w
	return m
}

func (m Model) SetPath(path string) Model {
	m.path = path
	return m
}

// SetText replaces the document. The selection is clamped into the new text.
func (m Model) SetText(text string) Model {
	m.buf.SetText(text)
	m.sel = m.sel.clamp(m.buf.Len())
	m.hasPreferredX = false
	return m
}

// SetSelection replaces the selection, clamping both ends into the document.
func (m Model) SetSelection(sel Selection) Model {
	m.sel = sel.clamp(m.buf.Len())
	m.hasPreferredX = false
	return m
}

// layout is always built for the current text; the cache makes repeated
// calls within a cycle free.
func (m *Model) layout() *layout.Layout {
	return m.cache.Layout(m.buf.Text(), m.wrapWidth)
}

func (m *Model) fail(err error) {
	m.logger.Warn("editor operation failed", "err", err)
	m.errs = append(m.errs, err)
}

func (m *Model) notifyChange() {
	if m.cfg.OnChange == nil {
		return
	}
	m.cfg.OnChange(ChangeEvent{
		Version:   m.buf.Version(),
		Selection: m.sel,
		Text:      m.buf.Text(),
	})
}
