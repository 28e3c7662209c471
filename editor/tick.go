package editor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/iw2rmb/caret/layout"
)

// Frame is the input of one redraw cycle.
type Frame struct {
	Events    []Event
	WrapWidth float32

	// Viewport is the visible region in layout coordinates. A caret already
	// inside it produces no scroll request. The zero Rect disables the check.
	Viewport layout.Rect
}

// Output is what a shell needs to draw one cycle.
type Output struct {
	Layout *layout.Layout

	// Caret is the primary cursor's rectangle. HasCaret is false while idle.
	Caret    layout.Rect
	HasCaret bool

	// Selection has one rectangle per row the selection covers.
	Selection []layout.Rect

	// ScrollTo is set when the cursor moved this cycle and should be
	// scrolled into view.
	ScrollTo layout.Rect
	Scroll   bool

	// IME is the composition anchor while focused.
	IME    layout.Rect
	HasIME bool

	Changes     []CursorChange
	TextChanged bool

	Path     string
	Modified bool

	// Err joins the failures of this cycle: file open and save errors.
	Err error
}

// Tick runs one redraw cycle: it delivers a finished file open, applies the
// frame's events in order, forwards an open request, and lays out the
// resulting text. Layouts not used during the cycle are evicted from the
// cache when it returns.
func (m Model) Tick(ctx context.Context, in Frame) (Model, Output) {
	m.cache.BeginFrame()
	defer m.cache.EndFrame()

	var out Output
	m.wrapWidth = in.WrapWidth
	version := m.buf.Version()

	loaded := m.pollFile()
	for _, ev := range in.Events {
		var ch CursorChange
		var ok bool
		m, ch, ok = m.Apply(ev)
		if ok {
			out.Changes = append(out.Changes, ch)
		}
	}
	if m.openRequested {
		m.openRequested = false
		m.requestOpen(ctx)
	}

	l := m.layout()
	caret := l.CursorRect(m.sel.Primary.Offset)
	out.Layout = l
	out.Caret = caret
	out.HasCaret = m.focused
	out.Selection = l.SelectionRects(m.sel.Primary.Offset, m.sel.Secondary.Offset)
	if (loaded || len(out.Changes) > 0) && !visible(in.Viewport, caret) {
		out.ScrollTo = caret
		out.Scroll = true
	}
	if m.focused {
		out.IME = caret
		out.HasIME = true
	}

	out.TextChanged = m.buf.Version() != version
	out.Path = m.path
	out.Modified = m.Modified()
	out.Err = errors.Join(m.errs...)
	m.errs = nil
	return m, out
}

func visible(viewport, r layout.Rect) bool {
	if viewport == (layout.Rect{}) {
		return false
	}
	return r.Min.X >= viewport.Min.X && r.Max.X <= viewport.Max.X &&
		r.Min.Y >= viewport.Min.Y && r.Max.Y <= viewport.Max.Y
}

// pollFile loads a finished open request, if any.
func (m *Model) pollFile() bool {
	if m.bridge == nil {
		return false
	}
	msg, ok := m.bridge.Poll()
	if !ok {
		return false
	}
	if msg.Err != nil {
		m.fail(msg.Err)
		return false
	}

	m.buf.SetText(msg.Text)
	m.path = msg.Path
	m.sel = Collapsed(0)
	m.hasPreferredX = false
	m.savedVersion = m.buf.Version()
	m.logger.Info("file loaded", "path", msg.Path, "bytes", len(msg.Text))
	m.notifyChange()
	return true
}

func (m *Model) requestOpen(ctx context.Context) {
	if m.bridge == nil {
		m.fail(ErrNoFileBridge)
		return
	}
	cwd := m.cfg.Cwd
	if m.path != "" {
		cwd = filepath.Dir(m.path)
	}
	if err := m.bridge.RequestOpen(ctx, cwd); err != nil {
		m.fail(fmt.Errorf("editor: open: %w", err))
	}
}
