// Package termui is a Bubble Tea component that drives an editor.Model from
// terminal input and renders its layout with lipgloss.
//
// The editor lays out text in terminal cells: one layout unit is one cell
// wide and one row high.
package termui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/editor"
	"github.com/iw2rmb/caret/layout"
)

// ScrollPolicy decides whether the viewport may move without the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll away from the caret.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the wheel; only caret moves scroll.
	ScrollFollowCursorOnly
)

type Config struct {
	Editor editor.Config

	KeyMap       KeyMap
	Style        Style
	ScrollPolicy ScrollPolicy

	// Context is passed to every editor tick. It bounds open requests.
	Context context.Context

	// NoWrap lays rows out at their natural width instead of the viewport's.
	NoWrap bool
}

// RedrawMsg asks the component to run an editor tick without input. Send it
// when a background file open finishes.
type RedrawMsg struct{}

// Model is a Bubble Tea component that renders and interacts with an
// editor.Model.
type Model struct {
	cfg Config
	ed  editor.Model

	viewport viewport.Model
	dragging bool

	last editor.Output
}

func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	ecfg := cfg.Editor
	if ecfg.Layouter == nil {
		ecfg.Layouter = layout.Cells(0)
	}
	m := Model{
		cfg:      cfg,
		ed:       editor.New(ecfg),
		viewport: viewport.New(0, 0),
	}
	m.tick(nil)
	return m
}

// Editor returns the underlying editor model.
func (m Model) Editor() editor.Model { return m.ed }

// Output returns the result of the most recent editor tick.
func (m Model) Output() editor.Output { return m.last }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.tick(nil)
	m.followCaret(m.last.Caret)
	return m
}

func (m Model) Focus() Model {
	m.tick([]editor.Event{editor.FocusEvent{Focused: true}})
	return m
}

func (m Model) Blur() Model {
	m.dragging = false
	m.tick([]editor.Event{editor.FocusEvent{Focused: false}})
	return m
}

func (m Model) Focused() bool { return m.ed.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if !m.ed.Focused() {
			return m, nil
		}
		evs := m.cfg.KeyMap.Events(msg)
		if len(evs) == 0 {
			return m, nil
		}
		m.tick(evs)
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	case RedrawMsg:
		m.tick(nil)
		return m, nil
	}
	return m, nil
}

func (m Model) View() string { return m.viewport.View() }

// tick runs one editor cycle with evs and re-renders the viewport.
func (m *Model) tick(evs []editor.Event) {
	var out editor.Output
	m.ed, out = m.ed.Tick(m.cfg.Context, editor.Frame{
		Events:    evs,
		WrapWidth: m.wrapWidth(),
		Viewport:  m.visibleRect(),
	})
	m.last = out

	lo, hi := m.ed.Selection().Sorted()
	m.viewport.SetContent(renderLayout(m.cfg.Style, frame{
		layout:    out.Layout,
		caret:     m.ed.Cursor().Offset,
		showCaret: out.HasCaret,
		selLo:     lo,
		selHi:     hi,
	}))
	if out.Scroll {
		m.followCaret(out.ScrollTo)
	}
}

// wrapWidth leaves one column for the caret placeholder past a full row.
func (m *Model) wrapWidth() float32 {
	if m.cfg.NoWrap || m.viewport.Width <= 1 {
		return 0
	}
	return float32(m.viewport.Width - 1)
}

func (m *Model) visibleRows() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}

// visibleRect is the viewport in layout coordinates.
func (m *Model) visibleRect() layout.Rect {
	h := m.visibleRows()
	if h == 0 || m.viewport.Width <= 0 {
		return layout.Rect{}
	}
	top := float32(m.viewport.YOffset)
	return layout.Rect{
		Min: layout.Point{X: 0, Y: top},
		Max: layout.Point{X: float32(m.viewport.Width), Y: top + float32(h)},
	}
}

func (m *Model) followCaret(r layout.Rect) {
	h := m.visibleRows()
	if h <= 0 {
		return
	}
	row := int(r.Min.Y)
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
