package termui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/editor"
	"github.com/iw2rmb/caret/layout"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	// Only left button interactions move the caret.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		var mods editor.Modifiers
		if msg.Shift {
			mods |= editor.ModShift
		}
		m.dragging = true
		m.tick([]editor.Event{editor.PointerEvent{
			Kind: editor.PointerDown,
			Pos:  m.screenToLayout(msg.X, msg.Y),
			Mods: mods,
		}})

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.tick([]editor.Event{editor.PointerEvent{Kind: editor.PointerDrag, Pos: m.screenToLayout(x, y)}})

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, cmd
		}
		m.dragging = false
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.tick([]editor.Event{editor.PointerEvent{Kind: editor.PointerUp, Pos: m.screenToLayout(x, y)}})
	}

	return m, cmd
}

// screenToLayout maps viewport-local cell coordinates to layout coordinates.
func (m Model) screenToLayout(x, y int) layout.Point {
	return layout.Point{X: float32(x), Y: float32(y + m.viewport.YOffset)}
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = min(max(x, 0), m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = min(max(y, 0), m.viewport.Height-1)
	}
	return x, y
}
