package editor

import (
	"fmt"
	"strings"
)

// Apply applies one event. It returns the new selection and true when the
// event moved the cursor or changed the text.
//
// While the editor is idle only pointer-down and focus events have any
// effect. Modifier combinations with no assigned meaning are ignored.
func (m Model) Apply(ev Event) (Model, CursorChange, bool) {
	before := m.sel
	version := m.buf.Version()
	vertical := false

	switch ev := ev.(type) {
	case TextEvent:
		m.insertText(ev.Text)
	case KeyEvent:
		vertical = m.applyKey(ev)
	case PointerEvent:
		m.applyPointer(ev)
	case FocusEvent:
		if ev.Focused {
			m = m.Focus()
		} else {
			m = m.Blur()
		}
	}
	if !vertical {
		m.hasPreferredX = false
	}

	if m.sel == before && m.buf.Version() == version {
		return m, CursorChange{}, false
	}
	m.notifyChange()
	return m, CursorChange{Primary: m.sel.Primary, Secondary: m.sel.Secondary}, true
}

func (m *Model) editable() bool {
	return m.focused && !m.cfg.ReadOnly
}

func (m *Model) insertText(s string) {
	if !m.editable() {
		return
	}
	if s == "" || s == "\n" || s == "\r" {
		return
	}
	m.replaceSelection(s)
}

// replaceSelection deletes the selection, inserts s in its place and
// collapses the selection after the inserted text.
func (m *Model) replaceSelection(s string) {
	lo, hi := m.sel.Sorted()
	at := m.buf.Replace(lo, hi, s)
	m.sel = Collapsed(at)
}

func (m *Model) deleteSelection() {
	lo, hi := m.sel.Sorted()
	m.buf.DeleteRange(lo, hi)
	m.sel = Collapsed(lo)
}

// applyKey reports whether the key was a vertical move.
func (m *Model) applyKey(ev KeyEvent) bool {
	if !m.focused {
		return false
	}

	switch ev.Key {
	case KeyTab:
		if ev.Mods == 0 && m.editable() {
			m.replaceSelection("\t")
		}
	case KeyEnter:
		if ev.Mods&^ModShift == 0 && m.editable() {
			m.replaceSelection("\n")
		}
	case KeyBackspace:
		m.backspace(ev.Mods &^ ModShift)
	case KeyDelete:
		m.deleteForward(ev.Mods &^ ModShift)
	case KeyA:
		if ev.Mods == ModCommand {
			m.sel = Selection{Primary: Cursor{Offset: m.buf.Len()}}
		}
	case KeyC:
		if ev.Mods == ModCommand {
			m.copySelection()
		}
	case KeyX:
		if ev.Mods == ModCommand {
			m.copySelection()
			if m.editable() && !m.sel.IsEmpty() {
				m.deleteSelection()
			}
		}
	case KeyV:
		if ev.Mods == ModCommand {
			m.paste()
		}
	case KeyO:
		if ev.Mods == ModCommand {
			m.openRequested = true
		}
	case KeyS:
		if ev.Mods == ModCommand {
			m.save()
		}
	default:
		return m.navigate(ev)
	}
	return false
}

func (m *Model) backspace(mods Modifiers) {
	if !m.editable() || !validNavMods(mods) {
		return
	}
	if !m.sel.IsEmpty() {
		m.deleteSelection()
		return
	}

	off := m.sel.Primary.Offset
	switch mods {
	case 0:
		off = m.buf.DeleteCharBefore(off)
	case ModAlt:
		off = m.buf.DeleteWordBefore(off)
	case ModCommand:
		off = m.buf.DeleteLinePrefixBefore(off, m.layout())
	}
	m.sel = Collapsed(off)
}

func (m *Model) deleteForward(mods Modifiers) {
	if !m.editable() || !validNavMods(mods) {
		return
	}
	if !m.sel.IsEmpty() {
		m.deleteSelection()
		return
	}

	off := m.sel.Primary.Offset
	switch mods {
	case 0:
		m.buf.DeleteCharAfter(off)
	case ModAlt:
		m.buf.DeleteRange(off, m.buf.NextWordBoundary(off))
	case ModCommand:
		l := m.layout()
		m.buf.DeleteRange(off, l.Rows[l.RowOf(off)].End)
	}
	m.sel = Collapsed(off)
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil || m.sel.IsEmpty() {
		return
	}
	lo, hi := m.sel.Sorted()
	if err := m.cfg.Clipboard.WriteText(m.buf.Slice(lo, hi)); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
	}
}

func (m *Model) paste() {
	if m.cfg.Clipboard == nil || !m.editable() {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.logger.Warn("clipboard read failed", "err", err)
		return
	}
	if s == "" {
		return
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	m.replaceSelection(s)
}

func (m *Model) save() {
	if m.path == "" {
		m.fail(ErrNoPath)
		return
	}
	text := m.buf.Text()
	if err := m.cfg.WriteFile(m.path, text); err != nil {
		m.fail(fmt.Errorf("editor: save %s: %w", m.path, err))
		return
	}
	m.savedVersion = m.buf.Version()
	m.logger.Info("file saved", "path", m.path, "bytes", len(text))
}

func (m *Model) applyPointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		extend := m.focused && ev.Mods.Has(ModShift)
		m.focused = true
		m.moveTo(m.layout().OffsetAt(ev.Pos), extend)
		m.dragging = true
	case PointerDrag, PointerUp:
		if !m.dragging || !m.focused {
			return
		}
		m.sel.Primary = Cursor{Offset: m.layout().OffsetAt(ev.Pos)}
		if ev.Kind == PointerUp {
			m.dragging = false
		}
	}
}
