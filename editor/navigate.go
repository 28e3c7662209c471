package editor

// validNavMods reports whether mods (without Shift) selects a step size:
// none for a character or row, Alt for a word, Command for a row or document
// edge.
func validNavMods(mods Modifiers) bool {
	return mods == 0 || mods == ModAlt || mods == ModCommand
}

// navigate moves the primary cursor for arrow, Home and End keys. Shift
// extends the selection by the step the key takes without Shift. It reports
// whether the move was vertical.
func (m *Model) navigate(ev KeyEvent) bool {
	extend := ev.Mods.Has(ModShift)
	mods := ev.Mods &^ ModShift
	if !validNavMods(mods) {
		return false
	}

	off := m.sel.Primary.Offset
	n := m.buf.Len()
	target := off
	vertical := false

	switch ev.Key {
	case KeyLeft:
		switch mods {
		case 0:
			target = max(off-1, 0)
		case ModAlt:
			target = m.buf.PrevWordBoundary(off)
		case ModCommand:
			target = m.layout().RowBegin(off)
		}
	case KeyRight:
		switch mods {
		case 0:
			target = min(off+1, n)
		case ModAlt:
			target = m.buf.NextWordBoundary(off)
		case ModCommand:
			target = m.layout().RowEnd(off)
		}
	case KeyUp, KeyDown:
		switch mods {
		case 0:
			l := m.layout()
			x := m.preferredX
			if !m.hasPreferredX {
				x = l.CursorRect(off).Min.X
			}
			if ev.Key == KeyUp {
				target = l.Up(off, x)
			} else {
				target = l.Down(off, x)
			}
			m.preferredX, m.hasPreferredX = x, true
			vertical = true
		case ModCommand:
			if ev.Key == KeyDown {
				target = n
			} else {
				target = 0
			}
		default:
			return false
		}
	case KeyHome:
		switch mods {
		case 0:
			target = m.layout().RowBegin(off)
		case ModCommand:
			target = 0
		default:
			return false
		}
	case KeyEnd:
		switch mods {
		case 0:
			target = m.layout().RowEnd(off)
		case ModCommand:
			target = n
		default:
			return false
		}
	default:
		return false
	}

	m.moveTo(target, extend)
	return vertical
}

// moveTo places the primary cursor at offset. Unless extend is set the
// secondary cursor follows, collapsing the selection.
func (m *Model) moveTo(offset int, extend bool) {
	m.sel.Primary = Cursor{Offset: offset}
	if !extend {
		m.sel.Secondary = m.sel.Primary
	}
}
