package termui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/editor"
)

// KeyMap binds terminal keys to editor key events.
//
// Terminals do not report a Command modifier, so Command actions use ctrl
// fallbacks.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding

	WordLeft, WordRight           key.Binding
	ShiftWordLeft, ShiftWordRight key.Binding

	RowStart, RowEnd           key.Binding
	ShiftRowStart, ShiftRowEnd key.Binding
	DocStart, DocEnd           key.Binding
	ShiftDocStart, ShiftDocEnd key.Binding

	Backspace, DeleteWord, DeleteRowPrefix key.Binding
	Delete, DeleteWordForward, DeleteRowSuffix key.Binding
	Enter, Tab key.Binding

	SelectAll        key.Binding
	Copy, Cut, Paste key.Binding
	Open, Save       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:       key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight:      key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),
		ShiftWordLeft:  key.NewBinding(key.WithKeys("alt+shift+left", "ctrl+shift+left"), key.WithHelp("ctrl+shift+←", "select word left")),
		ShiftWordRight: key.NewBinding(key.WithKeys("alt+shift+right", "ctrl+shift+right"), key.WithHelp("ctrl+shift+→", "select word right")),

		RowStart:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		RowEnd:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "row end")),
		ShiftRowStart: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to row start")),
		ShiftRowEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to row end")),
		DocStart:      key.NewBinding(key.WithKeys("ctrl+home", "ctrl+up"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:        key.NewBinding(key.WithKeys("ctrl+end", "ctrl+down"), key.WithHelp("ctrl+end", "document end")),
		ShiftDocStart: key.NewBinding(key.WithKeys("ctrl+shift+home", "ctrl+shift+up"), key.WithHelp("ctrl+shift+home", "select to start")),
		ShiftDocEnd:   key.NewBinding(key.WithKeys("ctrl+shift+end", "ctrl+shift+down"), key.WithHelp("ctrl+shift+end", "select to end")),

		Backspace:         key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		DeleteWord:        key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("ctrl+w", "delete word left")),
		DeleteRowPrefix:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to row start")),
		Delete:            key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		DeleteWordForward: key.NewBinding(key.WithKeys("alt+delete", "alt+d"), key.WithHelp("alt+d", "delete word right")),
		DeleteRowSuffix:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "delete to row end")),
		Enter:             key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:               key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	}
}

type binding struct {
	key.Binding
	ev editor.KeyEvent
}

func (km KeyMap) bindings() []binding {
	ev := func(k editor.Key, mods editor.Modifiers) editor.KeyEvent {
		return editor.KeyEvent{Key: k, Mods: mods}
	}
	const (
		shift = editor.ModShift
		alt   = editor.ModAlt
		cmd   = editor.ModCommand
	)
	return []binding{
		{km.Left, ev(editor.KeyLeft, 0)},
		{km.Right, ev(editor.KeyRight, 0)},
		{km.Up, ev(editor.KeyUp, 0)},
		{km.Down, ev(editor.KeyDown, 0)},
		{km.ShiftLeft, ev(editor.KeyLeft, shift)},
		{km.ShiftRight, ev(editor.KeyRight, shift)},
		{km.ShiftUp, ev(editor.KeyUp, shift)},
		{km.ShiftDown, ev(editor.KeyDown, shift)},

		{km.WordLeft, ev(editor.KeyLeft, alt)},
		{km.WordRight, ev(editor.KeyRight, alt)},
		{km.ShiftWordLeft, ev(editor.KeyLeft, shift|alt)},
		{km.ShiftWordRight, ev(editor.KeyRight, shift|alt)},

		{km.RowStart, ev(editor.KeyHome, 0)},
		{km.RowEnd, ev(editor.KeyEnd, 0)},
		{km.ShiftRowStart, ev(editor.KeyHome, shift)},
		{km.ShiftRowEnd, ev(editor.KeyEnd, shift)},
		{km.DocStart, ev(editor.KeyHome, cmd)},
		{km.DocEnd, ev(editor.KeyEnd, cmd)},
		{km.ShiftDocStart, ev(editor.KeyHome, shift|cmd)},
		{km.ShiftDocEnd, ev(editor.KeyEnd, shift|cmd)},

		{km.Backspace, ev(editor.KeyBackspace, 0)},
		{km.DeleteWord, ev(editor.KeyBackspace, alt)},
		{km.DeleteRowPrefix, ev(editor.KeyBackspace, cmd)},
		{km.Delete, ev(editor.KeyDelete, 0)},
		{km.DeleteWordForward, ev(editor.KeyDelete, alt)},
		{km.DeleteRowSuffix, ev(editor.KeyDelete, cmd)},
		{km.Enter, ev(editor.KeyEnter, 0)},
		{km.Tab, ev(editor.KeyTab, 0)},

		{km.SelectAll, ev(editor.KeyA, cmd)},
		{km.Copy, ev(editor.KeyC, cmd)},
		{km.Cut, ev(editor.KeyX, cmd)},
		{km.Paste, ev(editor.KeyV, cmd)},
		{km.Open, ev(editor.KeyO, cmd)},
		{km.Save, ev(editor.KeyS, cmd)},
	}
}

// Events translates a key message into editor events. Unbound keys that
// carry printable runes become text; anything else yields nil.
func (km KeyMap) Events(msg tea.KeyMsg) []editor.Event {
	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		if len(msg.Runes) == 0 {
			return nil
		}
		return []editor.Event{editor.TextEvent{Text: string(msg.Runes)}}
	}

	for _, b := range km.bindings() {
		if key.Matches(msg, b.Binding) {
			return []editor.Event{b.ev}
		}
	}

	switch {
	case msg.Type == tea.KeySpace && !msg.Alt:
		return []editor.Event{editor.TextEvent{Text: " "}}
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		return []editor.Event{editor.TextEvent{Text: string(msg.Runes)}}
	}
	return nil
}
