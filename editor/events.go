package editor

import "github.com/iw2rmb/caret/layout"

// Event is one discrete input event. The concrete types are TextEvent,
// KeyEvent, PointerEvent and FocusEvent.
type Event interface {
	isEvent()
}

// TextEvent inserts text typed or pasted by the user. Empty text and a bare
// "\n" or "\r" are ignored: line breaks arrive as KeyEnter.
type TextEvent struct {
	Text string
}

type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEnter

	// Letter keys used by shortcuts.
	KeyA
	KeyC
	KeyO
	KeyS
	KeyV
	KeyX
)

// Modifiers is a set of held modifier keys. ModCommand is the platform's
// line/shortcut modifier (Cmd on macOS, Ctrl elsewhere).
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCommand
)

func (m Modifiers) Has(mod Modifiers) bool { return m&mod == mod }

type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

type PointerKind uint8

const (
	PointerDown PointerKind = iota
	PointerDrag
	PointerUp
)

// PointerEvent is a primary-button pointer action. Pos is in layout
// coordinates.
type PointerEvent struct {
	Kind PointerKind
	Pos  layout.Point
	Mods Modifiers
}

type FocusEvent struct {
	Focused bool
}

func (TextEvent) isEvent()    {}
func (KeyEvent) isEvent()     {}
func (PointerEvent) isEvent() {}
func (FocusEvent) isEvent()   {}

// CursorChange is the selection after an event that moved the cursor or
// edited the text.
type CursorChange struct {
	Primary   Cursor
	Secondary Cursor
}

// ChangeEvent is passed to Config.OnChange after every effective text or
// selection change.
type ChangeEvent struct {
	Version   uint64
	Selection Selection

	Text string
}
