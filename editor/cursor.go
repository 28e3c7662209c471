package editor

import "github.com/iw2rmb/caret/buffer"

// Cursor is a position in the document. Its row and column depend on a
// layout and are derived on demand (see layout.Layout.RowCol).
type Cursor struct {
	Offset int
}

// Selection is an ordered pair of cursors. Primary is the end that moves;
// Secondary is the anchor. A selection whose ends coincide is a plain caret.
type Selection struct {
	Primary   Cursor
	Secondary Cursor
}

// Collapsed returns an empty selection at offset.
func Collapsed(offset int) Selection {
	return Selection{Primary: Cursor{Offset: offset}, Secondary: Cursor{Offset: offset}}
}

func (s Selection) IsEmpty() bool {
	return s.Primary.Offset == s.Secondary.Offset
}

// Sorted returns the selection bounds in ascending order.
func (s Selection) Sorted() (lo, hi int) {
	lo, hi = s.Primary.Offset, s.Secondary.Offset
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (s Selection) Range() buffer.Range {
	lo, hi := s.Sorted()
	return buffer.Range{Start: lo, End: hi}
}

func (s Selection) clamp(n int) Selection {
	s.Primary.Offset = min(max(s.Primary.Offset, 0), n)
	s.Secondary.Offset = min(max(s.Secondary.Offset, 0), n)
	return s
}

// State is the focus/selection state of a Model.
type State uint8

const (
	// StateIdle: not focused. The selection is kept but inert.
	StateIdle State = iota
	StateFocusedEmpty
	StateFocusedSelecting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFocusedEmpty:
		return "focused"
	case StateFocusedSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}
