package termui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/caret/editor"
)

func newFocused(text string) Model {
	m := New(Config{Editor: editor.Config{Text: text, Focused: true}, Style: markerStyle()})
	return m.SetSize(20, 5)
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := newFocused("ab")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got, want := m.Editor().Text(), "aXb"; got != want {
		t.Fatalf("text after insert=%q, want %q", got, want)
	}
	if got, want := m.Editor().Cursor().Offset, 2; got != want {
		t.Fatalf("cursor after insert=%d, want %d", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Editor().Text(), "ab"; got != want {
		t.Fatalf("text after backspace=%q, want %q", got, want)
	}
}

func TestUpdate_SpaceAndPaste(t *testing.T) {
	m := newFocused("")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ctrl+s"), Paste: true})
	if got, want := m.Editor().Text(), "a ctrl+s"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Editor: editor.Config{Text: "ab"}}).SetSize(20, 5)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got, want := m.Editor().Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	m, _ = m.Update(tea.FocusMsg{})
	if !m.Focused() {
		t.Fatalf("focus message should focus the editor")
	}
	m, _ = m.Update(tea.BlurMsg{})
	if m.Focused() {
		t.Fatalf("blur message should blur the editor")
	}
}

func TestUpdate_ViewShowsCaret(t *testing.T) {
	m := newFocused("ab\ncd")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	lines := viewLines(m.View())
	if len(lines) != 5 {
		t.Fatalf("view rows=%d, want 5", len(lines))
	}
	if got, want := strings.Join(lines[:2], "\n"), "ab\n[c]d"; got != want {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestUpdate_ClickMovesCaretAndDragSelects(t *testing.T) {
	m := New(Config{Editor: editor.Config{Text: "hello\nworld"}}).SetSize(20, 5)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Focused() {
		t.Fatalf("click should focus the editor")
	}
	if got, want := m.Editor().Cursor().Offset, 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if got, want := m.Editor().SelectedText(), "ello\nwor"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}

	m, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if got, want := m.Editor().SelectedText(), "ello\nwor"; got != want {
		t.Fatalf("motion without a button must not change the selection: %q", got)
	}
}

func TestUpdate_CaretScrollsIntoView(t *testing.T) {
	m := New(Config{Editor: editor.Config{Text: "1\n2\n3\n4\n5\n6", Focused: true}}).SetSize(10, 2)

	for range 4 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got, want := m.viewport.YOffset, 3; got != want {
		t.Fatalf("yoffset=%d, want %d", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("yoffset=%d, want 0", got)
	}
}

func TestOSC52Clipboard_RoundTrip(t *testing.T) {
	cb := NewOSC52Clipboard(nil)
	m := New(Config{Editor: editor.Config{Text: "hello", Focused: true, Clipboard: cb}}).SetSize(20, 2)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := m.Editor().Text(), "llohe"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

// viewLines splits a rendered view into rows without the viewport's padding.
func viewLines(view string) []string {
	lines := strings.Split(view, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestUpdate_ScrollPolicy(t *testing.T) {
	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	text := "1\n2\n3\n4\n5\n6"

	m := New(Config{Editor: editor.Config{Text: text}}).SetSize(10, 2)
	m, _ = m.Update(wheel)
	if got, want := m.viewport.YOffset, 3; got != want {
		t.Fatalf("manual scroll: yoffset=%d, want %d", got, want)
	}
	if got := m.Editor().Cursor().Offset; got != 0 {
		t.Fatalf("wheel must not move the caret: cursor=%d", got)
	}

	m = New(Config{Editor: editor.Config{Text: text}, ScrollPolicy: ScrollFollowCursorOnly}).SetSize(10, 2)
	m, _ = m.Update(wheel)
	if got := m.viewport.YOffset; got != 0 {
		t.Fatalf("follow-cursor-only: yoffset=%d, want 0", got)
	}
}
