package buffer

import (
	"strings"
	"testing"
)

func TestBuffer_New_TextAndLen(t *testing.T) {
	b := New("h\u00e9llo\nw\u00f6rld", Options{})
	if got, want := b.Text(), "h\u00e9llo\nw\u00f6rld"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Len(), 11; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got := b.Version(); got != 0 {
		t.Fatalf("version=%d, want 0", got)
	}
}

func TestBuffer_NormalizeNewlines(t *testing.T) {
	b := New("a\r\nb\rc", Options{NormalizeNewlines: true})
	if got, want := b.Text(), "a\nb\nc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	b.Insert(b.Len(), "\r\nd")
	if got, want := b.Text(), "a\nb\nc\nd"; got != want {
		t.Fatalf("text after insert=%q, want %q", got, want)
	}

	raw := New("a\r\nb", Options{})
	if got, want := raw.Len(), 4; got != want {
		t.Fatalf("raw len=%d, want %d", got, want)
	}
}

func TestBuffer_SliceAndRuneAt(t *testing.T) {
	b := New("πテxt", Options{})
	if got, want := b.Slice(1, 3), "テx"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got, want := b.Slice(3, 1), "テx"; got != want {
		t.Fatalf("reversed slice=%q, want %q", got, want)
	}
	if got, want := b.RuneAt(1), 'テ'; got != want {
		t.Fatalf("rune at=%q, want %q", got, want)
	}
}

func TestBuffer_SetText_BumpsVersionOnlyOnChange(t *testing.T) {
	b := New("abc", Options{})
	b.SetText("abc")
	if got := b.Version(); got != 0 {
		t.Fatalf("version after identical SetText=%d, want 0", got)
	}
	b.SetText("xyz")
	if got := b.Version(); got != 1 {
		t.Fatalf("version=%d, want 1", got)
	}
	if got, want := b.Text(), "xyz"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_OutOfRangeOffsetsPanic(t *testing.T) {
	cases := map[string]func(b *Buffer){
		"insert-negative":       func(b *Buffer) { b.Insert(-1, "x") },
		"insert-past-end":       func(b *Buffer) { b.Insert(4, "x") },
		"delete-range":          func(b *Buffer) { b.DeleteRange(0, 9) },
		"delete-char-before":    func(b *Buffer) { b.DeleteCharBefore(5) },
		"delete-word-before":    func(b *Buffer) { b.DeleteWordBefore(-2) },
		"rune-at-end":           func(b *Buffer) { b.RuneAt(3) },
		"line-col":              func(b *Buffer) { b.LineCol(4) },
		"delete-prefix-desync":  func(b *Buffer) { b.DeleteLinePrefixBefore(1, rowBeginFunc(func(int) int { return 2 })) },
		"prev-word-past-end":    func(b *Buffer) { b.PrevWordBoundary(10) },
		"slice-negative-bounds": func(b *Buffer) { b.Slice(-1, 2) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic")
				}
				if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "buffer: ") {
					t.Fatalf("panic=%v, want buffer-prefixed message", r)
				}
			}()
			fn(New("abc", Options{}))
		})
	}
}

func TestBuffer_ClampOffset(t *testing.T) {
	b := New("abc", Options{})
	if got := b.ClampOffset(-3); got != 0 {
		t.Fatalf("clamp(-3)=%d, want 0", got)
	}
	if got := b.ClampOffset(7); got != 3 {
		t.Fatalf("clamp(7)=%d, want 3", got)
	}
	if got := b.ClampOffset(2); got != 2 {
		t.Fatalf("clamp(2)=%d, want 2", got)
	}
}

type rowBeginFunc func(int) int

func (f rowBeginFunc) RowBegin(offset int) int { return f(offset) }
