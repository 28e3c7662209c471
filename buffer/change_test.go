package buffer

import "testing"

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("a", Options{})

	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}

	b.DeleteCharBefore(0)
	b.Insert(1, "")
	b.Replace(0, 1, "a")
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change after no-op mutations")
	}
}

func TestBuffer_Change_InsertShape(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()

	b.Insert(1, "X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.VersionBefore, v; got != want {
		t.Fatalf("version before=%d, want %d", got, want)
	}
	if got, want := ch.VersionAfter, v+1; got != want {
		t.Fatalf("version after=%d, want %d", got, want)
	}
	if got, want := ch.Range, (Range{Start: 1, End: 1}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	if ch.Inserted != "X" || ch.Deleted != "" {
		t.Fatalf("inserted=%q deleted=%q, want %q and empty", ch.Inserted, ch.Deleted, "X")
	}
}

func TestBuffer_Change_ReplaceShape(t *testing.T) {
	b := New("hello world", Options{})
	b.Replace(5, 0, "X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.Range, (Range{Start: 0, End: 5}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	if ch.Deleted != "hello" || ch.Inserted != "X" {
		t.Fatalf("deleted=%q inserted=%q", ch.Deleted, ch.Inserted)
	}
}

func TestRange_NormalizeAndLen(t *testing.T) {
	r := NormalizeRange(Range{Start: 5, End: 2})
	if r != (Range{Start: 2, End: 5}) {
		t.Fatalf("normalized=%v", r)
	}
	if got := (Range{Start: 5, End: 2}).Len(); got != 3 {
		t.Fatalf("len=%d, want 3", got)
	}
	if !(Range{Start: 4, End: 4}).IsEmpty() {
		t.Fatalf("expected empty range")
	}
}
