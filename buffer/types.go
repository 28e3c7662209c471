package buffer

import "fmt"

// Range is a half-open span of rune offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

// NormalizeRange returns r with Start <= End.
func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Len() int {
	r = NormalizeRange(r)
	return r.End - r.Start
}

// RowLocator resolves the first offset of the visual row containing offset.
// It is implemented by layouts built for the buffer's current text.
type RowLocator interface {
	RowBegin(offset int) int
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (b *Buffer) checkOffset(op string, off int) {
	if off < 0 || off > len(b.text) {
		panic(fmt.Sprintf("buffer: %s: offset %d out of range [0, %d]", op, off, len(b.text)))
	}
}
