package buffer

// Change describes the most recent effective mutation.
//
// Range is the replaced span in offsets of the document before the change;
// Inserted occupies [Range.Start, Range.Start+len(Inserted in runes)) after it.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64

	Range    Range
	Deleted  string
	Inserted string
}

type changeBuilder struct {
	versionBefore uint64
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange() changeBuilder {
	return changeBuilder{versionBefore: b.version}
}

func (b *Buffer) commitChange(cb changeBuilder, r Range, deleted, inserted string) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		Range:         NormalizeRange(r),
		Deleted:       deleted,
		Inserted:      inserted,
	}
	b.hasLastChange = true
}
