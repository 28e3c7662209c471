// Package buffer implements the rune-addressed document model.
//
// Offsets are 0-based rune indices into the document, valid in [0, Len()].
// Ranges are half-open: [Start, End). Passing an offset outside the document
// is a programming error and panics.
package buffer
