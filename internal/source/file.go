// Package source owns the raw byte text of a compilation unit and derives
// line/column positions from byte offsets on demand, since the CST the
// builder consumes already carries byte offsets and the core has no
// token-by-token lexer of its own to track position incrementally.
package source

import (
	"github.com/dotandev/infc/internal/ast"
)

// File owns one source file's entire text as a byte sequence.
type File struct {
	name       string
	text       []byte
	lineStarts []uint32 // byte offset of the first byte of each line
}

// New builds a File from its name and raw text, precomputing the line
// index used by LineCol.
func New(name string, text []byte) *File {
	f := &File{name: name, text: text, lineStarts: []uint32{0}}
	for i, b := range text {
		if b == '\n' {
			f.lineStarts = append(f.lineStarts, uint32(i+1))
		}
	}
	return f
}

// Name returns the file's name (path or logical name), used in diagnostics.
func (f *File) Name() string { return f.name }

// Text returns the full source buffer. Callers must not mutate it.
func (f *File) Text() []byte { return f.text }

// Slice returns the source text spanned by loc.
func (f *File) Slice(loc ast.Location) string {
	if int(loc.End) > len(f.text) || loc.Start > loc.End {
		return ""
	}
	return string(f.text[loc.Start:loc.End])
}

// LineCol converts a byte offset to a 1-based (line, column) pair.
func (f *File) LineCol(offset uint32) (line, col uint32) {
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line = uint32(lo + 1)
	col = offset - f.lineStarts[lo] + 1
	return
}

// MakeLocation builds a Location from a byte range, filling in line/column
// by consulting the line index.
func (f *File) MakeLocation(start, end uint32) ast.Location {
	sl, sc := f.LineCol(start)
	el, ec := f.LineCol(end)
	return ast.Location{
		Start: start, End: end,
		StartLine: sl, StartCol: sc,
		EndLine: el, EndCol: ec,
	}
}
