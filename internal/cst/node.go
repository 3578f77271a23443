// Package cst defines the concrete-syntax-tree interface consumed by the
// AST builder. The core never parses source text itself; it is handed a
// tree produced by an external parser and lowers it to a typed AST.
package cst

// Point is a 1-based line/column position inside a source file.
type Point struct {
	Row    uint32 // 1-based line number
	Column uint32 // 1-based column number
}

// Node is the external CST abstraction the builder consumes. Its shape
// mirrors tree-sitter's node API (Kind/ChildByFieldName/StartByte/...),
// since that is the concrete-syntax representation the rest of the
// toolchain produces; see internal/cst/tscst for a tree-sitter-backed
// implementation and internal/cst/cstfake for an in-memory one used by
// tests that have no grammar to invoke.
type Node interface {
	// Kind returns the grammar symbol name for this node, e.g. "source_file".
	Kind() string

	// ChildCount returns the number of children, named or anonymous.
	ChildCount() int
	// Child returns the i-th child (named or anonymous), or nil if out of range.
	Child(i int) Node
	// NamedChildCount returns the number of named children.
	NamedChildCount() int
	// NamedChild returns the i-th named child, or nil if out of range.
	NamedChild(i int) Node

	// ChildByFieldName returns the child registered under the given grammar
	// field name, or nil if there is none.
	ChildByFieldName(name string) Node
	// ChildrenByFieldName returns every child registered under the given
	// grammar field name, in source order.
	ChildrenByFieldName(name string) []Node

	StartByte() uint32
	EndByte() uint32
	StartPosition() Point
	EndPosition() Point

	// UTF8Text returns the source slice this node spans, given the full
	// source buffer it was parsed from.
	UTF8Text(source []byte) string
}

// ErrorAware is implemented by nodes whose IsError reports whether they
// are a parser error placeholder. The base
// Node interface doesn't carry this (not every CST implementation needs
// it); implementations that do should type-assert to this interface.
type ErrorAware interface {
	IsError() bool
}
