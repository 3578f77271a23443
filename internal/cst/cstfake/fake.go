// Package cstfake provides an in-memory cst.Node implementation for tests
// that have no concrete-syntax grammar to invoke. The AST builder's own
// test suite is built against this rather than a real parser, the way
// the original Rust implementation's builder tests drove a real
// tree-sitter grammar over literal source snippets — this is the
// Go-idiomatic equivalent for a core module with no parser of its own.
package cstfake

import (
	"strings"

	"github.com/dotandev/infc/internal/cst"
)

// Node is a hand-buildable concrete-syntax node. Construct a tree with
// nested Node literals and field maps, then pass the root to the builder.
type Node struct {
	kind        string
	startByte   uint32
	endByte     uint32
	startPoint  cst.Point
	endPoint    cst.Point
	children    []*Node
	fields      map[string][]*Node
	isErrorNode bool
}

// New creates a leaf or container node spanning [start, end) bytes.
func New(kind string, start, end uint32) *Node {
	return &Node{
		kind:      kind,
		startByte: start,
		endByte:   end,
		fields:    make(map[string][]*Node),
	}
}

// At sets 1-based line/column positions for this node.
func (n *Node) At(startLine, startCol, endLine, endCol uint32) *Node {
	n.startPoint = cst.Point{Row: startLine, Column: startCol}
	n.endPoint = cst.Point{Row: endLine, Column: endCol}
	return n
}

// WithError marks this node as a parser error placeholder.
func (n *Node) WithError() *Node {
	n.isErrorNode = true
	return n
}

// AddChild appends an anonymous (or named, via field) child.
func (n *Node) AddChild(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// AddField appends child under the given grammar field name, and also as
// an ordinary positional child (matching tree-sitter's behavior where
// every field-named child is also reachable positionally).
func (n *Node) AddField(field string, child *Node) *Node {
	n.fields[field] = append(n.fields[field], child)
	n.children = append(n.children, child)
	return n
}

func (n *Node) Kind() string { return n.kind }

func (n *Node) ChildCount() int { return len(n.children) }

func (n *Node) Child(i int) cst.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) NamedChildCount() int {
	count := 0
	for range n.children {
		count++
	}
	return count
}

func (n *Node) NamedChild(i int) cst.Node { return n.Child(i) }

func (n *Node) ChildByFieldName(name string) cst.Node {
	fs := n.fields[name]
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}

func (n *Node) ChildrenByFieldName(name string) []cst.Node {
	fs := n.fields[name]
	out := make([]cst.Node, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

func (n *Node) StartByte() uint32       { return n.startByte }
func (n *Node) EndByte() uint32         { return n.endByte }
func (n *Node) StartPosition() cst.Point { return n.startPoint }
func (n *Node) EndPosition() cst.Point   { return n.endPoint }
func (n *Node) IsError() bool           { return n.isErrorNode }

func (n *Node) UTF8Text(source []byte) string {
	if int(n.endByte) > len(source) || n.startByte > n.endByte {
		return ""
	}
	return string(source[n.startByte:n.endByte])
}

// Positions fills in start/end line/column for every node in the tree by
// scanning the given source text, so callers building fixtures don't have
// to compute them by hand. Lines and columns are 1-based.
func Positions(root *Node, source string) {
	lineStarts := []uint32{0}
	for i, ch := range source {
		if ch == '\n' {
			lineStarts = append(lineStarts, uint32(i+1))
		}
	}
	lineCol := func(offset uint32) cst.Point {
		line := 0
		for i, start := range lineStarts {
			if start <= offset {
				line = i
			} else {
				break
			}
		}
		col := offset - lineStarts[line] + 1
		return cst.Point{Row: uint32(line + 1), Column: col}
	}

	var walk func(*Node)
	walk = func(n *Node) {
		n.startPoint = lineCol(n.startByte)
		n.endPoint = lineCol(n.endByte)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
}

// Leaf is a convenience constructor for a token-shaped node whose span is
// the first occurrence of text within source, starting the search at from.
func Leaf(kind, text, source string, from uint32) *Node {
	idx := strings.Index(source[from:], text)
	if idx < 0 {
		return New(kind, from, from)
	}
	start := from + uint32(idx)
	return New(kind, start, start+uint32(len(text)))
}
