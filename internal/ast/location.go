package ast

import "fmt"

// NodeID uniquely identifies an AST node within one compilation. It is the
// key the type checker's side tables (node-id -> type, node-id -> symbol)
// are built on.
type NodeID uint32

// NoNodeID is the sentinel "no ID" value for synthetic nodes that are not
// heap-allocated (e.g. the primitive variants of SimpleType).
const NoNodeID NodeID = ^NodeID(0)

// IDAllocator hands out fresh, unique NodeIDs for one build. A builder
// owns exactly one allocator per call to Build, so IDs are deterministic
// across repeated builds of identical input as long as traversal order is
// unchanged.
type IDAllocator struct {
	next NodeID
}

// NewIDAllocator returns an allocator starting from 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns a fresh NodeID.
func (a *IDAllocator) Next() NodeID {
	id := a.next
	a.next++
	return id
}

// Location is a byte-offset range plus redundant line/column positions,
// carried by every AST node for diagnostics. The owning SourceFile's text
// can be sliced with [Start, End) to recover the node's source text; AST
// nodes never duplicate source bytes themselves.
type Location struct {
	Start      uint32
	End        uint32
	StartLine  uint32
	StartCol   uint32
	EndLine    uint32
	EndCol     uint32
}

// String renders "line:column", the form diagnostics are displayed with.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.StartLine, l.StartCol)
}

// Visibility is a two-valued property on every top-level definition.
// Statements and expressions never carry visibility.
type Visibility int

const (
	Private Visibility = iota // default
	Public
)

func (v Visibility) String() string {
	if v == Public {
		return "public"
	}
	return "private"
}
