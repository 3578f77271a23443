package ast

// base is embedded by every heap-allocated node to provide the Node
// interface's ID() and Loc() without repeating the same two methods on
// every node type — the Go equivalent of the shared "id + location" header
// every generated node struct carries in the reference implementation.
type base struct {
	id  NodeID
	loc Location
}

func (b base) ID() NodeID   { return b.id }
func (b base) Loc() Location { return b.loc }

func newBase(id NodeID, loc Location) base {
	return base{id: id, loc: loc}
}
