// Package check implements the bidirectional type checker: registration
// of every definition into a scope forest, use-directive resolution, and
// a single-pass walk that infers and checks every expression and
// statement, producing a TypedContext and an error list.
package check

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/dotandev/infc/internal/symbols"
	"github.com/dotandev/infc/internal/types"
)

// TypedContext is the whole-program output of checking: node-id -> type,
// node-id -> resolved symbol, and the accumulated diagnostics. It is
// written exclusively during checking and is read-only once returned.
type TypedContext struct {
	typeOf   map[ast.NodeID]types.TypeInfo
	symbolOf map[ast.NodeID]*symbols.Symbol
	errors   []diagnostics.Diagnostic
}

func newTypedContext() *TypedContext {
	return &TypedContext{
		typeOf:   make(map[ast.NodeID]types.TypeInfo),
		symbolOf: make(map[ast.NodeID]*symbols.Symbol),
	}
}

// TypeOf returns the inferred type of the expression or variable-binding
// site with the given node id.
func (c *TypedContext) TypeOf(id ast.NodeID) (types.TypeInfo, bool) {
	t, ok := c.typeOf[id]
	return t, ok
}

// SymbolOf returns the symbol an identifier-reference node resolved to.
func (c *TypedContext) SymbolOf(id ast.NodeID) (*symbols.Symbol, bool) {
	s, ok := c.symbolOf[id]
	return s, ok
}

// Errors returns every diagnostic collected during registration and
// checking, in first-seen order.
func (c *TypedContext) Errors() []diagnostics.Diagnostic { return c.errors }

func (c *TypedContext) setType(id ast.NodeID, t types.TypeInfo) {
	if id == ast.NoNodeID {
		return
	}
	c.typeOf[id] = t
}

func (c *TypedContext) setSymbol(id ast.NodeID, sym *symbols.Symbol) {
	if id == ast.NoNodeID || sym == nil {
		return
	}
	c.symbolOf[id] = sym
}
