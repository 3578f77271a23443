// Package ast defines the Abstract Syntax Tree node types produced by
// lowering a concrete syntax tree (see internal/cst). Nodes carry stable
// identifiers and source-span metadata but no token text of their own;
// source text is recovered by slicing the owning SourceFile.
package ast

// Node is the base interface every AST node implements.
type Node interface {
	// ID returns this node's stable identifier, or NoNodeID for synthetic,
	// non-heap-allocated nodes (e.g. SimpleType).
	ID() NodeID
	// Loc returns the node's source location.
	Loc() Location
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node inside a block that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Definition is any top-level (or module-nested) named construct.
type Definition interface {
	Node
	definitionNode()
	DefName() string
	DefVisibility() Visibility
}

// TypeExpression is a reference to a type as written in source: a simple
// builtin, an array, a custom/qualified/generic name, or a function type.
type TypeExpression interface {
	Node
	typeExpressionNode()
}

// ReservedWords is the set of source-language keywords, rejected as
// identifiers wherever an identifier is being defined (function, struct,
// enum, type alias, constant, spec, module, variable, or parameter name).
var ReservedWords = map[string]struct{}{
	"fn": {}, "struct": {}, "enum": {}, "type": {}, "const": {},
	"spec": {}, "module": {}, "use": {}, "let": {}, "var": {},
	"return": {}, "break": {}, "if": {}, "else": {}, "loop": {},
	"assert": {}, "self": {}, "public": {}, "private": {}, "true": {},
	"false": {}, "unit": {}, "bool": {}, "i8": {}, "i16": {}, "i32": {},
	"i64": {}, "u8": {}, "u16": {}, "u32": {}, "u64": {},
	"forall": {}, "exists": {}, "assume": {}, "unique": {}, "uzumaki": {},
}

// IsReserved reports whether name is a reserved keyword.
func IsReserved(name string) bool {
	_, ok := ReservedWords[name]
	return ok
}
