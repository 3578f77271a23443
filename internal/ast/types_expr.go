package ast

import "strings"

// SimpleTypeKind enumerates the ten primitive builtin types. These are
// recognized directly by CST kind (type_i8 ... type_u64, type_bool,
// type_unit) and produce a SimpleType value rather than a heap node, which
// keeps the AST allocation-free for the overwhelmingly common case of a
// primitive type annotation.
type SimpleTypeKind int

const (
	Unit SimpleTypeKind = iota
	Bool
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
)

var simpleTypeNames = [...]string{
	Unit: "unit", Bool: "bool",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	U8: "u8", U16: "u16", U32: "u32", U64: "u64",
}

func (k SimpleTypeKind) String() string { return simpleTypeNames[k] }

// SimpleTypeKindFromName looks up a primitive type name case-sensitively,
// returning ok=false if name does not name one of the ten primitives.
func SimpleTypeKindFromName(name string) (SimpleTypeKind, bool) {
	for k, n := range simpleTypeNames {
		if n == name {
			return SimpleTypeKind(k), true
		}
	}
	return 0, false
}

// IsNumeric reports whether this is one of the eight numeric kinds.
func (k SimpleTypeKind) IsNumeric() bool { return k >= I8 && k <= U64 }

// IsSigned reports whether this is one of the four signed numeric kinds.
func (k SimpleTypeKind) IsSigned() bool { return k >= I8 && k <= I64 }

// SimpleType is a stack-allocated reference to one of the ten primitives.
// It has no NodeID of its own (NoNodeID) since it is never heap-allocated.
type SimpleType struct {
	Kind SimpleTypeKind
	loc  Location
}

func (t SimpleType) ID() NodeID          { return NoNodeID }
func (t SimpleType) Loc() Location       { return t.loc }
func (t SimpleType) typeExpressionNode() {}
func (t SimpleType) String() string      { return t.Kind.String() }

// CustomType is a user identifier used as a type, produced for any
// identifier the builder does not recognize as one of the ten primitives —
// including names that will later resolve to a generic parameter.
type CustomType struct {
	base
	Name string
}

func (t *CustomType) typeExpressionNode() {}

// QualifiedType is a module-qualified type reference `Mod::Name`.
type QualifiedType struct {
	base
	Module string
	Name   string
}

func (t *QualifiedType) typeExpressionNode() {}
func (t *QualifiedType) String() string      { return t.Module + "::" + t.Name }

// GenericType is a parameterized application `Base<P1, P2, ...>`.
type GenericType struct {
	base
	Base       string
	Parameters []TypeExpression
}

func (t *GenericType) typeExpressionNode() {}

func (t *GenericType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Base)
	sb.WriteByte('<')
	for i, p := range t.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(typeExprString(p))
	}
	sb.WriteByte('>')
	return sb.String()
}

// ArrayTypeNode is `[T; N]` where N is a compile-time constant size.
type ArrayTypeNode struct {
	base
	ElementType TypeExpression
	Size        uint32
}

func (t *ArrayTypeNode) typeExpressionNode() {}

// FunctionTypeNode is a function type `(P1, P2) -> R`.
type FunctionTypeNode struct {
	base
	Parameters []TypeExpression
	ReturnType TypeExpression // nil means unit
}

func (t *FunctionTypeNode) typeExpressionNode() {}

func typeExprString(t TypeExpression) string {
	switch v := t.(type) {
	case SimpleType:
		return v.String()
	case *CustomType:
		return v.Name
	case *QualifiedType:
		return v.String()
	case *GenericType:
		return v.String()
	case *ArrayTypeNode:
		return "[" + typeExprString(v.ElementType) + "]"
	case *FunctionTypeNode:
		return "fn(...)"
	default:
		return "?"
	}
}
