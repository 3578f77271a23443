package astbuild

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/cst"
)

// buildTypeExpression lowers a type-annotation CST node to an
// ast.TypeExpression. Primitive names produce a stack-allocated
// ast.SimpleType; everything else allocates a concrete node.
func (b *Builder) buildTypeExpression(n cst.Node) ast.TypeExpression {
	if n == nil {
		return nil
	}
	loc := b.loc(n)

	switch n.Kind() {
	case "simple_type":
		name := b.text(n)
		if kind, ok := ast.SimpleTypeKindFromName(name); ok {
			return ast.NewSimpleType(loc, kind)
		}
		b.fail(n, "unknown primitive type %q", name)
		return ast.NewSimpleType(loc, ast.Unit)

	case "custom_type":
		name := b.text(n.ChildByFieldName("name"))
		return ast.NewCustomType(b.nextID(), loc, name)

	case "qualified_type":
		mod := b.text(n.ChildByFieldName("module"))
		name := b.text(n.ChildByFieldName("name"))
		return ast.NewQualifiedType(b.nextID(), loc, mod, name)

	case "generic_type":
		base := b.text(n.ChildByFieldName("base"))
		var params []ast.TypeExpression
		for _, a := range n.ChildrenByFieldName("type_argument") {
			if t := b.buildTypeExpression(a); t != nil {
				params = append(params, t)
			}
		}
		return ast.NewGenericType(b.nextID(), loc, base, params)

	case "array_type":
		elem := b.buildTypeExpression(n.ChildByFieldName("element"))
		size := uint32(0)
		if s := n.ChildByFieldName("size"); s != nil {
			size = parseUintText(b.text(s))
		}
		return ast.NewArrayTypeNode(b.nextID(), loc, elem, size)

	case "function_type":
		var params []ast.TypeExpression
		for _, p := range n.ChildrenByFieldName("parameter") {
			if t := b.buildTypeExpression(p); t != nil {
				params = append(params, t)
			}
		}
		var ret ast.TypeExpression
		if r := n.ChildByFieldName("return"); r != nil {
			ret = b.buildTypeExpression(r)
		}
		return ast.NewFunctionTypeNode(b.nextID(), loc, params, ret)

	default:
		// Bare identifier used as a type: primitive if it names one of the
		// ten builtins, otherwise a custom type reference.
		name := b.text(n)
		if kind, ok := ast.SimpleTypeKindFromName(name); ok {
			return ast.NewSimpleType(loc, kind)
		}
		return ast.NewCustomType(b.nextID(), loc, name)
	}
}

// parseUintText converts a decimal array-size literal's source text to a
// uint32, returning 0 on malformed input (the checker, not the builder,
// diagnoses semantic issues with array sizes).
func parseUintText(s string) uint32 {
	var v uint32
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		v = v*10 + uint32(r-'0')
	}
	return v
}
