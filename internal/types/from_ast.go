package types

import "github.com/dotandev/infc/internal/ast"

// FromTypeExpression converts a syntactic type annotation to a TypeInfo,
// given the set of type-parameter names bound in the enclosing function or
// struct header. A Simple or Custom type whose name is in bound becomes a
// Generic; otherwise a Simple type becomes its matching Number/Bool/Unit,
// and a Custom type becomes Custom(name) pending resolution by the checker
// against the symbol table.
func FromTypeExpression(t ast.TypeExpression, bound map[string]struct{}) TypeInfo {
	switch v := t.(type) {
	case ast.SimpleType:
		if _, ok := bound[v.Kind.String()]; ok {
			return GenericType(v.Kind.String())
		}
		return fromSimpleTypeKind(v.Kind)

	case *ast.CustomType:
		if _, ok := bound[v.Name]; ok {
			return GenericType(v.Name)
		}
		if kind, ok := ast.SimpleTypeKindFromName(v.Name); ok {
			return fromSimpleTypeKind(kind)
		}
		return CustomType(v.Name)

	case *ast.QualifiedType:
		return QualifiedType(v.Module, v.Name)

	case *ast.GenericType:
		var params []TypeInfo
		for _, p := range v.Parameters {
			params = append(params, FromTypeExpression(p, bound))
		}
		info := CustomType(v.Base)
		if _, ok := bound[v.Base]; ok {
			info = GenericType(v.Base)
		}
		info.TypeParams = genericParamNames(params)
		return info

	case *ast.ArrayTypeNode:
		elem := FromTypeExpression(v.ElementType, bound)
		return ArrayType(elem, v.Size)

	case *ast.FunctionTypeNode:
		var params []TypeInfo
		for _, p := range v.Parameters {
			params = append(params, FromTypeExpression(p, bound))
		}
		var ret TypeInfo
		if v.ReturnType != nil {
			ret = FromTypeExpression(v.ReturnType, bound)
		} else {
			ret = UnitType()
		}
		return FunctionType(params, ret)

	default:
		return UnknownType()
	}
}

func fromSimpleTypeKind(k ast.SimpleTypeKind) TypeInfo {
	switch k {
	case ast.Unit:
		return UnitType()
	case ast.Bool:
		return BoolType()
	default:
		return NumberType(k)
	}
}

// genericParamNames collects the display names of parameters that are
// themselves unresolved Generic references, used to populate a carrier
// type's TypeParams for Display purposes.
func genericParamNames(params []TypeInfo) []string {
	var out []string
	for _, p := range params {
		if p.Kind == Generic {
			out = append(out, p.Name)
		}
	}
	return out
}
