package check

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/dotandev/infc/internal/symbols"
	"github.com/dotandev/infc/internal/types"
)

// checkExpression infers the type of e, recording the result in the typed
// context and returning it so callers can fold it into a parent
// expression's own inference. expected is the bidirectional "type flowing
// in" hint -- nil when none is available (e.g. the callee of a call
// expression). It only guides inference; the result is not compared
// against it here, so callers report any mismatch themselves.
func (c *Checker) checkExpression(scope *symbols.Scope, e ast.Expression, expected *types.TypeInfo) types.TypeInfo {
	t := c.inferExpression(scope, e, expected)
	c.ctx.setType(e.ID(), t)
	return t
}

func (c *Checker) inferExpression(scope *symbols.Scope, e ast.Expression, expected *types.TypeInfo) types.TypeInfo {
	switch v := e.(type) {
	case *ast.Identifier:
		return c.inferIdentifier(scope, v)
	case *ast.UnitLiteral:
		return types.UnitType()
	case *ast.BoolLiteral:
		return types.BoolType()
	case *ast.StringLiteral:
		return types.StringType()
	case *ast.NumberLiteral:
		if expected != nil && expected.IsNumeric() {
			return *expected
		}
		return types.DefaultNumberType()
	case *ast.ArrayLiteral:
		return c.inferArrayLiteral(scope, v, expected)
	case *ast.BinaryExpression:
		return c.inferBinary(scope, v)
	case *ast.UnaryExpression:
		return c.inferUnary(scope, v)
	case *ast.ParenExpression:
		return c.checkExpression(scope, v.Inner, expected)
	case *ast.ArrayIndexExpression:
		return c.inferArrayIndex(scope, v)
	case *ast.MemberAccessExpression:
		return c.inferMemberAccess(scope, v)
	case *ast.TypeMemberAccessExpression:
		return c.inferTypeMemberAccess(scope, v)
	case *ast.CallExpression:
		return c.checkCall(scope, v, expected)
	case *ast.StructLiteralExpression:
		return c.inferStructLiteral(scope, v)
	case *ast.UzumakiExpression:
		if expected != nil {
			return *expected
		}
		c.diags.Addf(diagnostics.CannotInferUzumakiType, v.Loc(), "cannot infer type of uzumaki expression without surrounding context")
		return types.UnknownType()
	default:
		return types.UnknownType()
	}
}

func (c *Checker) inferIdentifier(scope *symbols.Scope, v *ast.Identifier) types.TypeInfo {
	sym, err := scope.Lookup(v.Name, scope)
	if err != nil {
		c.reportScopeError(err)
		return types.UnknownType()
	}
	if sym == nil {
		c.diags.Addf(diagnostics.UnknownIdentifier, v.Loc(), "undefined name %q", v.Name)
		return types.UnknownType()
	}
	c.ctx.setSymbol(v.ID(), sym)
	return sym.Type
}

func (c *Checker) inferArrayLiteral(scope *symbols.Scope, v *ast.ArrayLiteral, expected *types.TypeInfo) types.TypeInfo {
	var elemHint *types.TypeInfo
	if expected != nil && expected.Kind == types.Array && expected.Elem != nil {
		elemHint = expected.Elem
	}
	if len(v.Elements) == 0 {
		if elemHint != nil {
			return types.ArrayType(*elemHint, 0)
		}
		return types.ArrayType(types.UnknownType(), 0)
	}
	first := c.checkExpression(scope, v.Elements[0], elemHint)
	elemType := first
	if elemHint != nil {
		elemType = *elemHint
	}
	for _, el := range v.Elements[1:] {
		got := c.checkExpression(scope, el, &elemType)
		if elemType.Kind != types.Unknown && got.Kind != types.Unknown && !got.Equal(elemType) {
			c.diags.Addf(diagnostics.ArrayElementTypeMismatch, el.Loc(),
				"array element has type %s, expected %s", got.String(), elemType.String())
		}
	}
	return types.ArrayType(elemType, uint32(len(v.Elements)))
}

func (c *Checker) inferBinary(scope *symbols.Scope, v *ast.BinaryExpression) types.TypeInfo {
	switch {
	case v.Operator.IsLogical():
		boolHint := types.BoolType()
		l := c.checkExpression(scope, v.Left, &boolHint)
		r := c.checkExpression(scope, v.Right, &boolHint)
		if (l.Kind != types.Unknown && !l.Equal(boolHint)) || (r.Kind != types.Unknown && !r.Equal(boolHint)) {
			c.diags.Addf(diagnostics.BinaryOperandTypeMismatch, v.Loc(),
				"operator %s requires bool operands", v.Operator.String())
		}
		return types.BoolType()

	case v.Operator.IsComparison():
		l := c.checkExpression(scope, v.Left, nil)
		r := c.checkExpression(scope, v.Right, &l)
		if l.Kind != types.Unknown && r.Kind != types.Unknown && !l.Equal(r) {
			c.diags.Addf(diagnostics.BinaryOperandTypeMismatch, v.Loc(),
				"cannot compare %s with %s", l.String(), r.String())
		}
		return types.BoolType()

	default: // arithmetic, bitwise, shift
		l := c.checkExpression(scope, v.Left, nil)
		r := c.checkExpression(scope, v.Right, &l)
		if !l.IsNumeric() && l.Kind != types.Unknown {
			c.diags.Addf(diagnostics.InvalidBinaryOperand, v.Loc(), "operator %s requires numeric operands", v.Operator.String())
			return types.UnknownType()
		}
		if l.Kind != types.Unknown && r.Kind != types.Unknown && !l.Equal(r) {
			c.diags.Addf(diagnostics.BinaryOperandTypeMismatch, v.Loc(),
				"operator %s: mismatched operand types %s and %s", v.Operator.String(), l.String(), r.String())
		}
		return l
	}
}

func (c *Checker) inferUnary(scope *symbols.Scope, v *ast.UnaryExpression) types.TypeInfo {
	switch v.Operator {
	case ast.Not:
		boolHint := types.BoolType()
		got := c.checkExpression(scope, v.Operand, &boolHint)
		if got.Kind != types.Unknown && !got.Equal(boolHint) {
			c.diags.Addf(diagnostics.InvalidUnaryOperand, v.Loc(), "! requires a bool operand, found %s", got.String())
		}
		return types.BoolType()
	case ast.Neg:
		got := c.checkExpression(scope, v.Operand, nil)
		if got.Kind != types.Unknown && !got.IsSignedInteger() {
			c.diags.Addf(diagnostics.InvalidUnaryOperand, v.Loc(), "unary - requires a signed numeric operand, found %s", got.String())
		}
		return got
	default: // BitNot
		got := c.checkExpression(scope, v.Operand, nil)
		if got.Kind != types.Unknown && !got.IsNumeric() {
			c.diags.Addf(diagnostics.InvalidUnaryOperand, v.Loc(), "~ requires a numeric operand, found %s", got.String())
		}
		return got
	}
}

func (c *Checker) inferArrayIndex(scope *symbols.Scope, v *ast.ArrayIndexExpression) types.TypeInfo {
	arr := c.checkExpression(scope, v.Array, nil)
	idx := c.checkExpression(scope, v.Index, nil)
	if idx.Kind != types.Unknown && !idx.IsNumeric() {
		c.diags.Addf(diagnostics.ArrayIndexNotNumeric, v.Index.Loc(), "array index must be numeric, found %s", idx.String())
	}
	if arr.Kind == types.Unknown {
		return types.UnknownType()
	}
	if arr.Kind != types.Array || arr.Elem == nil {
		c.diags.Addf(diagnostics.ExpectedArrayType, v.Array.Loc(), "cannot index into non-array type %s", arr.String())
		return types.UnknownType()
	}
	return *arr.Elem
}

func (c *Checker) inferMemberAccess(scope *symbols.Scope, v *ast.MemberAccessExpression) types.TypeInfo {
	recv := c.checkExpression(scope, v.Receiver, nil)
	if recv.Kind == types.Unknown {
		return types.UnknownType()
	}
	if recv.Kind != types.Struct {
		c.diags.Addf(diagnostics.ExpectedStructType, v.Receiver.Loc(), "field access on non-struct type %s", recv.String())
		return types.UnknownType()
	}
	structSym, err := scope.Lookup(recv.Name, scope)
	if err != nil {
		c.reportScopeError(err)
		return types.UnknownType()
	}
	if structSym == nil || structSym.Scope == nil {
		c.diags.Addf(diagnostics.UndefinedStruct, v.Receiver.Loc(), "undefined struct %q", recv.Name)
		return types.UnknownType()
	}
	fieldSym, ok := structSym.Scope.Local(v.Member)
	if !ok || fieldSym.Kind != symbols.VariableSymbol {
		c.diags.Addf(diagnostics.FieldNotFound, v.Loc(), "struct %q has no field %q", recv.Name, v.Member)
		return types.UnknownType()
	}
	if fieldSym.Visibility == ast.Private && !scope.IsDescendantOf(structSym.Scope) {
		c.diags.Add(diagnostics.Diagnostic{
			Kind: diagnostics.PrivateAccessViolation, Location: v.Loc(),
			Message: "field \"" + v.Member + "\" of struct \"" + recv.Name + "\" is private",
			Context: diagnostics.FieldContext{StructName: recv.Name, FieldName: v.Member},
		})
		return types.UnknownType()
	}
	return fieldSym.Type
}

func (c *Checker) inferTypeMemberAccess(scope *symbols.Scope, v *ast.TypeMemberAccessExpression) types.TypeInfo {
	sym, err := scope.Lookup(v.TypeName, scope)
	if err != nil {
		c.reportScopeError(err)
		return types.UnknownType()
	}
	if sym == nil || sym.Kind != symbols.EnumSymbol {
		c.diags.Addf(diagnostics.UndefinedEnum, v.Loc(), "undefined enum %q", v.TypeName)
		return types.UnknownType()
	}
	for _, variant := range sym.Variants {
		if variant == v.Member {
			return types.EnumType(v.TypeName)
		}
	}
	c.diags.Addf(diagnostics.VariantNotFound, v.Loc(), "enum %q has no variant %q", v.TypeName, v.Member)
	return types.UnknownType()
}

func (c *Checker) inferStructLiteral(scope *symbols.Scope, v *ast.StructLiteralExpression) types.TypeInfo {
	sym, err := scope.Lookup(v.TypeName, scope)
	if err != nil {
		c.reportScopeError(err)
		return types.UnknownType()
	}
	if sym == nil || sym.Kind != symbols.StructSymbol {
		c.diags.Addf(diagnostics.UndefinedStruct, v.Loc(), "undefined struct %q", v.TypeName)
		return types.UnknownType()
	}
	def, _ := sym.Def.(*ast.StructDefinition)

	given := make(map[string]bool, len(v.Fields))
	for _, f := range v.Fields {
		given[f.Name] = true
		fieldSym, ok := sym.Scope.Local(f.Name)
		if !ok {
			c.diags.Addf(diagnostics.FieldNotFound, f.Value.Loc(), "struct %q has no field %q", v.TypeName, f.Name)
			c.checkExpression(scope, f.Value, nil)
			continue
		}
		expected := fieldSym.Type
		c.checkExpression(scope, f.Value, &expected)
	}
	if def != nil {
		for _, f := range def.Fields {
			if !given[f.Name] {
				c.diags.Addf(diagnostics.FieldNotFound, v.Loc(), "missing field %q in struct literal for %q", f.Name, v.TypeName)
			}
		}
	}
	return types.StructType(v.TypeName)
}
