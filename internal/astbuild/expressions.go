package astbuild

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/cst"
)

var binaryOperatorByText = map[string]ast.BinaryOperator{
	"+": ast.Add, "-": ast.Sub, "*": ast.Mul, "/": ast.Div, "%": ast.Mod, "**": ast.Pow,
	"==": ast.Eq, "!=": ast.NotEq, "<": ast.Lt, "<=": ast.LtEq, ">": ast.Gt, ">=": ast.GtEq,
	"&&": ast.And, "||": ast.Or, "^^": ast.Xor, "=>": ast.Implies,
	"&": ast.BitAnd, "|": ast.BitOr, "^": ast.BitXor, "<<": ast.Shl, ">>": ast.Shr,
}

var unaryOperatorByText = map[string]ast.UnaryOperator{
	"!": ast.Not, "-": ast.Neg, "~": ast.BitNot,
}

// buildExpression lowers any expression CST node to an ast.Expression.
func (b *Builder) buildExpression(n cst.Node) ast.Expression {
	if n == nil {
		return nil
	}
	id := b.nextID()
	loc := b.loc(n)

	switch n.Kind() {
	case "identifier":
		return ast.NewIdentifier(id, loc, b.text(n))

	case "unit_literal":
		return ast.NewUnitLiteral(id, loc)

	case "bool_literal":
		return ast.NewBoolLiteral(id, loc, b.text(n) == "true")

	case "string_literal":
		return ast.NewStringLiteral(id, loc, b.text(n))

	case "number_literal":
		return ast.NewNumberLiteral(id, loc, b.text(n))

	case "array_literal":
		var elems []ast.Expression
		for _, e := range n.ChildrenByFieldName("element") {
			if ex := b.buildExpression(e); ex != nil {
				elems = append(elems, ex)
			}
		}
		return ast.NewArrayLiteral(id, loc, elems)

	case "binary_expression":
		left := b.buildExpression(n.ChildByFieldName("left"))
		right := b.buildExpression(n.ChildByFieldName("right"))
		opNode := n.ChildByFieldName("operator")
		op, ok := binaryOperatorByText[b.text(opNode)]
		if !ok {
			b.fail(n, "unknown binary operator %q", b.text(opNode))
		}
		return ast.NewBinaryExpression(id, loc, left, op, right)

	case "unary_expression":
		operand := b.buildExpression(n.ChildByFieldName("operand"))
		opNode := n.ChildByFieldName("operator")
		op, ok := unaryOperatorByText[b.text(opNode)]
		if !ok {
			b.fail(n, "unknown unary operator %q", b.text(opNode))
		}
		return ast.NewUnaryExpression(id, loc, op, operand)

	case "paren_expression":
		inner := b.buildExpression(n.ChildByFieldName("inner"))
		return ast.NewParenExpression(id, loc, inner)

	case "array_index_expression":
		arr := b.buildExpression(n.ChildByFieldName("array"))
		idx := b.buildExpression(n.ChildByFieldName("index"))
		return ast.NewArrayIndexExpression(id, loc, arr, idx)

	case "member_access_expression":
		recv := b.buildExpression(n.ChildByFieldName("receiver"))
		member := b.text(n.ChildByFieldName("member"))
		return ast.NewMemberAccessExpression(id, loc, recv, member)

	case "type_member_access_expression":
		typeName := b.text(n.ChildByFieldName("type_name"))
		member := b.text(n.ChildByFieldName("member"))
		return ast.NewTypeMemberAccessExpression(id, loc, typeName, member)

	case "call_expression":
		callee := b.buildExpression(n.ChildByFieldName("callee"))
		var typeArgs []ast.TypeExpression
		for _, t := range n.ChildrenByFieldName("type_argument") {
			if te := b.buildTypeExpression(t); te != nil {
				typeArgs = append(typeArgs, te)
			}
		}
		var args []ast.Argument
		for _, a := range n.ChildrenByFieldName("argument") {
			name := ""
			if nm := a.ChildByFieldName("name"); nm != nil {
				name = b.text(nm)
			}
			val := b.buildExpression(a.ChildByFieldName("value"))
			args = append(args, ast.Argument{Name: name, Value: val})
		}
		return ast.NewCallExpression(id, loc, callee, typeArgs, args)

	case "struct_literal_expression":
		typeName := b.text(n.ChildByFieldName("type_name"))
		var fields []ast.StructFieldInit
		for _, f := range n.ChildrenByFieldName("field") {
			name := b.text(f.ChildByFieldName("name"))
			val := b.buildExpression(f.ChildByFieldName("value"))
			fields = append(fields, ast.StructFieldInit{Name: name, Value: val})
		}
		return ast.NewStructLiteralExpression(id, loc, typeName, fields)

	case "uzumaki_expression":
		return ast.NewUzumakiExpression(id, loc)

	default:
		b.fail(n, "unrecognized expression kind %q", n.Kind())
		return nil
	}
}
