package astbuild

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/cst"
)

var blockKindByCSTKind = map[string]ast.BlockKind{
	"block":        ast.PlainBlock,
	"forall_block": ast.ForallBlock,
	"exists_block": ast.ExistsBlock,
	"assume_block": ast.AssumeBlock,
	"unique_block": ast.UniqueBlock,
}

// buildBlock lowers any of the five block forms (plain, forall, exists,
// assume, unique) to an ast.Block, tagging Kind from the CST node's own
// kind string.
func (b *Builder) buildBlock(n cst.Node) *ast.Block {
	if n == nil {
		return nil
	}
	id := b.nextID()
	loc := b.loc(n)

	kind, ok := blockKindByCSTKind[n.Kind()]
	if !ok {
		b.fail(n, "unrecognized block kind %q", n.Kind())
		kind = ast.PlainBlock
	}

	var stmts []ast.Statement
	for _, s := range n.ChildrenByFieldName("statement") {
		if st := b.buildStatement(s); st != nil {
			stmts = append(stmts, st)
		}
	}
	return ast.NewBlock(id, loc, kind, stmts)
}

// buildStatement lowers any statement CST node to an ast.Statement.
func (b *Builder) buildStatement(n cst.Node) ast.Statement {
	if n == nil {
		return nil
	}
	id := b.nextID()
	loc := b.loc(n)

	switch n.Kind() {
	case "var_def_statement":
		name := b.text(n.ChildByFieldName("name"))
		b.checkNotReserved(n, name)
		var typ ast.TypeExpression
		if t := n.ChildByFieldName("type"); t != nil {
			typ = b.buildTypeExpression(t)
		}
		var init ast.Expression
		if v := n.ChildByFieldName("value"); v != nil {
			init = b.buildExpression(v)
		}
		uzumaki := n.ChildByFieldName("uzumaki") != nil
		return ast.NewVarDefStatement(id, loc, name, typ, init, uzumaki)

	case "assign_statement":
		target := b.buildExpression(n.ChildByFieldName("target"))
		value := b.buildExpression(n.ChildByFieldName("value"))
		return ast.NewAssignStatement(id, loc, target, value)

	case "return_statement":
		var value ast.Expression
		if v := n.ChildByFieldName("value"); v != nil {
			value = b.buildExpression(v)
		}
		return ast.NewReturnStatement(id, loc, value)

	case "loop_statement":
		var cond ast.Expression
		if c := n.ChildByFieldName("condition"); c != nil {
			cond = b.buildExpression(c)
		}
		body := b.buildBlock(n.ChildByFieldName("body"))
		return ast.NewLoopStatement(id, loc, cond, body)

	case "break_statement":
		return ast.NewBreakStatement(id, loc)

	case "if_statement":
		cond := b.buildExpression(n.ChildByFieldName("condition"))
		then := b.buildBlock(n.ChildByFieldName("then"))
		var els *ast.Block
		if e := n.ChildByFieldName("else"); e != nil {
			els = b.buildBlock(e)
		}
		return ast.NewIfStatement(id, loc, cond, then, els)

	case "assert_statement":
		cond := b.buildExpression(n.ChildByFieldName("condition"))
		return ast.NewAssertStatement(id, loc, cond)

	case "expression_statement":
		expr := b.buildExpression(n.ChildByFieldName("expression"))
		return ast.NewExpressionStatement(id, loc, expr)

	case "nested_type_def_statement":
		def := b.buildTypeDefinition(n.ChildByFieldName("definition"))
		return ast.NewNestedTypeDefStatement(id, loc, def)

	case "nested_const_def_statement":
		def := b.buildConstantDefinition(n.ChildByFieldName("definition"))
		return ast.NewNestedConstDefStatement(id, loc, def)

	case "nested_block_statement":
		body := b.buildBlock(n.ChildByFieldName("body"))
		return ast.NewNestedBlockStatement(id, loc, body)

	default:
		b.fail(n, "unrecognized statement kind %q", n.Kind())
		return nil
	}
}
