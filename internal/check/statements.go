package check

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/dotandev/infc/internal/symbols"
	"github.com/dotandev/infc/internal/types"
)

// checkBlock opens a nested block scope as a fresh child of parent and
// checks every statement in order. Nothing is pushed or popped: the scope
// is a local of this call, so it goes out of use when the call returns and
// scopes nest strictly LIFO with the call stack.
func (c *Checker) checkBlock(parent *symbols.Scope, b *ast.Block, returnType types.TypeInfo) {
	if b == nil {
		return
	}
	scope := symbols.NewScope(symbols.BlockScope, "", parent)
	for _, stmt := range b.Statements {
		c.checkStatement(scope, stmt, returnType)
	}
}

func (c *Checker) checkStatement(scope *symbols.Scope, stmt ast.Statement, returnType types.TypeInfo) {
	switch s := stmt.(type) {
	case *ast.VarDefStatement:
		c.checkVarDef(scope, s)
	case *ast.AssignStatement:
		c.checkAssign(scope, s)
	case *ast.ReturnStatement:
		c.checkReturn(scope, s, returnType)
	case *ast.LoopStatement:
		c.checkLoop(scope, s, returnType)
	case *ast.BreakStatement:
		if c.loopDepth == 0 {
			c.diags.Addf(diagnostics.SelfReferenceOutsideMethod, s.Loc(), "break used outside of a loop")
		}
	case *ast.IfStatement:
		c.checkIf(scope, s, returnType)
	case *ast.AssertStatement:
		boolHint := types.BoolType()
		got := c.checkExpression(scope, s.Condition, &boolHint)
		if got.Kind != types.Unknown && !got.Equal(boolHint) {
			c.diags.Addf(diagnostics.TypeMismatch, s.Loc(), "assert condition must be bool, found %s", got.String())
		}
	case *ast.ExpressionStatement:
		c.checkExpression(scope, s.Expr, nil)
	case *ast.NestedTypeDefStatement:
		c.registerTypeAlias(scope, s.Def)
		last := c.aliasWork[len(c.aliasWork)-1]
		last.sym.Type = c.resolveTypeExpr(last.scope, last.typ, nil)
	case *ast.NestedConstDefStatement:
		c.registerConstant(scope, s.Def)
		last := c.constWork[len(c.constWork)-1]
		if last.typ != nil {
			last.sym.Type = c.resolveTypeExpr(last.scope, last.typ, nil)
		} else {
			last.sym.Type = types.UnknownType()
		}
		c.checkConstant(last)
	case *ast.NestedBlockStatement:
		c.checkBlock(scope, s.Body, returnType)
	}
}

func (c *Checker) checkVarDef(scope *symbols.Scope, s *ast.VarDefStatement) {
	var declared *types.TypeInfo
	if s.Type != nil {
		t := c.resolveTypeExpr(scope, s.Type, nil)
		declared = &t
	}

	var varType types.TypeInfo
	switch {
	case s.Uzumaki:
		if declared == nil {
			c.diags.Addf(diagnostics.CannotInferUzumakiType, s.Loc(),
				"cannot infer type of uzumaki binding %q without a type annotation", s.Name)
			varType = types.UnknownType()
		} else {
			varType = *declared
		}
		// an initializer alongside uzumaki would be a contradiction in
		// terms (its whole point is an unconstrained value), so it is
		// not type-checked against declared even when present.
	case s.Init != nil:
		got := c.checkExpression(scope, s.Init, declared)
		if declared != nil {
			if got.Kind != types.Unknown && !got.Equal(*declared) {
				c.diags.Addf(diagnostics.TypeMismatch, s.Loc(),
					"%q declared as %s but initializer has type %s", s.Name, declared.String(), got.String())
			}
			varType = *declared
		} else {
			varType = got
		}
	case declared != nil:
		varType = *declared
	default:
		varType = types.UnknownType()
	}

	sym := &symbols.Symbol{Name: s.Name, Kind: symbols.VariableSymbol, NodeID: s.ID(), Location: s.Loc(), Type: varType, Visibility: ast.Public}
	c.declare(scope, sym)
	c.ctx.setSymbol(s.ID(), sym)
	c.ctx.setType(s.ID(), varType)
}

func (c *Checker) checkAssign(scope *symbols.Scope, s *ast.AssignStatement) {
	targetType := c.checkExpression(scope, s.Target, nil)
	got := c.checkExpression(scope, s.Value, &targetType)
	if targetType.Kind != types.Unknown && got.Kind != types.Unknown && !got.Equal(targetType) {
		c.diags.Addf(diagnostics.TypeMismatch, s.Loc(),
			"cannot assign %s to a target of type %s", got.String(), targetType.String())
	}
}

func (c *Checker) checkReturn(scope *symbols.Scope, s *ast.ReturnStatement, returnType types.TypeInfo) {
	if s.Value == nil {
		if returnType.Kind != types.Unit && returnType.Kind != types.Unknown {
			c.diags.Addf(diagnostics.TypeMismatch, s.Loc(), "bare return in a function returning %s", returnType.String())
		}
		return
	}
	got := c.checkExpression(scope, s.Value, &returnType)
	if returnType.Kind != types.Unknown && got.Kind != types.Unknown && !got.Equal(returnType) {
		c.diags.Addf(diagnostics.TypeMismatch, s.Loc(),
			"return value has type %s, expected %s", got.String(), returnType.String())
	}
}

func (c *Checker) checkLoop(scope *symbols.Scope, s *ast.LoopStatement, returnType types.TypeInfo) {
	if s.Condition != nil {
		boolHint := types.BoolType()
		got := c.checkExpression(scope, s.Condition, &boolHint)
		if got.Kind != types.Unknown && !got.Equal(boolHint) {
			c.diags.Addf(diagnostics.TypeMismatch, s.Loc(), "loop condition must be bool, found %s", got.String())
		}
	}
	c.loopDepth++
	c.checkBlock(scope, s.Body, returnType)
	c.loopDepth--
}

func (c *Checker) checkIf(scope *symbols.Scope, s *ast.IfStatement, returnType types.TypeInfo) {
	boolHint := types.BoolType()
	got := c.checkExpression(scope, s.Condition, &boolHint)
	if got.Kind != types.Unknown && !got.Equal(boolHint) {
		c.diags.Addf(diagnostics.TypeMismatch, s.Loc(), "if condition must be bool, found %s", got.String())
	}
	c.checkBlock(scope, s.Then, returnType)
	if s.Else != nil {
		c.checkBlock(scope, s.Else, returnType)
	}
}
