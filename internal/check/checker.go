package check

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/dotandev/infc/internal/imports"
	"github.com/dotandev/infc/internal/symbols"
	"github.com/dotandev/infc/internal/types"
)

// Checker runs the whole-program pipeline: registration, import
// resolution, signature validation, then a single checking pass over
// every function and constant body. It is single-use -- create one with
// NewChecker per CheckProgram call.
type Checker struct {
	root    *symbols.Scope
	modules map[string]*symbols.Scope
	diags   *diagnostics.Collector
	ctx     *TypedContext

	funcWork  []funcWork
	fieldWork []fieldWork
	constWork []constWork
	aliasWork []aliasWork

	// loopDepth tracks nesting inside loop statement bodies, so `break`
	// outside any loop can be rejected.
	loopDepth int
}

func NewChecker() *Checker {
	root := symbols.NewScope(symbols.RootScope, "", nil)
	return &Checker{
		root:    root,
		modules: make(map[string]*symbols.Scope),
		diags:   diagnostics.NewCollector(),
		ctx:     newTypedContext(),
	}
}

// CheckProgram runs registration, import resolution, signature
// validation, and body checking over every file of a whole-program
// compilation unit, returning the accumulated typed context and
// diagnostics. Files sharing the same Name are registered into the same
// module scope, so a "module" may legally be split across files.
func CheckProgram(files []*ast.SourceFile) (*TypedContext, []diagnostics.Diagnostic) {
	c := NewChecker()
	return c.run(files)
}

func (c *Checker) run(files []*ast.SourceFile) (*TypedContext, []diagnostics.Diagnostic) {
	c.RegisterProgram(files)

	fileImports := make([]imports.FileImports, 0, len(files))
	for _, f := range files {
		fileImports = append(fileImports, imports.FileImports{
			Module:     f.Name,
			Scope:      c.moduleScope(f.Name),
			Directives: f.Directives,
		})
	}
	resolver := imports.NewResolver(c.modules)
	resolver.ResolveAll(fileImports, c.diags)

	c.ValidateSignatures()

	for _, w := range c.constWork {
		c.checkConstant(w)
	}
	for _, w := range c.funcWork {
		c.checkFunctionBody(w)
	}

	c.ctx.errors = c.diags.Items()
	return c.ctx, c.ctx.errors
}

func (c *Checker) checkConstant(w constWork) {
	def, ok := w.sym.Def.(*ast.ConstantDefinition)
	if !ok || def.Value == nil {
		return
	}
	expected := w.sym.Type
	var hint *types.TypeInfo
	if expected.Kind != types.Unknown {
		hint = &expected
	}
	funcScope := symbols.NewScope(symbols.FunctionScope, "", w.scope)
	got := c.checkExpression(funcScope, def.Value, hint)
	if expected.Kind != types.Unknown && got.Kind != types.Unknown && !got.Equal(expected) {
		c.diags.Addf(diagnostics.TypeMismatch, def.Loc(),
			"constant %q declared as %s but initializer has type %s", w.sym.Name, expected.String(), got.String())
	} else if expected.Kind == types.Unknown {
		w.sym.Type = got
	}
}

// checkFunctionBody opens a fresh function scope, binds self (for methods)
// and named parameters, then checks the body block against the function's
// declared return type. External functions (no body) are skipped.
func (c *Checker) checkFunctionBody(w funcWork) {
	fn, ok := w.sym.Def.(*ast.FunctionDefinition)
	if !ok || fn.Body == nil {
		return
	}
	funcScope := symbols.NewScope(symbols.FunctionScope, fn.Name, w.scope)

	for _, p := range fn.Parameters {
		switch pt := p.(type) {
		case *ast.SelfParameter:
			selfType := types.UnknownType()
			if w.scope.Kind == symbols.StructScope {
				selfType = types.StructType(w.scope.Name)
			}
			c.declare(funcScope, &symbols.Symbol{Name: "self", Kind: symbols.VariableSymbol, Type: selfType, Location: pt.Loc(), Visibility: ast.Public})
		case *ast.NamedParameter:
			bound := boundSet(fn.TypeParameters)
			t := c.resolveTypeExpr(w.scope, pt.Type, bound)
			c.declare(funcScope, &symbols.Symbol{Name: pt.Name, Kind: symbols.VariableSymbol, NodeID: pt.ID(), Type: t, Location: pt.Loc(), Visibility: ast.Public})
		case *ast.IgnoredParameter:
			// declared by type only, no bound name to register
		}
	}

	returnType := types.UnitType()
	if sig := w.sym.Type; sig.Kind == types.Function && sig.Return != nil {
		returnType = *sig.Return
	}

	c.checkBlock(funcScope, fn.Body, returnType)
}
