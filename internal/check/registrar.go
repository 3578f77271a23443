package check

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/dotandev/infc/internal/symbols"
	"github.com/dotandev/infc/internal/types"
)

// sigSource is the signature shape shared by FunctionDefinition and
// ExternalFunctionDefinition, extracted once at registration time so the
// deferred signature-validation pass (after imports are resolved) doesn't
// need to re-discriminate between the two AST node types.
type sigSource struct {
	Parameters     []ast.Parameter
	ReturnType     ast.TypeExpression
	TypeParameters []string
}

type funcWork struct {
	scope *symbols.Scope
	sym   *symbols.Symbol
	sig   sigSource
}

type fieldWork struct {
	scope *symbols.Scope
	sym   *symbols.Symbol
	typ   ast.TypeExpression
}

type constWork struct {
	scope *symbols.Scope
	sym   *symbols.Symbol
	typ   ast.TypeExpression // nil if no declared type
}

type aliasWork struct {
	scope *symbols.Scope
	sym   *symbols.Symbol
	typ   ast.TypeExpression
}

// RegisterProgram runs the structural registration pass: it opens one
// module scope per distinct SourceFile.Name (files with the same name
// share a module scope) and registers every definition as a symbol.
// Signature types are not resolved yet -- that happens in
// ValidateSignatures, after use-directives have been resolved, so a type
// named in a signature may legally come from another module.
func (c *Checker) RegisterProgram(files []*ast.SourceFile) {
	for _, f := range files {
		scope := c.moduleScope(f.Name)
		for _, def := range f.Definitions {
			c.registerDefinition(scope, def)
		}
	}
}

func (c *Checker) moduleScope(name string) *symbols.Scope {
	if scope, ok := c.modules[name]; ok {
		return scope
	}
	scope := symbols.NewScope(symbols.ModuleScope, name, c.root)
	c.modules[name] = scope
	if name != "" {
		c.root.Declare(&symbols.Symbol{Name: name, Kind: symbols.ModuleSymbol, Scope: scope, Visibility: ast.Public})
	}
	return scope
}

func (c *Checker) registerDefinition(scope *symbols.Scope, def ast.Definition) {
	switch v := def.(type) {
	case *ast.FunctionDefinition:
		c.registerFunction(scope, v)
	case *ast.ExternalFunctionDefinition:
		c.registerExternalFunction(scope, v)
	case *ast.StructDefinition:
		c.registerStruct(scope, v)
	case *ast.EnumDefinition:
		c.registerEnum(scope, v)
	case *ast.TypeDefinition:
		c.registerTypeAlias(scope, v)
	case *ast.ConstantDefinition:
		c.registerConstant(scope, v)
	case *ast.SpecDefinition:
		c.registerSpec(scope, v)
	case *ast.ModuleDefinition:
		c.registerNestedModule(scope, v)
	}
}

func (c *Checker) declare(scope *symbols.Scope, sym *symbols.Symbol) {
	if err := scope.Declare(sym); err != nil {
		c.diags.Addf(diagnostics.RegistrationFailed, sym.Location,
			"%q is already defined in this scope", sym.Name)
	}
}

func (c *Checker) registerFunction(scope *symbols.Scope, fn *ast.FunctionDefinition) {
	hasSelf := fn.HasSelfReceiver()
	if hasSelf && scope.Kind != symbols.StructScope {
		c.diags.Addf(diagnostics.SelfReferenceInFunction, fn.Loc(),
			"function %q takes self outside of a struct", fn.Name)
	}
	kind := symbols.FunctionSymbol
	if hasSelf {
		kind = symbols.MethodSymbol
	}
	sym := &symbols.Symbol{
		Name: fn.Name, Kind: kind, NodeID: fn.ID(), Location: fn.Loc(),
		Visibility: fn.Visibility, Def: fn,
	}
	c.declare(scope, sym)
	c.funcWork = append(c.funcWork, funcWork{
		scope: scope, sym: sym,
		sig: sigSource{Parameters: fn.Parameters, ReturnType: fn.ReturnType, TypeParameters: fn.TypeParameters},
	})
}

func (c *Checker) registerExternalFunction(scope *symbols.Scope, fn *ast.ExternalFunctionDefinition) {
	for _, p := range fn.Parameters {
		if _, ok := p.(*ast.SelfParameter); ok {
			c.diags.Addf(diagnostics.SelfReferenceInFunction, fn.Loc(),
				"external function %q cannot take self", fn.Name)
			break
		}
	}
	sym := &symbols.Symbol{
		Name: fn.Name, Kind: symbols.FunctionSymbol, NodeID: fn.ID(), Location: fn.Loc(),
		Visibility: fn.Visibility, Def: fn,
	}
	c.declare(scope, sym)
	c.funcWork = append(c.funcWork, funcWork{
		scope: scope, sym: sym,
		sig: sigSource{Parameters: fn.Parameters, ReturnType: fn.ReturnType, TypeParameters: fn.TypeParameters},
	})
}

func (c *Checker) registerStruct(scope *symbols.Scope, st *ast.StructDefinition) {
	structScope := symbols.NewScope(symbols.StructScope, st.Name, scope)

	for _, f := range st.Fields {
		fieldSym := &symbols.Symbol{
			Name: f.Name, Kind: symbols.VariableSymbol, Visibility: f.Visibility,
			Location: st.Loc(),
		}
		c.declare(structScope, fieldSym)
		c.fieldWork = append(c.fieldWork, fieldWork{scope: structScope, sym: fieldSym, typ: f.Type})
	}

	for _, m := range st.Methods {
		c.registerFunction(structScope, m)
	}

	sym := &symbols.Symbol{
		Name: st.Name, Kind: symbols.StructSymbol, NodeID: st.ID(), Location: st.Loc(),
		Visibility: st.Visibility, Scope: structScope, Def: st,
	}
	c.declare(scope, sym)
}

func (c *Checker) registerEnum(scope *symbols.Scope, en *ast.EnumDefinition) {
	sym := &symbols.Symbol{
		Name: en.Name, Kind: symbols.EnumSymbol, NodeID: en.ID(), Location: en.Loc(),
		Visibility: en.Visibility, Variants: en.Variants, Def: en,
	}
	c.declare(scope, sym)
}

func (c *Checker) registerTypeAlias(scope *symbols.Scope, td *ast.TypeDefinition) {
	sym := &symbols.Symbol{
		Name: td.Name, Kind: symbols.TypeSymbol, NodeID: td.ID(), Location: td.Loc(),
		Visibility: td.Visibility, Def: td,
	}
	c.declare(scope, sym)
	c.aliasWork = append(c.aliasWork, aliasWork{scope: scope, sym: sym, typ: td.Aliased})
}

func (c *Checker) registerConstant(scope *symbols.Scope, cd *ast.ConstantDefinition) {
	sym := &symbols.Symbol{
		Name: cd.Name, Kind: symbols.ConstantSymbol, NodeID: cd.ID(), Location: cd.Loc(),
		Visibility: cd.Visibility, Def: cd,
	}
	c.declare(scope, sym)
	c.constWork = append(c.constWork, constWork{scope: scope, sym: sym, typ: cd.Type})
}

func (c *Checker) registerSpec(scope *symbols.Scope, sd *ast.SpecDefinition) {
	specScope := symbols.NewScope(symbols.SpecScope, sd.Name, scope)
	for _, d := range sd.Definitions {
		c.registerDefinition(specScope, d)
	}
	sym := &symbols.Symbol{
		Name: sd.Name, Kind: symbols.SpecSymbol, NodeID: sd.ID(), Location: sd.Loc(),
		Visibility: sd.Visibility, Scope: specScope, Def: sd,
	}
	c.declare(scope, sym)
}

func (c *Checker) registerNestedModule(scope *symbols.Scope, md *ast.ModuleDefinition) {
	nested := symbols.NewScope(symbols.ModuleScope, md.Name, scope)
	for _, d := range md.Definitions {
		c.registerDefinition(nested, d)
	}
	sym := &symbols.Symbol{
		Name: md.Name, Kind: symbols.ModuleSymbol, NodeID: md.ID(), Location: md.Loc(),
		Visibility: md.Visibility, Scope: nested, Def: md,
	}
	c.declare(scope, sym)
}

// ValidateSignatures resolves every deferred signature/field/constant/
// alias type expression now that use-directives have populated every
// module scope with its imports. Missing types produce UnknownType but
// never un-register the enclosing definition, so later call sites don't
// additionally cascade an UndefinedFunction error.
func (c *Checker) ValidateSignatures() {
	for _, w := range c.fieldWork {
		t := c.resolveTypeExpr(w.scope, w.typ, nil)
		w.sym.Type = t
	}
	for _, w := range c.aliasWork {
		t := c.resolveTypeExpr(w.scope, w.typ, nil)
		w.sym.Type = t
	}
	for _, w := range c.constWork {
		if w.typ != nil {
			w.sym.Type = c.resolveTypeExpr(w.scope, w.typ, nil)
		} else {
			w.sym.Type = types.UnknownType()
		}
	}
	for _, w := range c.funcWork {
		bound := boundSet(w.sig.TypeParameters)
		var params []types.TypeInfo
		for _, p := range w.sig.Parameters {
			switch pt := p.(type) {
			case *ast.NamedParameter:
				params = append(params, c.resolveTypeExpr(w.scope, pt.Type, bound))
			case *ast.IgnoredParameter:
				params = append(params, c.resolveTypeExpr(w.scope, pt.Type, bound))
			case *ast.SelfParameter:
				// self carries the struct's own type, attached at call-check
				// time from the receiver rather than stored positionally.
			}
		}
		ret := types.UnitType()
		if w.sig.ReturnType != nil {
			ret = c.resolveTypeExpr(w.scope, w.sig.ReturnType, bound)
		}
		sig := types.FunctionType(params, ret)
		sig.TypeParams = w.sig.TypeParameters
		w.sym.Type = sig
	}
}

func boundSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

// resolveTypeExpr converts a syntactic type annotation to a TypeInfo,
// validating every named reference against scope (and therefore against
// whatever that scope's use-directives have already re-exported into it).
// Unlike types.FromTypeExpression, this walks the AST itself rather than
// going through the syntactic-only conversion, since compound types
// (arrays, generics, function types) need their element types validated
// too, not just their own top-level name.
func (c *Checker) resolveTypeExpr(scope *symbols.Scope, t ast.TypeExpression, bound map[string]struct{}) types.TypeInfo {
	if t == nil {
		return types.UnitType()
	}
	switch v := t.(type) {
	case ast.SimpleType:
		return types.FromTypeExpression(v, bound)

	case *ast.CustomType:
		return c.resolveNamedType(scope, v.Name, v.Loc(), bound)

	case *ast.QualifiedType:
		sym, err := scope.LookupQualified(v.Module, v.Name, scope)
		if err != nil {
			c.reportScopeError(err)
			return types.UnknownType()
		}
		if sym == nil {
			c.diags.Addf(diagnostics.UnknownType, v.Loc(), "unknown type %q::%q", v.Module, v.Name)
			return types.UnknownType()
		}
		return c.typeFromSymbol(sym, v.Name)

	case *ast.GenericType:
		base := c.resolveNamedType(scope, v.Base, v.Loc(), bound)
		var paramNames []string
		for _, p := range v.Parameters {
			pt := c.resolveTypeExpr(scope, p, bound)
			if pt.Kind == types.Generic {
				paramNames = append(paramNames, pt.Name)
			}
		}
		base.TypeParams = paramNames
		return base

	case *ast.ArrayTypeNode:
		elem := c.resolveTypeExpr(scope, v.ElementType, bound)
		return types.ArrayType(elem, v.Size)

	case *ast.FunctionTypeNode:
		var params []types.TypeInfo
		for _, p := range v.Parameters {
			params = append(params, c.resolveTypeExpr(scope, p, bound))
		}
		ret := types.UnitType()
		if v.ReturnType != nil {
			ret = c.resolveTypeExpr(scope, v.ReturnType, bound)
		}
		return types.FunctionType(params, ret)

	default:
		return types.UnknownType()
	}
}

func (c *Checker) resolveNamedType(scope *symbols.Scope, name string, loc ast.Location, bound map[string]struct{}) types.TypeInfo {
	if _, ok := bound[name]; ok {
		return types.GenericType(name)
	}
	if kind, ok := ast.SimpleTypeKindFromName(name); ok {
		if kind == ast.Unit {
			return types.UnitType()
		}
		if kind == ast.Bool {
			return types.BoolType()
		}
		return types.NumberType(kind)
	}
	sym, err := scope.Lookup(name, scope)
	if err != nil {
		c.reportScopeError(err)
		return types.UnknownType()
	}
	if sym == nil {
		c.diags.Addf(diagnostics.UnknownType, loc, "unknown type %q", name)
		return types.UnknownType()
	}
	return c.typeFromSymbol(sym, name)
}

func (c *Checker) typeFromSymbol(sym *symbols.Symbol, name string) types.TypeInfo {
	switch sym.Kind {
	case symbols.StructSymbol:
		return types.StructType(name)
	case symbols.EnumSymbol:
		return types.EnumType(name)
	case symbols.SpecSymbol:
		return types.SpecType(name)
	case symbols.TypeSymbol:
		return sym.Type
	case symbols.TypeParameterSymbol:
		return types.GenericType(name)
	default:
		c.diags.Addf(diagnostics.UnknownType, sym.Location, "%q does not name a type", name)
		return types.UnknownType()
	}
}

func (c *Checker) reportScopeError(err error) {
	switch e := err.(type) {
	case *symbols.PrivateAccessError:
		c.diags.Addf(diagnostics.PrivateAccessViolation, e.Location, "%q is private", e.Name)
	default:
		c.diags.Addf(diagnostics.UnknownType, ast.Location{}, "%s", err.Error())
	}
}
