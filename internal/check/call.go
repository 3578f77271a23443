package check

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/dotandev/infc/internal/symbols"
	"github.com/dotandev/infc/internal/types"
)

// checkCall resolves the callee of call -- a free/associated function by
// bare name, a method by `recv.method(...)`, or an associated function by
// explicit `Type::assoc(...)` -- enforcing self-call discipline before
// falling through to shared argument/generic-inference checking.
func (c *Checker) checkCall(scope *symbols.Scope, call *ast.CallExpression, expected *types.TypeInfo) types.TypeInfo {
	switch callee := call.Callee.(type) {
	case *ast.Identifier:
		sym, err := scope.Lookup(callee.Name, scope)
		if err != nil {
			c.reportScopeError(err)
			return types.UnknownType()
		}
		if sym == nil {
			c.diags.Addf(diagnostics.UndefinedFunction, callee.Loc(), "undefined function %q", callee.Name)
			return types.UnknownType()
		}
		if sym.Kind == symbols.MethodSymbol {
			c.diags.Addf(diagnostics.InstanceMethodCalledAsAssociated, call.Loc(),
				"%q is a method and must be called on a receiver", callee.Name)
			return types.UnknownType()
		}
		c.ctx.setSymbol(callee.ID(), sym)
		return c.checkCallToSymbol(scope, call, sym, nil, expected)

	case *ast.MemberAccessExpression:
		recv := c.checkExpression(scope, callee.Receiver, nil)
		if recv.Kind == types.Unknown {
			return types.UnknownType()
		}
		if recv.Kind != types.Struct {
			c.diags.Addf(diagnostics.MethodCallOnNonStruct, callee.Receiver.Loc(),
				"method call on non-struct type %s", recv.String())
			return types.UnknownType()
		}
		structSym, err := scope.Lookup(recv.Name, scope)
		if err != nil {
			c.reportScopeError(err)
			return types.UnknownType()
		}
		if structSym == nil || structSym.Scope == nil {
			c.diags.Addf(diagnostics.UndefinedStruct, callee.Receiver.Loc(), "undefined struct %q", recv.Name)
			return types.UnknownType()
		}
		methodSym, ok := structSym.Scope.Local(callee.Member)
		if !ok {
			c.diags.Addf(diagnostics.MethodNotFound, callee.Loc(), "struct %q has no method %q", recv.Name, callee.Member)
			return types.UnknownType()
		}
		if methodSym.Kind != symbols.MethodSymbol {
			c.diags.Addf(diagnostics.AssociatedFunctionCalledAsMethod, call.Loc(),
				"%q is an associated function and cannot be called on a receiver", callee.Member)
			return types.UnknownType()
		}
		return c.checkCallToSymbol(scope, call, methodSym, &recv, expected)

	case *ast.TypeMemberAccessExpression:
		structSym, err := scope.Lookup(callee.TypeName, scope)
		if err != nil {
			c.reportScopeError(err)
			return types.UnknownType()
		}
		if structSym == nil || structSym.Scope == nil {
			c.diags.Addf(diagnostics.UndefinedStruct, callee.Loc(), "undefined struct %q", callee.TypeName)
			return types.UnknownType()
		}
		fnSym, ok := structSym.Scope.Local(callee.Member)
		if !ok {
			c.diags.Addf(diagnostics.MethodNotFound, callee.Loc(), "struct %q has no associated function %q", callee.TypeName, callee.Member)
			return types.UnknownType()
		}
		if fnSym.Kind == symbols.MethodSymbol {
			c.diags.Addf(diagnostics.InstanceMethodCalledAsAssociated, call.Loc(),
				"%q is a method and must be called on a receiver", callee.Member)
			return types.UnknownType()
		}
		return c.checkCallToSymbol(scope, call, fnSym, nil, expected)

	default:
		calleeType := c.checkExpression(scope, call.Callee, nil)
		if calleeType.Kind != types.Function {
			c.diags.Addf(diagnostics.TypeMismatch, call.Loc(), "cannot call a value of type %s", calleeType.String())
			return types.UnknownType()
		}
		ret := types.UnitType()
		if calleeType.Return != nil {
			ret = *calleeType.Return
		}
		for i, a := range call.Arguments {
			var hint *types.TypeInfo
			if i < len(calleeType.Params) {
				hint = &calleeType.Params[i]
			}
			c.checkExpression(scope, a.Value, hint)
		}
		return ret
	}
}

// nonSelfParameterNames returns the declared parameter names of fn's
// signature, in order, skipping the self receiver -- "" for an
// IgnoredParameter, which has no bound name to match a named argument
// against.
func nonSelfParameterNames(params []ast.Parameter) []string {
	var out []string
	for _, p := range params {
		switch pt := p.(type) {
		case *ast.NamedParameter:
			out = append(out, pt.Name)
		case *ast.IgnoredParameter:
			out = append(out, "")
		case *ast.SelfParameter:
			// not a positional/named argument slot
		}
	}
	return out
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// checkCallToSymbol checks a resolved call's arguments against fnSym's
// signature, running direct-substitution generic inference over any
// declared type parameters, and returns the (possibly substituted) return
// type. selfType is non-nil only for a method call, carrying the concrete
// receiver type -- structs are not generic in this language, so self never
// participates in inference.
func (c *Checker) checkCallToSymbol(scope *symbols.Scope, call *ast.CallExpression, fnSym *symbols.Symbol, selfType *types.TypeInfo, expected *types.TypeInfo) types.TypeInfo {
	sig := fnSym.Type
	if sig.Kind != types.Function {
		c.diags.Addf(diagnostics.TypeMismatch, call.Loc(), "%q is not callable", fnSym.Name)
		return types.UnknownType()
	}

	var paramNames []string
	switch def := fnSym.Def.(type) {
	case *ast.FunctionDefinition:
		paramNames = nonSelfParameterNames(def.Parameters)
	case *ast.ExternalFunctionDefinition:
		paramNames = nonSelfParameterNames(def.Parameters)
	}

	if len(call.Arguments) != len(sig.Params) {
		c.diags.Addf(diagnostics.ArgumentCountMismatch, call.Loc(),
			"%q expects %d argument(s), got %d", fnSym.Name, len(sig.Params), len(call.Arguments))
	}

	argExprs := make([]ast.Expression, len(sig.Params))
	posIdx := 0
	for _, a := range call.Arguments {
		if a.Name == "" {
			if posIdx < len(argExprs) {
				argExprs[posIdx] = a.Value
			}
			posIdx++
			continue
		}
		idx := indexOfName(paramNames, a.Name)
		if idx < 0 || idx >= len(argExprs) {
			c.diags.Addf(diagnostics.ArgumentCountMismatch, a.Value.Loc(),
				"%q has no parameter named %q", fnSym.Name, a.Name)
			c.checkExpression(scope, a.Value, nil)
			continue
		}
		argExprs[idx] = a.Value
	}

	subs := make(map[string]types.TypeInfo)
	if len(call.TypeArguments) > 0 {
		if len(call.TypeArguments) != len(sig.TypeParams) {
			c.diags.Addf(diagnostics.TypeParameterCountMismatch, call.Loc(),
				"%q takes %d type parameter(s), got %d", fnSym.Name, len(sig.TypeParams), len(call.TypeArguments))
		} else {
			for i, te := range call.TypeArguments {
				subs[sig.TypeParams[i]] = c.resolveTypeExpr(scope, te, nil)
			}
		}
	}

	for i, param := range sig.Params {
		if i >= len(argExprs) || argExprs[i] == nil {
			continue
		}
		declared := param.Substitute(subs)
		hint := declared
		got := c.checkExpression(scope, argExprs[i], &hint)
		c.unify(param, got, subs, argExprs[i].Loc())
	}

	for _, name := range sig.TypeParams {
		if _, ok := subs[name]; !ok {
			c.diags.Addf(diagnostics.CannotInferTypeParameter, call.Loc(), "cannot infer type parameter %q of %q", name, fnSym.Name)
		}
	}

	ret := types.UnitType()
	if sig.Return != nil {
		ret = sig.Return.Substitute(subs)
	}
	return ret
}

// unify attempts to bind every Generic(x) appearing in declared against
// the corresponding position of got, descending structurally through
// arrays and function types. A second, differing binding for the same
// name is a ConflictingTypeInference; a concrete/concrete mismatch is an
// ordinary TypeMismatch.
func (c *Checker) unify(declared, got types.TypeInfo, subs map[string]types.TypeInfo, loc ast.Location) {
	if got.Kind == types.Unknown {
		return
	}
	switch declared.Kind {
	case types.Generic:
		if existing, ok := subs[declared.Name]; ok {
			if !existing.Equal(got) {
				c.diags.Add(diagnostics.Diagnostic{
					Kind: diagnostics.ConflictingTypeInference, Location: loc,
					Message: "conflicting inference for type parameter \"" + declared.Name + "\"",
					Context: diagnostics.ConflictingInferenceContext{
						ParamName: declared.Name, First: existing.String(), Second: got.String(),
					},
				})
			}
			return
		}
		subs[declared.Name] = got

	case types.Array:
		if got.Kind != types.Array || got.Size != declared.Size {
			c.diags.Addf(diagnostics.TypeMismatch, loc, "expected %s, found %s", declared.String(), got.String())
			return
		}
		if declared.Elem != nil && got.Elem != nil {
			c.unify(*declared.Elem, *got.Elem, subs, loc)
		}

	case types.Function:
		if got.Kind != types.Function || len(got.Params) != len(declared.Params) {
			c.diags.Addf(diagnostics.TypeMismatch, loc, "expected %s, found %s", declared.String(), got.String())
			return
		}
		for i, p := range declared.Params {
			c.unify(p, got.Params[i], subs, loc)
		}
		if declared.Return != nil && got.Return != nil {
			c.unify(*declared.Return, *got.Return, subs, loc)
		}

	default:
		if declared.Kind != types.Unknown && !declared.Equal(got) {
			c.diags.Addf(diagnostics.TypeMismatch, loc, "expected %s, found %s", declared.String(), got.String())
		}
	}
}
