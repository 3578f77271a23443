package check

import (
	"testing"

	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
)

func hasKind(errs []diagnostics.Diagnostic, kind diagnostics.Kind) bool {
	for _, e := range errs {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestCheckReturnTypeMismatch(t *testing.T) {
	a := ast.NewIDAllocator()
	ret := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewBoolLiteral(a.Next(), ast.Location{}, true))
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "f", ast.Public, nil, nil,
		ast.NewSimpleType(ast.Location{}, ast.I32), body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.TypeMismatch) {
		t.Fatalf("expected a TypeMismatch diagnostic, got %v", errs)
	}
}

func TestCheckPrivateFieldAccessAcrossModules(t *testing.T) {
	a := ast.NewIDAllocator()

	fields := []ast.StructField{{Name: "x", Type: ast.NewSimpleType(ast.Location{}, ast.I32), Visibility: ast.Private}}
	structDef := ast.NewStructDefinition(a.Next(), ast.Location{}, "Point", ast.Public, fields, nil)
	geometry := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{structDef})
	geometry.Name = "geometry"

	useDir := ast.NewUseDirective(a.Next(), ast.Location{}, []string{"geometry"}, []ast.ImportItem{{Name: "Point"}}, false)

	param := ast.NewNamedParameter(a.Next(), ast.Location{}, "p", false, ast.NewQualifiedType(a.Next(), ast.Location{}, "geometry", "Point"))
	access := ast.NewMemberAccessExpression(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "p"), "x")
	ret := ast.NewReturnStatement(a.Next(), ast.Location{}, access)
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "g", ast.Public, nil, []ast.Parameter{param},
		ast.NewSimpleType(ast.Location{}, ast.I32), body)

	app := ast.NewSourceFile(a.Next(), ast.Location{}, []*ast.UseDirective{useDir}, []ast.Definition{fn})
	app.Name = "app"

	_, errs := CheckProgram([]*ast.SourceFile{geometry, app})
	if !hasKind(errs, diagnostics.PrivateAccessViolation) {
		t.Fatalf("expected a PrivateAccessViolation diagnostic, got %v", errs)
	}
	for _, e := range errs {
		if e.Kind != diagnostics.PrivateAccessViolation {
			continue
		}
		ctx, ok := e.Context.(diagnostics.FieldContext)
		if !ok {
			t.Fatalf("expected a FieldContext, got %#v", e.Context)
		}
		if ctx.StructName != "Point" || ctx.FieldName != "x" {
			t.Fatalf("unexpected FieldContext: %+v", ctx)
		}
	}
}

func TestCheckUzumakiWithoutAnnotationCannotInfer(t *testing.T) {
	a := ast.NewIDAllocator()
	def := ast.NewVarDefStatement(a.Next(), ast.Location{}, "x", nil, nil, true)
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{def})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "h", ast.Public, nil, nil, nil, body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.CannotInferUzumakiType) {
		t.Fatalf("expected a CannotInferUzumakiType diagnostic, got %v", errs)
	}
}

func TestCheckSelfOutsideStructIsRejected(t *testing.T) {
	a := ast.NewIDAllocator()
	self := ast.NewSelfParameter(a.Next(), ast.Location{}, false)
	ret := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewNumberLiteral(a.Next(), ast.Location{}, "0"))
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "standalone", ast.Public, nil,
		[]ast.Parameter{self}, ast.NewSimpleType(ast.Location{}, ast.I32), body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.SelfReferenceInFunction) {
		t.Fatalf("expected a SelfReferenceInFunction diagnostic, got %v", errs)
	}
}

func TestCheckBreakOutsideLoopIsRejected(t *testing.T) {
	a := ast.NewIDAllocator()
	brk := ast.NewBreakStatement(a.Next(), ast.Location{})
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{brk})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "f", ast.Public, nil, nil, nil, body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.SelfReferenceOutsideMethod) {
		t.Fatalf("expected a break-outside-loop diagnostic, got %v", errs)
	}
}

func TestCheckGenericInferenceConflictAcrossParameters(t *testing.T) {
	a := ast.NewIDAllocator()

	pa := ast.NewNamedParameter(a.Next(), ast.Location{}, "a", false, ast.NewCustomType(a.Next(), ast.Location{}, "T"))
	pb := ast.NewNamedParameter(a.Next(), ast.Location{}, "b", false, ast.NewCustomType(a.Next(), ast.Location{}, "T"))
	pairRet := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "a"))
	pairBody := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{pairRet})
	pairDef := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "pair", ast.Public, []string{"T"},
		[]ast.Parameter{pa, pb}, ast.NewCustomType(a.Next(), ast.Location{}, "T"), pairBody)

	call := ast.NewCallExpression(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "pair"), nil,
		[]ast.Argument{
			{Value: ast.NewNumberLiteral(a.Next(), ast.Location{}, "1")},
			{Value: ast.NewBoolLiteral(a.Next(), ast.Location{}, true)},
		})
	callStmt := ast.NewExpressionStatement(a.Next(), ast.Location{}, call)
	callerBody := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{callStmt})
	callerDef := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "caller", ast.Public, nil, nil, nil, callerBody)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{pairDef, callerDef})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.ConflictingTypeInference) {
		t.Fatalf("expected a ConflictingTypeInference diagnostic, got %v", errs)
	}
}

func TestCheckUndefinedIdentifierReportsUnknownIdentifier(t *testing.T) {
	a := ast.NewIDAllocator()
	ret := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "missing"))
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "f", ast.Public, nil, nil, nil, body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.UnknownIdentifier) {
		t.Fatalf("expected an UnknownIdentifier diagnostic, got %v", errs)
	}
}

func TestCheckGenericIdentityCallSubstitutesReturnType(t *testing.T) {
	a := ast.NewIDAllocator()

	idParam := ast.NewNamedParameter(a.Next(), ast.Location{}, "x", false, ast.NewCustomType(a.Next(), ast.Location{}, "T"))
	idRet := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "x"))
	idBody := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{idRet})
	idDef := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "id", ast.Public, []string{"T"},
		[]ast.Parameter{idParam}, ast.NewCustomType(a.Next(), ast.Location{}, "T"), idBody)

	call := ast.NewCallExpression(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "id"), nil,
		[]ast.Argument{{Value: ast.NewNumberLiteral(a.Next(), ast.Location{}, "42")}})
	mainRet := ast.NewReturnStatement(a.Next(), ast.Location{}, call)
	mainBody := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{mainRet})
	mainDef := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "main", ast.Public, nil, nil,
		ast.NewSimpleType(ast.Location{}, ast.I32), mainBody)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{idDef, mainDef})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", errs)
	}
}

func TestCheckArraySizeMismatch(t *testing.T) {
	a := ast.NewIDAllocator()
	declared := ast.NewArrayTypeNode(a.Next(), ast.Location{}, ast.NewSimpleType(ast.Location{}, ast.I32), 3)
	lit := ast.NewArrayLiteral(a.Next(), ast.Location{}, []ast.Expression{
		ast.NewNumberLiteral(a.Next(), ast.Location{}, "1"),
		ast.NewNumberLiteral(a.Next(), ast.Location{}, "2"),
	})
	def := ast.NewVarDefStatement(a.Next(), ast.Location{}, "a", declared, lit, false)
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{def})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "t", ast.Public, nil, nil, nil, body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.TypeMismatch) {
		t.Fatalf("expected a TypeMismatch diagnostic, got %v", errs)
	}
}

func TestCheckReturnInsideForallBlockSucceeds(t *testing.T) {
	a := ast.NewIDAllocator()
	ret := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewNumberLiteral(a.Next(), ast.Location{}, "0"))
	inner := ast.NewBlock(a.Next(), ast.Location{}, ast.ForallBlock, []ast.Statement{ret})
	outer := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ast.NewNestedBlockStatement(a.Next(), ast.Location{}, inner)})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "t", ast.Public, nil, nil,
		ast.NewSimpleType(ast.Location{}, ast.I32), outer)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics for return inside a forall block, got %v", errs)
	}
	if !inner.Kind.IsNonDet() {
		t.Fatalf("expected the forall block to report itself as nondeterministic")
	}
}

func TestCheckDistinctErrorsInDifferentFunctionsBothSurface(t *testing.T) {
	a := ast.NewIDAllocator()

	ret1 := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewBoolLiteral(a.Next(), ast.Location{}, true))
	body1 := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret1})
	fn1 := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "f1", ast.Public, nil, nil,
		ast.NewSimpleType(ast.Location{}, ast.I32), body1)

	ret2 := ast.NewReturnStatement(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "missing"))
	body2 := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret2})
	fn2 := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "f2", ast.Public, nil, nil, nil, body2)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn1, fn2})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.TypeMismatch) {
		t.Fatalf("expected a TypeMismatch diagnostic from f1, got %v", errs)
	}
	if !hasKind(errs, diagnostics.UnknownIdentifier) {
		t.Fatalf("expected an UnknownIdentifier diagnostic from f2, got %v", errs)
	}
}

func TestCheckCallToFunctionWithUnknownParamTypeDoesNotAlsoReportUndefinedFunction(t *testing.T) {
	a := ast.NewIDAllocator()

	param := ast.NewNamedParameter(a.Next(), ast.Location{}, "p", false, ast.NewCustomType(a.Next(), ast.Location{}, "Ghost"))
	calleeBody := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, nil)
	callee := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "take", ast.Public, nil, []ast.Parameter{param}, nil, calleeBody)

	call := ast.NewCallExpression(a.Next(), ast.Location{}, ast.NewIdentifier(a.Next(), ast.Location{}, "take"), nil,
		[]ast.Argument{{Value: ast.NewNumberLiteral(a.Next(), ast.Location{}, "1")}})
	callStmt := ast.NewExpressionStatement(a.Next(), ast.Location{}, call)
	callerBody := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{callStmt})
	caller := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "caller", ast.Public, nil, nil, nil, callerBody)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{callee, caller})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if !hasKind(errs, diagnostics.UnknownType) {
		t.Fatalf("expected an UnknownType diagnostic for the Ghost parameter, got %v", errs)
	}
	if hasKind(errs, diagnostics.UndefinedFunction) {
		t.Fatalf("call to a registered function must not also report UndefinedFunction, got %v", errs)
	}
}

func TestCheckWellTypedProgramHasNoDiagnostics(t *testing.T) {
	a := ast.NewIDAllocator()
	ret := ast.NewReturnStatement(a.Next(), ast.Location{},
		ast.NewBinaryExpression(a.Next(), ast.Location{},
			ast.NewNumberLiteral(a.Next(), ast.Location{}, "1"), ast.Add,
			ast.NewNumberLiteral(a.Next(), ast.Location{}, "2")))
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "add", ast.Public, nil, nil,
		ast.NewSimpleType(ast.Location{}, ast.I32), body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"

	_, errs := CheckProgram([]*ast.SourceFile{sf})
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", errs)
	}
}
