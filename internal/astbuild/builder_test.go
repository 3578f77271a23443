package astbuild

import (
	"testing"

	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/cst/cstfake"
	"github.com/dotandev/infc/internal/source"
)

func buildFixture(t *testing.T, text string, root *cstfake.Node) (*ast.SourceFile, []error) {
	t.Helper()
	cstfake.Positions(root, text)
	src := source.New("fixture.inf", []byte(text))
	return Build(src, root)
}

func TestBuildEmptySourceFile(t *testing.T) {
	text := ""
	root := cstfake.New("source_file", 0, 0)

	sf, errs := buildFixture(t, text, root)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if sf == nil {
		t.Fatal("expected non-nil SourceFile")
	}
	if len(sf.Directives) != 0 || len(sf.Definitions) != 0 {
		t.Fatalf("expected an empty source file, got %+v", sf)
	}
}

func TestBuildRejectsNonSourceFileRoot(t *testing.T) {
	root := cstfake.New("function_definition", 0, 0)
	_, errs := buildFixture(t, "", root)
	if len(errs) == 0 {
		t.Fatal("expected a fatal error for a non-source_file root")
	}
}

func TestBuildGlobUseDirective(t *testing.T) {
	text := "use math::*;"
	root := cstfake.New("source_file", 0, uint32(len(text)))

	use := cstfake.New("use_directive", 0, uint32(len(text)))
	use.AddField("path_segment", cstfake.Leaf("path_segment", "math", text, 0))
	use.AddField("glob", cstfake.Leaf("glob", "*", text, 0))
	root.AddChild(use)

	sf, errs := buildFixture(t, text, root)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(sf.Directives) != 1 {
		t.Fatalf("expected one directive, got %d", len(sf.Directives))
	}
	d := sf.Directives[0]
	if !d.Glob {
		t.Fatal("expected a glob import")
	}
	if len(d.Path) != 1 || d.Path[0] != "math" {
		t.Fatalf("unexpected path: %v", d.Path)
	}
}

func TestBuildNamedListUseDirective(t *testing.T) {
	text := "use collections::{List, Map as M};"
	root := cstfake.New("source_file", 0, uint32(len(text)))

	use := cstfake.New("use_directive", 0, uint32(len(text)))
	use.AddField("path_segment", cstfake.Leaf("path_segment", "collections", text, 0))

	item1 := cstfake.New("import_item", 0, 0)
	item1.AddField("name", cstfake.Leaf("identifier", "List", text, 0))
	use.AddField("item", item1)

	item2 := cstfake.New("import_item", 0, 0)
	item2.AddField("name", cstfake.Leaf("identifier", "Map", text, 0))
	item2.AddField("alias", cstfake.Leaf("identifier", "M", text, 0))
	use.AddField("item", item2)

	root.AddChild(use)

	sf, errs := buildFixture(t, text, root)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	d := sf.Directives[0]
	if d.Glob {
		t.Fatal("did not expect a glob import")
	}
	if len(d.Items) != 2 {
		t.Fatalf("expected two items, got %d", len(d.Items))
	}
	if d.Items[0].Name != "List" || d.Items[0].Alias != "" {
		t.Fatalf("unexpected first item: %+v", d.Items[0])
	}
	if d.Items[1].Name != "Map" || d.Items[1].Alias != "M" {
		t.Fatalf("unexpected second item: %+v", d.Items[1])
	}
}

func TestBuildFunctionDefinitionWithBody(t *testing.T) {
	text := "fn add(a: i32, b: i32) -> i32 { return a; }"
	root := cstfake.New("source_file", 0, uint32(len(text)))

	fn := cstfake.New("function_definition", 0, uint32(len(text)))
	fn.AddField("name", cstfake.Leaf("identifier", "add", text, 0))

	pa := cstfake.New("named_parameter", 0, 0)
	pa.AddField("name", cstfake.Leaf("identifier", "a", text, 0))
	pa.AddField("type", cstfake.Leaf("simple_type", "i32", text, 0))
	fn.AddField("parameter", pa)

	pb := cstfake.New("named_parameter", 0, 0)
	pb.AddField("name", cstfake.Leaf("identifier", "b", text, 0))
	pb.AddField("type", cstfake.Leaf("simple_type", "i32", text, 0))
	fn.AddField("parameter", pb)

	fn.AddField("return_type", cstfake.Leaf("simple_type", "i32", text, 0))

	body := cstfake.New("block", 0, uint32(len(text)))
	ret := cstfake.New("return_statement", 0, 0)
	ret.AddField("value", cstfake.Leaf("identifier", "a", text, 0))
	body.AddField("statement", ret)
	fn.AddField("body", body)

	root.AddChild(fn)

	sf, errs := buildFixture(t, text, root)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(sf.Definitions) != 1 {
		t.Fatalf("expected one definition, got %d", len(sf.Definitions))
	}
	def, ok := sf.Definitions[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected *ast.FunctionDefinition, got %T", sf.Definitions[0])
	}
	if def.Name != "add" {
		t.Fatalf("unexpected name %q", def.Name)
	}
	if def.DefVisibility() != ast.Private {
		t.Fatalf("expected default visibility Private, got %v", def.DefVisibility())
	}
	if len(def.Parameters) != 2 {
		t.Fatalf("expected two parameters, got %d", len(def.Parameters))
	}
	if def.Body == nil || len(def.Body.Statements) != 1 {
		t.Fatalf("expected a one-statement body, got %+v", def.Body)
	}
	if _, ok := def.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Fatalf("expected a ReturnStatement, got %T", def.Body.Statements[0])
	}
}

func TestBuildStructDefinitionWithMethodAndSelf(t *testing.T) {
	text := "public struct Point { x: i32, y: i32 }"
	root := cstfake.New("source_file", 0, uint32(len(text)))

	st := cstfake.New("struct_definition", 0, uint32(len(text)))
	st.AddField("name", cstfake.Leaf("identifier", "Point", text, 0))
	st.AddField("visibility", cstfake.Leaf("visibility", "public", text, 0))

	fx := cstfake.New("field", 0, 0)
	fx.AddField("name", cstfake.Leaf("identifier", "x", text, 0))
	fx.AddField("type", cstfake.Leaf("simple_type", "i32", text, 0))
	st.AddField("field", fx)

	fy := cstfake.New("field", 0, 0)
	fy.AddField("name", cstfake.Leaf("identifier", "y", text, 0))
	fy.AddField("type", cstfake.Leaf("simple_type", "i32", text, 0))
	st.AddField("field", fy)

	method := cstfake.New("function_definition", 0, 0)
	method.AddField("name", cstfake.Leaf("identifier", "sum", text, 0))
	self := cstfake.New("self_parameter", 0, 0)
	method.AddField("parameter", self)
	method.AddField("return_type", cstfake.Leaf("simple_type", "i32", text, 0))
	method.AddField("body", cstfake.New("block", 0, 0))
	st.AddField("method", method)

	root.AddChild(st)

	sf, errs := buildFixture(t, text, root)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	def, ok := sf.Definitions[0].(*ast.StructDefinition)
	if !ok {
		t.Fatalf("expected *ast.StructDefinition, got %T", sf.Definitions[0])
	}
	if def.DefVisibility() != ast.Public {
		t.Fatalf("expected Public visibility, got %v", def.DefVisibility())
	}
	if len(def.Fields) != 2 {
		t.Fatalf("expected two fields, got %d", len(def.Fields))
	}
	if len(def.Methods) != 1 {
		t.Fatalf("expected one method, got %d", len(def.Methods))
	}
	if !def.Methods[0].HasSelfReceiver() {
		t.Fatal("expected the method's first parameter to be self")
	}
}

func TestBuildRejectsReservedWordAsName(t *testing.T) {
	text := "fn return() { }"
	root := cstfake.New("source_file", 0, uint32(len(text)))

	fn := cstfake.New("function_definition", 0, uint32(len(text)))
	fn.AddField("name", cstfake.Leaf("identifier", "return", text, 0))
	fn.AddField("body", cstfake.New("block", 0, 0))
	root.AddChild(fn)

	_, errs := buildFixture(t, text, root)
	if len(errs) == 0 {
		t.Fatal("expected an error for a reserved-word function name")
	}
}

func TestBuildUzumakiVarDef(t *testing.T) {
	text := "let n: i32 = uzumaki;"
	root := cstfake.New("source_file", 0, uint32(len(text)))

	fn := cstfake.New("function_definition", 0, uint32(len(text)))
	fn.AddField("name", cstfake.Leaf("identifier", "f", text, 0))
	body := cstfake.New("block", 0, uint32(len(text)))

	vd := cstfake.New("var_def_statement", 0, uint32(len(text)))
	vd.AddField("name", cstfake.Leaf("identifier", "n", text, 0))
	vd.AddField("type", cstfake.Leaf("simple_type", "i32", text, 0))
	vd.AddField("value", cstfake.Leaf("uzumaki_expression", "uzumaki", text, 0))
	vd.AddField("uzumaki", cstfake.Leaf("uzumaki", "uzumaki", text, 0))
	body.AddField("statement", vd)
	fn.AddField("body", body)
	root.AddChild(fn)

	sf, errs := buildFixture(t, text, root)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	def := sf.Definitions[0].(*ast.FunctionDefinition)
	stmt := def.Body.Statements[0].(*ast.VarDefStatement)
	if !stmt.Uzumaki {
		t.Fatal("expected Uzumaki to be true")
	}
	if _, ok := stmt.Init.(*ast.UzumakiExpression); !ok {
		t.Fatalf("expected *ast.UzumakiExpression, got %T", stmt.Init)
	}
}

func TestBuildBinaryExpressionAndForallBlock(t *testing.T) {
	text := "a + b"
	root := cstfake.New("source_file", 0, uint32(len(text)))

	fn := cstfake.New("function_definition", 0, uint32(len(text)))
	fn.AddField("name", cstfake.Leaf("identifier", "f", text, 0))
	body := cstfake.New("block", 0, uint32(len(text)))

	forall := cstfake.New("forall_block", 0, uint32(len(text)))
	exprStmt := cstfake.New("expression_statement", 0, uint32(len(text)))

	bin := cstfake.New("binary_expression", 0, uint32(len(text)))
	bin.AddField("left", cstfake.Leaf("identifier", "a", text, 0))
	bin.AddField("operator", cstfake.Leaf("operator", "+", text, 0))
	bin.AddField("right", cstfake.Leaf("identifier", "b", text, 2))
	exprStmt.AddField("expression", bin)
	forall.AddField("statement", exprStmt)

	nested := cstfake.New("nested_block_statement", 0, uint32(len(text)))
	nested.AddField("body", forall)
	body.AddField("statement", nested)
	fn.AddField("body", body)
	root.AddChild(fn)

	sf, errs := buildFixture(t, text, root)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	def := sf.Definitions[0].(*ast.FunctionDefinition)
	nestedStmt := def.Body.Statements[0].(*ast.NestedBlockStatement)
	if nestedStmt.Body.Kind != ast.ForallBlock {
		t.Fatalf("expected ForallBlock, got %v", nestedStmt.Body.Kind)
	}
	if !nestedStmt.Body.Kind.IsNonDet() {
		t.Fatal("expected forall block to be nondeterministic")
	}
	es := nestedStmt.Body.Statements[0].(*ast.ExpressionStatement)
	bexpr := es.Expr.(*ast.BinaryExpression)
	if bexpr.Operator != ast.Add {
		t.Fatalf("expected Add operator, got %v", bexpr.Operator)
	}
}
