package astbuild

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/cst"
)

// visibility reads the optional `visibility` field, defaulting to Private
// when absent -- definitions are private unless explicitly marked public.
func (b *Builder) visibility(n cst.Node) ast.Visibility {
	v := n.ChildByFieldName("visibility")
	if v != nil && b.text(v) == "public" {
		return ast.Public
	}
	return ast.Private
}

func (b *Builder) docComment(n cst.Node) string {
	if d := n.ChildByFieldName("doc_comment"); d != nil {
		return b.text(d)
	}
	return ""
}

// checkNotReserved records an error when name collides with a reserved
// keyword at a definition site (definitions, parameters, bindings).
func (b *Builder) checkNotReserved(n cst.Node, name string) {
	if ast.IsReserved(name) {
		b.fail(n, "%q is a reserved word and cannot be used as a name", name)
	}
}

// buildDefinition dispatches a top-level or nested definition CST node to
// its specific builder.
func (b *Builder) buildDefinition(n cst.Node) ast.Definition {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "function_definition":
		return b.buildFunctionDefinition(n)
	case "external_function_definition":
		return b.buildExternalFunctionDefinition(n)
	case "struct_definition":
		return b.buildStructDefinition(n)
	case "enum_definition":
		return b.buildEnumDefinition(n)
	case "type_definition":
		return b.buildTypeDefinition(n)
	case "constant_definition":
		return b.buildConstantDefinition(n)
	case "spec_definition":
		return b.buildSpecDefinition(n)
	case "module_definition":
		return b.buildModuleDefinition(n)
	default:
		b.fail(n, "unrecognized definition kind %q", n.Kind())
		return nil
	}
}

func (b *Builder) buildTypeParameters(n cst.Node) []string {
	var out []string
	for _, tp := range n.ChildrenByFieldName("type_parameter") {
		out = append(out, b.text(tp))
	}
	return out
}

func (b *Builder) buildParameters(n cst.Node) []ast.Parameter {
	var out []ast.Parameter
	for _, p := range n.ChildrenByFieldName("parameter") {
		if param := b.buildParameter(p); param != nil {
			out = append(out, param)
		}
	}
	return out
}

// buildParameter lowers a single parameter CST node: self, named, or
// ignored-by-name (type only).
func (b *Builder) buildParameter(n cst.Node) ast.Parameter {
	if n == nil {
		return nil
	}
	id := b.nextID()
	loc := b.loc(n)

	switch n.Kind() {
	case "self_parameter":
		mutable := n.ChildByFieldName("mut") != nil
		return ast.NewSelfParameter(id, loc, mutable)

	case "named_parameter":
		name := b.text(n.ChildByFieldName("name"))
		b.checkNotReserved(n, name)
		mutable := n.ChildByFieldName("mut") != nil
		typ := b.buildTypeExpression(n.ChildByFieldName("type"))
		return ast.NewNamedParameter(id, loc, name, mutable, typ)

	case "ignored_parameter":
		typ := b.buildTypeExpression(n.ChildByFieldName("type"))
		return ast.NewIgnoredParameter(id, loc, typ)

	default:
		b.fail(n, "unrecognized parameter kind %q", n.Kind())
		return nil
	}
}

func (b *Builder) buildFunctionDefinition(n cst.Node) *ast.FunctionDefinition {
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)

	typeParams := b.buildTypeParameters(n)
	params := b.buildParameters(n)

	var ret ast.TypeExpression
	if r := n.ChildByFieldName("return_type"); r != nil {
		ret = b.buildTypeExpression(r)
	}
	body := b.buildBlock(n.ChildByFieldName("body"))

	def := ast.NewFunctionDefinition(id, loc, name, b.visibility(n), typeParams, params, ret, body)
	def.DocComment = b.docComment(n)
	return def
}

func (b *Builder) buildExternalFunctionDefinition(n cst.Node) *ast.ExternalFunctionDefinition {
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)

	typeParams := b.buildTypeParameters(n)
	params := b.buildParameters(n)

	var ret ast.TypeExpression
	if r := n.ChildByFieldName("return_type"); r != nil {
		ret = b.buildTypeExpression(r)
	}

	def := ast.NewExternalFunctionDefinition(id, loc, name, b.visibility(n), typeParams, params, ret)
	def.DocComment = b.docComment(n)
	return def
}

func (b *Builder) buildStructDefinition(n cst.Node) *ast.StructDefinition {
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)

	var fields []ast.StructField
	for _, f := range n.ChildrenByFieldName("field") {
		fname := b.text(f.ChildByFieldName("name"))
		ftype := b.buildTypeExpression(f.ChildByFieldName("type"))
		fields = append(fields, ast.StructField{Name: fname, Type: ftype, Visibility: b.visibility(f)})
	}

	var methods []*ast.FunctionDefinition
	for _, m := range n.ChildrenByFieldName("method") {
		methods = append(methods, b.buildFunctionDefinition(m))
	}

	def := ast.NewStructDefinition(id, loc, name, b.visibility(n), fields, methods)
	def.DocComment = b.docComment(n)
	return def
}

func (b *Builder) buildEnumDefinition(n cst.Node) *ast.EnumDefinition {
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)

	var variants []string
	for _, v := range n.ChildrenByFieldName("variant") {
		variants = append(variants, b.text(v))
	}

	def := ast.NewEnumDefinition(id, loc, name, b.visibility(n), variants)
	def.DocComment = b.docComment(n)
	return def
}

func (b *Builder) buildTypeDefinition(n cst.Node) *ast.TypeDefinition {
	if n == nil {
		return nil
	}
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)
	aliased := b.buildTypeExpression(n.ChildByFieldName("aliased"))

	def := ast.NewTypeDefinition(id, loc, name, b.visibility(n), aliased)
	def.DocComment = b.docComment(n)
	return def
}

func (b *Builder) buildConstantDefinition(n cst.Node) *ast.ConstantDefinition {
	if n == nil {
		return nil
	}
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)
	var typ ast.TypeExpression
	if t := n.ChildByFieldName("type"); t != nil {
		typ = b.buildTypeExpression(t)
	}
	value := b.buildExpression(n.ChildByFieldName("value"))

	def := ast.NewConstantDefinition(id, loc, name, b.visibility(n), typ, value)
	def.DocComment = b.docComment(n)
	return def
}

func (b *Builder) buildSpecDefinition(n cst.Node) *ast.SpecDefinition {
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)

	var defs []ast.Definition
	for _, d := range n.ChildrenByFieldName("definition") {
		if def := b.buildDefinition(d); def != nil {
			defs = append(defs, def)
		}
	}

	def := ast.NewSpecDefinition(id, loc, name, b.visibility(n), defs)
	def.DocComment = b.docComment(n)
	return def
}

func (b *Builder) buildModuleDefinition(n cst.Node) *ast.ModuleDefinition {
	id := b.nextID()
	loc := b.loc(n)
	name := b.text(n.ChildByFieldName("name"))
	b.checkNotReserved(n, name)

	var defs []ast.Definition
	for _, d := range n.ChildrenByFieldName("definition") {
		if def := b.buildDefinition(d); def != nil {
			defs = append(defs, def)
		}
	}

	def := ast.NewModuleDefinition(id, loc, name, b.visibility(n), defs)
	def.DocComment = b.docComment(n)
	return def
}
