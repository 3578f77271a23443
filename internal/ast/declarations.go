package ast

// Parameter is one entry in a function's argument list: a named parameter,
// a `self` receiver, or an ignored positional type (a parameter declared
// by type only, with no bound name).
type Parameter interface {
	Node
	parameterNode()
}

// NamedParameter is `name: T` or `mut name: T`.
type NamedParameter struct {
	base
	Name    string
	Mutable bool
	Type    TypeExpression
}

func (p *NamedParameter) parameterNode() {}

// SelfParameter is a method's `self` or `mut self` receiver. Only a
// method's first argument may be one; a free function's arguments may
// never include it.
type SelfParameter struct {
	base
	Mutable bool
}

func (p *SelfParameter) parameterNode() {}

// IgnoredParameter is a positional parameter declared by type only.
type IgnoredParameter struct {
	base
	Type TypeExpression
}

func (p *IgnoredParameter) parameterNode() {}

// FunctionDefinition is a top-level or method function with a body.
type FunctionDefinition struct {
	base
	Name           string
	Visibility     Visibility
	TypeParameters []string
	Parameters     []Parameter
	ReturnType     TypeExpression // nil means Unit
	Body           *Block
	DocComment     string // raw leading doc comment text, empty if none
}

func (d *FunctionDefinition) definitionNode()               {}
func (d *FunctionDefinition) DefName() string                { return d.Name }
func (d *FunctionDefinition) DefVisibility() Visibility       { return d.Visibility }

// HasSelfReceiver reports whether this function's first parameter is self,
// i.e. whether it is a method rather than a free or associated function.
func (d *FunctionDefinition) HasSelfReceiver() bool {
	if len(d.Parameters) == 0 {
		return false
	}
	_, ok := d.Parameters[0].(*SelfParameter)
	return ok
}

// ExternalFunctionDefinition represents an FFI/host import: same signature
// shape as FunctionDefinition but with no body.
type ExternalFunctionDefinition struct {
	base
	Name           string
	Visibility     Visibility
	TypeParameters []string
	Parameters     []Parameter
	ReturnType     TypeExpression
	DocComment     string
}

func (d *ExternalFunctionDefinition) definitionNode()         {}
func (d *ExternalFunctionDefinition) DefName() string          { return d.Name }
func (d *ExternalFunctionDefinition) DefVisibility() Visibility { return d.Visibility }

// StructField is one `name: T` field of a struct, carrying its own
// visibility independent of the struct's own.
type StructField struct {
	Name       string
	Type       TypeExpression
	Visibility Visibility
}

// StructDefinition is a named struct with fields and methods.
type StructDefinition struct {
	base
	Name       string
	Visibility Visibility
	Fields     []StructField
	Methods    []*FunctionDefinition
	DocComment string
}

func (d *StructDefinition) definitionNode()         {}
func (d *StructDefinition) DefName() string          { return d.Name }
func (d *StructDefinition) DefVisibility() Visibility { return d.Visibility }

// EnumDefinition is a named enum with ordered unit variants (no payload in
// this language version).
type EnumDefinition struct {
	base
	Name       string
	Visibility Visibility
	Variants   []string
	DocComment string
}

func (d *EnumDefinition) definitionNode()         {}
func (d *EnumDefinition) DefName() string          { return d.Name }
func (d *EnumDefinition) DefVisibility() Visibility { return d.Visibility }

// TypeDefinition is a type alias, `type Name = AliasedType;`.
type TypeDefinition struct {
	base
	Name       string
	Visibility Visibility
	Aliased    TypeExpression
	DocComment string
}

func (d *TypeDefinition) definitionNode()         {}
func (d *TypeDefinition) DefName() string          { return d.Name }
func (d *TypeDefinition) DefVisibility() Visibility { return d.Visibility }

// ConstantDefinition is `const Name: T = literal;`.
type ConstantDefinition struct {
	base
	Name       string
	Visibility Visibility
	Type       TypeExpression
	Value      Expression // always a literal
	DocComment string
}

func (d *ConstantDefinition) definitionNode()         {}
func (d *ConstantDefinition) DefName() string          { return d.Name }
func (d *ConstantDefinition) DefVisibility() Visibility { return d.Visibility }

// SpecDefinition groups nested definitions in an interface-style grouping,
// similar in role to a module but semantically distinct (no import path).
type SpecDefinition struct {
	base
	Name        string
	Visibility  Visibility
	Definitions []Definition
	DocComment  string
}

func (d *SpecDefinition) definitionNode()         {}
func (d *SpecDefinition) DefName() string          { return d.Name }
func (d *SpecDefinition) DefVisibility() Visibility { return d.Visibility }

// ModuleDefinition is a named module with an optional nested body.
type ModuleDefinition struct {
	base
	Name        string
	Visibility  Visibility
	Definitions []Definition // empty if the module has no inline body
	DocComment  string
}

func (d *ModuleDefinition) definitionNode()         {}
func (d *ModuleDefinition) DefName() string          { return d.Name }
func (d *ModuleDefinition) DefVisibility() Visibility { return d.Visibility }

// ImportItem is one imported name inside a `use a::b::{X, Y}` list, or the
// single trailing segment of `use a::b::c`. Alias is non-empty only for a
// renaming import `use a::b::{X as Y}`.
type ImportItem struct {
	Name  string
	Alias string
}

// UseDirective is one `use` import directive. Exactly one of Glob, Items,
// or (implicit) the trailing path segment applies:
//   - use a::b::c;          -> Path=[a,b], Items=[{Name:"c"}]
//   - use a::b::{X, Y};     -> Path=[a,b], Items=[{Name:"X"},{Name:"Y"}]
//   - use a::b::*;          -> Path=[a,b], Glob=true
type UseDirective struct {
	base
	Path  []string
	Items []ImportItem
	Glob  bool
}

// SourceFile owns its entire source text (via the source.File it is built
// from) and its top-level directives and definitions. It has no body text
// field itself — AST nodes never duplicate source bytes.
type SourceFile struct {
	base
	Name        string // module name this file belongs to, if known
	Directives  []*UseDirective
	Definitions []Definition
}
