// Package symbols implements the scope forest that name resolution and
// visibility enforcement run over. A Scope never duplicates an AST node's
// information: a Symbol refers back to its defining node-id rather than
// owning a copy of it, matching the scope-chain shape of a hand-written
// recursive-descent checker's symbol table, generalized from a fixed
// two-level (file, block) nesting to an arbitrary-depth forest.
package symbols

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/types"
)

// ScopeKind tags what kind of lexical construct a Scope represents.
type ScopeKind int

const (
	RootScope ScopeKind = iota
	ModuleScope
	SpecScope
	StructScope
	FunctionScope
	BlockScope
)

func (k ScopeKind) String() string {
	switch k {
	case RootScope:
		return "root"
	case ModuleScope:
		return "module"
	case SpecScope:
		return "spec"
	case StructScope:
		return "struct"
	case FunctionScope:
		return "function"
	case BlockScope:
		return "block"
	}
	return "?"
}

// Kind tags what a Symbol names.
type Kind int

const (
	TypeSymbol Kind = iota
	StructSymbol
	EnumSymbol
	SpecSymbol
	FunctionSymbol
	MethodSymbol
	VariableSymbol
	ConstantSymbol
	TypeParameterSymbol
	ModuleSymbol
)

func (k Kind) String() string {
	switch k {
	case TypeSymbol:
		return "type"
	case StructSymbol:
		return "struct"
	case EnumSymbol:
		return "enum"
	case SpecSymbol:
		return "spec"
	case FunctionSymbol:
		return "function"
	case MethodSymbol:
		return "method"
	case VariableSymbol:
		return "variable"
	case ConstantSymbol:
		return "constant"
	case TypeParameterSymbol:
		return "type parameter"
	case ModuleSymbol:
		return "module"
	}
	return "?"
}

// Symbol is one registered name: its kind, where it was defined, its
// visibility, and its type (for value symbols and type aliases) or
// structural info (the owning Scope for Struct/Spec/Module, the variant
// list for Enum).
type Symbol struct {
	Name       string
	Kind       Kind
	NodeID     ast.NodeID
	Location   ast.Location
	Visibility ast.Visibility
	Type       types.TypeInfo // meaningful for Variable/Constant/Function/Method, and the aliased type for Type

	// Scope is the symbol's own nested scope, populated for Struct, Spec,
	// and Module symbols -- nil for Enum symbols (their variants are in
	// Variants below) and for value and type-parameter symbols.
	Scope *Scope

	// Variants holds enum variant names in declaration order, populated
	// only for an EnumSymbol.
	Variants []string

	// Def is the AST definition node this symbol was registered from, so
	// the checker can recover field lists, method lists, and parameter
	// signatures from a resolved symbol without a second name-keyed
	// lookup structure running alongside the scope forest.
	Def ast.Definition
}

// Scope is one node of the scope forest: a name->Symbol map plus a parent
// pointer. The root scope has a nil parent.
type Scope struct {
	Kind    ScopeKind
	Parent  *Scope
	Name    string // the module/struct/spec/function name this scope belongs to, if any
	symbols map[string]*Symbol
}

// NewScope creates a scope of the given kind, nested under parent (nil for
// the compilation root).
func NewScope(kind ScopeKind, name string, parent *Scope) *Scope {
	return &Scope{Kind: kind, Name: name, Parent: parent, symbols: make(map[string]*Symbol)}
}

// RegistrationError reports that name already exists in this scope with
// the same Kind -- same-scope, same-name-same-kind collisions are an
// error, but different-kind shadowing across scopes is permitted.
type RegistrationError struct {
	Name     string
	Kind     Kind
	Location ast.Location
	Existing *Symbol
}

func (e *RegistrationError) Error() string {
	return e.Location.String() + ": \"" + e.Name + "\" is already defined in this scope"
}

// Declare inserts sym into s. It is an error only when a symbol of the
// exact same name AND kind already exists directly in s; a different-kind
// symbol of the same name is permitted to coexist (shadowing is resolved
// by declaration order favoring the most specific lookup, which for two
// symbols in the same scope means the later Declare call wins the map slot
// -- in practice the checker registers each scope's definitions once, so
// this case does not arise for well-formed input).
func (s *Scope) Declare(sym *Symbol) error {
	if existing, ok := s.symbols[sym.Name]; ok && existing.Kind == sym.Kind {
		return &RegistrationError{Name: sym.Name, Kind: sym.Kind, Location: sym.Location, Existing: existing}
	}
	s.symbols[sym.Name] = sym
	return nil
}

// Local looks up name directly in s, without walking to parent scopes.
func (s *Scope) Local(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// All returns every symbol declared directly in s, in no particular order.
// Used by glob-import re-export.
func (s *Scope) All() []*Symbol {
	out := make([]*Symbol, 0, len(s.symbols))
	for _, sym := range s.symbols {
		out = append(out, sym)
	}
	return out
}

// IsDescendantOf reports whether s is scope target or nested (directly or
// transitively) inside it.
func (s *Scope) IsDescendantOf(target *Scope) bool {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur == target {
			return true
		}
	}
	return false
}

// PrivateAccessError reports a lookup that resolved to a private symbol
// from outside the symbol's owning scope.
type PrivateAccessError struct {
	Name     string
	Location ast.Location
}

func (e *PrivateAccessError) Error() string {
	return e.Location.String() + ": \"" + e.Name + "\" is private"
}

// Lookup walks from s outward to the root, returning the first scope that
// declares name directly. Builtin primitive type names are matched
// case-insensitively; every other name is matched case-sensitively.
//
// from is the scope the lookup originates at (usually == s on the initial
// call); visibility is enforced against it: if the resolved symbol is
// private and from is not a descendant of the symbol's declaring scope,
// the lookup fails with a PrivateAccessError rather than returning a
// result the caller should not be able to see.
func (s *Scope) Lookup(name string, from *Scope) (*Symbol, error) {
	if canon, ok := canonicalBuiltinName(name); ok {
		name = canon
	}
	for cur := s; cur != nil; cur = cur.Parent {
		if sym, ok := cur.symbols[name]; ok {
			if sym.Visibility == ast.Private && !from.IsDescendantOf(cur) {
				return nil, &PrivateAccessError{Name: name, Location: sym.Location}
			}
			return sym, nil
		}
	}
	return nil, nil
}

// LookupQualified resolves a `Mod::Name` path: Mod is resolved by the
// ordinary outward Lookup rule, then Name is looked up directly in that
// module's own scope with no further outward walk.
func (s *Scope) LookupQualified(module, name string, from *Scope) (*Symbol, error) {
	modSym, err := s.Lookup(module, from)
	if err != nil {
		return nil, err
	}
	if modSym == nil || modSym.Scope == nil {
		return nil, nil
	}
	sym, ok := modSym.Scope.Local(name)
	if !ok {
		return nil, nil
	}
	if sym.Visibility == ast.Private && !from.IsDescendantOf(modSym.Scope) {
		return nil, &PrivateAccessError{Name: name, Location: sym.Location}
	}
	return sym, nil
}

var builtinNames = map[string]string{
	"unit": "unit", "bool": "bool",
	"i8": "i8", "i16": "i16", "i32": "i32", "i64": "i64",
	"u8": "u8", "u16": "u16", "u32": "u32", "u64": "u64",
}

// canonicalBuiltinName case-insensitively matches one of the ten
// primitive type names, returning its canonical lowercase spelling.
func canonicalBuiltinName(name string) (string, bool) {
	lower := toLower(name)
	canon, ok := builtinNames[lower]
	return canon, ok
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
