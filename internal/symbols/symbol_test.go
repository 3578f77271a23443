package symbols

import (
	"testing"

	"github.com/dotandev/infc/internal/ast"
)

func TestLookupWalksOutwardToRoot(t *testing.T) {
	root := NewScope(RootScope, "", nil)
	root.Declare(&Symbol{Name: "Widget", Kind: StructSymbol, Visibility: ast.Public})

	fn := NewScope(FunctionScope, "main", root)
	block := NewScope(BlockScope, "", fn)

	sym, err := block.Lookup("Widget", block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym == nil || sym.Name != "Widget" {
		t.Fatalf("expected to find Widget, got %v", sym)
	}
}

func TestLookupReturnsNilForUnknownName(t *testing.T) {
	root := NewScope(RootScope, "", nil)
	sym, err := root.Lookup("Nope", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym != nil {
		t.Fatalf("expected no match, got %v", sym)
	}
}

func TestDeclareSameNameSameKindErrors(t *testing.T) {
	s := NewScope(FunctionScope, "f", nil)
	if err := s.Declare(&Symbol{Name: "x", Kind: VariableSymbol}); err != nil {
		t.Fatalf("unexpected error on first declare: %v", err)
	}
	err := s.Declare(&Symbol{Name: "x", Kind: VariableSymbol})
	if err == nil {
		t.Fatal("expected a registration error for a same-name-same-kind redeclaration")
	}
	if _, ok := err.(*RegistrationError); !ok {
		t.Fatalf("expected *RegistrationError, got %T", err)
	}
}

func TestDeclareSameNameDifferentKindIsPermitted(t *testing.T) {
	s := NewScope(FunctionScope, "f", nil)
	if err := s.Declare(&Symbol{Name: "Point", Kind: StructSymbol}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Declare(&Symbol{Name: "Point", Kind: TypeParameterSymbol}); err != nil {
		t.Fatalf("expected different-kind shadowing to be permitted, got %v", err)
	}
}

func TestPrivateAccessViolationOutsideOwningScope(t *testing.T) {
	root := NewScope(RootScope, "", nil)
	moduleScope := NewScope(ModuleScope, "m", root)
	moduleScope.Declare(&Symbol{Name: "Point", Kind: StructSymbol, Visibility: ast.Private})
	root.Declare(&Symbol{Name: "m", Kind: ModuleSymbol, Scope: moduleScope, Visibility: ast.Public})

	otherModule := NewScope(ModuleScope, "main", root)

	_, err := root.LookupQualified("m", "Point", otherModule)
	if err == nil {
		t.Fatal("expected a PrivateAccessError looking up a private symbol from an unrelated module")
	}
	if _, ok := err.(*PrivateAccessError); !ok {
		t.Fatalf("expected *PrivateAccessError, got %T", err)
	}
}

func TestPrivateAccessPermittedFromDescendantScope(t *testing.T) {
	root := NewScope(RootScope, "", nil)
	moduleScope := NewScope(ModuleScope, "m", root)
	moduleScope.Declare(&Symbol{Name: "Point", Kind: StructSymbol, Visibility: ast.Private})

	nested := NewScope(FunctionScope, "helper", moduleScope)

	sym, err := moduleScope.Lookup("Point", nested)
	if err != nil {
		t.Fatalf("unexpected error accessing a private symbol from a descendant scope: %v", err)
	}
	if sym == nil {
		t.Fatal("expected to find Point")
	}
}

func TestCaseInsensitiveBuiltinLookup(t *testing.T) {
	root := NewScope(RootScope, "", nil)
	root.Declare(&Symbol{Name: "i32", Kind: TypeSymbol, Visibility: ast.Public})

	for _, spelling := range []string{"i32", "I32", "I32"} {
		sym, err := root.Lookup(spelling, root)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", spelling, err)
		}
		if sym == nil {
			t.Fatalf("expected case-insensitive match for %q", spelling)
		}
	}
}

func TestCustomNameLookupIsCaseSensitive(t *testing.T) {
	root := NewScope(RootScope, "", nil)
	root.Declare(&Symbol{Name: "Widget", Kind: StructSymbol, Visibility: ast.Public})

	sym, _ := root.Lookup("widget", root)
	if sym != nil {
		t.Fatal("expected custom type names to be matched case-sensitively")
	}
}

func TestIsDescendantOf(t *testing.T) {
	root := NewScope(RootScope, "", nil)
	fn := NewScope(FunctionScope, "f", root)
	block := NewScope(BlockScope, "", fn)

	if !block.IsDescendantOf(root) {
		t.Fatal("expected block to be a descendant of root")
	}
	if !block.IsDescendantOf(block) {
		t.Fatal("expected a scope to be a descendant of itself")
	}
	other := NewScope(FunctionScope, "g", root)
	if block.IsDescendantOf(other) {
		t.Fatal("did not expect block to be a descendant of an unrelated sibling")
	}
}
