package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestCheckFixtureSnapshots runs a handful of whole-program fixtures through
// CheckProgram and snapshots the rendered diagnostic list, covering a whole
// run's output rather than asserting against individual fields one at a time.
func TestCheckFixtureSnapshots(t *testing.T) {
	fixtures := []struct {
		name  string
		build func() []*ast.SourceFile
	}{
		{"well_typed_program", fixtureWellTyped},
		{"duplicate_struct_field", fixtureDuplicateField},
		{"unknown_type_in_signature", fixtureUnknownType},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			_, errs := CheckProgram(f.build())
			snaps.MatchSnapshot(t, f.name, renderDiagnostics(errs))
		})
	}
}

func renderDiagnostics(errs []diagnostics.Diagnostic) string {
	if len(errs) == 0 {
		return "(no diagnostics)"
	}
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, fmt.Sprintf("%s: %s", e.Kind, e.Message))
	}
	return strings.Join(lines, "\n")
}

func fixtureWellTyped() []*ast.SourceFile {
	a := ast.NewIDAllocator()
	ret := ast.NewReturnStatement(a.Next(), ast.Location{},
		ast.NewBinaryExpression(a.Next(), ast.Location{},
			ast.NewNumberLiteral(a.Next(), ast.Location{}, "2"), ast.Mul,
			ast.NewNumberLiteral(a.Next(), ast.Location{}, "21")))
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, []ast.Statement{ret})
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "answer", ast.Public, nil, nil,
		ast.NewSimpleType(ast.Location{}, ast.I32), body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"
	return []*ast.SourceFile{sf}
}

func fixtureDuplicateField() []*ast.SourceFile {
	a := ast.NewIDAllocator()
	fields := []ast.StructField{
		{Name: "x", Type: ast.NewSimpleType(ast.Location{}, ast.I32), Visibility: ast.Public},
		{Name: "x", Type: ast.NewSimpleType(ast.Location{}, ast.I32), Visibility: ast.Public},
	}
	structDef := ast.NewStructDefinition(a.Next(), ast.Location{}, "Dup", ast.Public, fields, nil)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{structDef})
	sf.Name = "main"
	return []*ast.SourceFile{sf}
}

func fixtureUnknownType() []*ast.SourceFile {
	a := ast.NewIDAllocator()
	param := ast.NewNamedParameter(a.Next(), ast.Location{}, "p", false, ast.NewCustomType(a.Next(), ast.Location{}, "Ghost"))
	body := ast.NewBlock(a.Next(), ast.Location{}, ast.PlainBlock, nil)
	fn := ast.NewFunctionDefinition(a.Next(), ast.Location{}, "take", ast.Public, nil, []ast.Parameter{param}, nil, body)

	sf := ast.NewSourceFile(a.Next(), ast.Location{}, nil, []ast.Definition{fn})
	sf.Name = "main"
	return []*ast.SourceFile{sf}
}
