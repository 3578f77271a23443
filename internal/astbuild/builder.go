// Package astbuild lowers a concrete syntax tree (internal/cst) into the
// typed AST (internal/ast). It is purely syntactic: it performs no name
// resolution and no type checking. Node construction follows the same
// StartNode/Finish position-tracking discipline as a hand-written
// recursive-descent parser, generalized here from a token stream to an
// externally supplied CST.
package astbuild

import (
	"fmt"

	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/cst"
	"github.com/dotandev/infc/internal/source"
)

// BuildError is a construction error with the offending CST node's
// location. The builder collects these rather than aborting, so a
// malformed definition doesn't prevent the rest of the file from building.
type BuildError struct {
	Location ast.Location
	Message  string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Builder lowers one CST root into one ast.SourceFile. Create one Builder
// per file; its IDAllocator guarantees fresh, unique node IDs across that
// one build.
type Builder struct {
	src    *source.File
	ids    *ast.IDAllocator
	errors []error
}

// New creates a Builder for lowering CST nodes whose byte offsets index
// into src's text.
func New(src *source.File) *Builder {
	return &Builder{src: src, ids: ast.NewIDAllocator()}
}

// Errors returns every construction error collected so far.
func (b *Builder) Errors() []error { return b.errors }

func (b *Builder) fail(n cst.Node, format string, args ...any) {
	b.errors = append(b.errors, &BuildError{
		Location: b.loc(n),
		Message:  fmt.Sprintf(format, args...),
	})
}

func (b *Builder) loc(n cst.Node) ast.Location {
	if n == nil {
		return ast.Location{}
	}
	return b.src.MakeLocation(n.StartByte(), n.EndByte())
}

func (b *Builder) text(n cst.Node) string {
	if n == nil {
		return ""
	}
	return n.UTF8Text(b.src.Text())
}

func (b *Builder) nextID() ast.NodeID { return b.ids.Next() }

// Build lowers a `source_file` CST root into a SourceFile. A root of any
// other kind is a fatal error — everything else is collected into the
// returned error slice and surfaced alongside a best-effort partial AST.
func Build(src *source.File, root cst.Node) (*ast.SourceFile, []error) {
	b := New(src)
	if root == nil || root.Kind() != "source_file" {
		kind := "<nil>"
		if root != nil {
			kind = root.Kind()
		}
		return nil, []error{fmt.Errorf("expected root node of kind source_file, got %s", kind)}
	}

	id := b.nextID()
	loc := b.loc(root)

	var directives []*ast.UseDirective
	var definitions []ast.Definition

	for i := 0; i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "use_directive":
			if d := b.buildUseDirective(child); d != nil {
				directives = append(directives, d)
			}
		default:
			if d := b.buildDefinition(child); d != nil {
				definitions = append(definitions, d)
			}
		}
	}

	sf := ast.NewSourceFile(id, loc, directives, definitions)
	return sf, b.errors
}
