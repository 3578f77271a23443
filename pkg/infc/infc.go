// Package infc is the embeddable facade over the semantic-analysis core:
// registration, use-directive resolution, signature validation, and
// bidirectional type checking, run as one call over a whole-program
// compilation unit.
package infc

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/check"
	"github.com/dotandev/infc/internal/diagnostics"
)

// Check runs the full pipeline over files -- which may freely reference
// each other's public definitions via use-directives -- and returns the
// resulting typed context (node-id -> type, node-id -> symbol) plus every
// diagnostic collected along the way, in first-seen order.
func Check(files []*ast.SourceFile) (*check.TypedContext, []diagnostics.Diagnostic) {
	return check.CheckProgram(files)
}
