package astbuild

import (
	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/cst"
)

// buildUseDirective lowers a `use_directive` CST node. Three shapes are
// recognized, distinguished by which fields the node carries:
//   - `use a::b::c;`        -> path_segment* + name
//   - `use a::b::{X, Y};`   -> path_segment* + item* (import_item)
//   - `use a::b::*;`        -> path_segment* + glob
func (b *Builder) buildUseDirective(n cst.Node) *ast.UseDirective {
	id := b.nextID()
	loc := b.loc(n)

	var path []string
	for _, seg := range n.ChildrenByFieldName("path_segment") {
		path = append(path, b.text(seg))
	}

	if g := n.ChildByFieldName("glob"); g != nil {
		return ast.NewUseDirective(id, loc, path, nil, true)
	}

	if items := n.ChildrenByFieldName("item"); len(items) > 0 {
		var out []ast.ImportItem
		for _, it := range items {
			name := b.text(it.ChildByFieldName("name"))
			alias := ""
			if a := it.ChildByFieldName("alias"); a != nil {
				alias = b.text(a)
			}
			out = append(out, ast.ImportItem{Name: name, Alias: alias})
		}
		return ast.NewUseDirective(id, loc, path, out, false)
	}

	if name := n.ChildByFieldName("name"); name != nil {
		return ast.NewUseDirective(id, loc, path, []ast.ImportItem{{Name: b.text(name)}}, false)
	}

	b.fail(n, "malformed use directive")
	return nil
}
