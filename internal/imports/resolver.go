// Package imports resolves `use` directives against a set of already
// registered module scopes. It runs after symbol registration (internal/symbols)
// has built every module's own scope, and before type checking begins, so
// the checker sees imported names already present in the importing
// module's scope with their origin visibility re-applied.
package imports

import (
	"strings"

	"github.com/dotandev/infc/internal/ast"
	"github.com/dotandev/infc/internal/diagnostics"
	"github.com/dotandev/infc/internal/symbols"
)

// FileImports is one file's import directives plus the scope they should
// be resolved into (its owning module's scope).
type FileImports struct {
	Module     string
	Scope      *symbols.Scope
	Directives []*ast.UseDirective
}

// Resolver resolves use-directives against a registry of module scopes
// keyed by their full "a::b::c" dotted path.
type Resolver struct {
	modules map[string]*symbols.Scope
}

// NewResolver creates a Resolver over the given module-name -> scope
// registry, populated by the registration phase before imports run.
func NewResolver(modules map[string]*symbols.Scope) *Resolver {
	return &Resolver{modules: modules}
}

func modulePath(path []string) string { return strings.Join(path, "::") }

// ResolveAll resolves every file's directives in the given order. Glob
// imports are resolved only after the full glob dependency graph has been
// checked for cycles; non-glob imports are resolved first regardless of
// file order.
func (r *Resolver) ResolveAll(files []FileImports, diags *diagnostics.Collector) {
	r.resolveNonGlobs(files, diags)

	graph := r.buildGlobGraph(files)
	inCycle := detectCycles(graph)

	for _, f := range files {
		for _, d := range f.Directives {
			if !d.Glob {
				continue
			}
			if inCycle[f.Module] {
				diags.Addf(diagnostics.CircularImport, d.Loc(),
					"circular glob import involving module %q", f.Module)
				continue
			}
			r.resolveGlob(f, d, diags)
		}
	}
}

func (r *Resolver) resolveNonGlobs(files []FileImports, diags *diagnostics.Collector) {
	for _, f := range files {
		for _, d := range f.Directives {
			if d.Glob {
				continue
			}
			r.resolveNamed(f, d, diags)
		}
	}
}

func (r *Resolver) resolveNamed(f FileImports, d *ast.UseDirective, diags *diagnostics.Collector) {
	origin := modulePath(d.Path)
	target, ok := r.modules[origin]
	if !ok {
		diags.Addf(diagnostics.ImportResolutionFailed, d.Loc(),
			"cannot resolve import path %q", fullPath(d.Path, ""))
		return
	}
	for _, item := range d.Items {
		sym, found := target.Local(item.Name)
		if !found {
			diags.Addf(diagnostics.ImportResolutionFailed, d.Loc(),
				"cannot resolve import path %q", fullPath(d.Path, item.Name))
			continue
		}
		localName := item.Name
		if item.Alias != "" {
			localName = item.Alias
		}
		r.reexport(f.Scope, localName, sym, d, diags)
	}
}

func (r *Resolver) resolveGlob(f FileImports, d *ast.UseDirective, diags *diagnostics.Collector) {
	if len(d.Path) == 0 {
		diags.Addf(diagnostics.EmptyGlobImport, d.Loc(), "glob import has an empty path")
		return
	}
	origin := modulePath(d.Path)
	target, ok := r.modules[origin]
	if !ok {
		diags.Addf(diagnostics.ImportResolutionFailed, d.Loc(),
			"cannot resolve import path %q", fullPath(d.Path, "*"))
		return
	}
	for _, sym := range target.All() {
		if sym.Visibility != ast.Public {
			continue
		}
		r.reexport(f.Scope, sym.Name, sym, d, diags)
	}
}

// reexport re-registers sym into scope under localName, reusing the
// origin symbol's metadata and visibility (an implicit re-export). A
// name collision in the importing scope errors RegistrationFailed rather
// than silently shadowing.
func (r *Resolver) reexport(scope *symbols.Scope, localName string, sym *symbols.Symbol, d *ast.UseDirective, diags *diagnostics.Collector) {
	imported := *sym
	imported.Name = localName
	if _, exists := scope.Local(localName); exists || scope.Declare(&imported) != nil {
		diags.Addf(diagnostics.RegistrationFailed, d.Loc(),
			"cannot import %q: a symbol with that name already exists in this scope", localName)
	}
}

func fullPath(path []string, item string) string {
	full := modulePath(path)
	if item == "" {
		return full
	}
	if full == "" {
		return item
	}
	return full + "::" + item
}

// buildGlobGraph builds the dependency graph of glob imports: an edge
// from the importing module to each module path it globs from.
func (r *Resolver) buildGlobGraph(files []FileImports) map[string][]string {
	graph := make(map[string][]string)
	for _, f := range files {
		for _, d := range f.Directives {
			if !d.Glob || len(d.Path) == 0 {
				continue
			}
			target := modulePath(d.Path)
			graph[f.Module] = append(graph[f.Module], target)
		}
	}
	return graph
}

// detectCycles runs a DFS over graph tracking an in-progress set; any
// module visited while still in-progress on some path is part of a cycle
// and is reported in the returned set.
func detectCycles(graph map[string][]string) map[string]bool {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int)
	inCycle := make(map[string]bool)

	var visit func(node string, stack []string) bool
	visit = func(node string, stack []string) bool {
		switch state[node] {
		case visiting:
			// node is already on the current DFS stack: every module from
			// its first occurrence onward participates in the cycle.
			for i, s := range stack {
				if s == node {
					for _, c := range stack[i:] {
						inCycle[c] = true
					}
					break
				}
			}
			return true
		case done:
			return false
		}
		state[node] = visiting
		stack = append(stack, node)
		found := false
		for _, next := range graph[node] {
			if visit(next, stack) {
				found = true
			}
		}
		state[node] = done
		return found
	}

	for node := range graph {
		if state[node] == unvisited {
			visit(node, nil)
		}
	}
	return inCycle
}
