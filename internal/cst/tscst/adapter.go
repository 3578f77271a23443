// Package tscst adapts github.com/smacker/go-tree-sitter nodes to the
// cst.Node interface, so a real tree-sitter grammar for the source
// language can be plugged in upstream of this module without the AST
// builder knowing anything about tree-sitter itself.
package tscst

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dotandev/infc/internal/cst"
)

// Parse runs lang's grammar over source and returns the wrapped root node.
// The core itself consumes a CST node interface only and ships no grammar
// of its own (see spec's explicit parser non-goal) -- lang is supplied by
// whatever embeds this module with a generated tree-sitter grammar for
// the source language.
func Parse(ctx context.Context, lang *sitter.Language, source []byte) (*Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}
	return Wrap(tree.RootNode()), nil
}

// Node wraps a *sitter.Node so it satisfies cst.Node.
type Node struct {
	n *sitter.Node
}

// Wrap adapts a tree-sitter node. Returns nil if n is nil, so callers can
// write `tscst.Wrap(n.ChildByFieldName("x"))` without a separate nil check.
func Wrap(n *sitter.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{n: n}
}

func (w *Node) Kind() string { return w.n.Type() }

func (w *Node) ChildCount() int { return int(w.n.ChildCount()) }

func (w *Node) Child(i int) cst.Node {
	c := w.n.Child(i)
	if c == nil {
		return nil
	}
	return Wrap(c)
}

func (w *Node) NamedChildCount() int { return int(w.n.NamedChildCount()) }

func (w *Node) NamedChild(i int) cst.Node {
	c := w.n.NamedChild(i)
	if c == nil {
		return nil
	}
	return Wrap(c)
}

func (w *Node) ChildByFieldName(name string) cst.Node {
	c := w.n.ChildByFieldName(name)
	if c == nil {
		return nil
	}
	return Wrap(c)
}

func (w *Node) ChildrenByFieldName(name string) []cst.Node {
	var out []cst.Node
	for i := 0; i < int(w.n.ChildCount()); i++ {
		c := w.n.Child(i)
		if c == nil {
			continue
		}
		// go-tree-sitter has no direct "children by field name" iterator;
		// FieldNameForChild gives the field for a given positional child.
		if w.n.FieldNameForChild(i) == name {
			out = append(out, Wrap(c))
		}
	}
	return out
}

func (w *Node) StartByte() uint32 { return w.n.StartByte() }
func (w *Node) EndByte() uint32   { return w.n.EndByte() }

func (w *Node) StartPosition() cst.Point {
	p := w.n.StartPoint()
	return cst.Point{Row: p.Row + 1, Column: p.Column + 1}
}

func (w *Node) EndPosition() cst.Point {
	p := w.n.EndPoint()
	return cst.Point{Row: p.Row + 1, Column: p.Column + 1}
}

func (w *Node) IsError() bool { return w.n.IsError() || w.n.IsMissing() }

func (w *Node) UTF8Text(source []byte) string {
	return string(source[w.n.StartByte():w.n.EndByte()])
}
