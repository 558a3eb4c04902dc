// Package tree renders dependency graphs as indented ASCII trees and as
// Graphviz node-link diagrams.
package tree

import (
	"io"
	"strings"

	"github.com/matzehuels/debtree/pkg/depgraph"
)

// CycleMarker is printed as the sole child of a node that reappears among
// its own ancestors on the current root-to-node path.
const CycleMarker = "(cyclic dependency)"

const (
	indentUnit = "    "
	connector  = "└── "
)

// Render writes the dependency tree rooted at root to w in depth-first
// pre-order, one node per line.
//
// A node may legitimately print once per branch when it is reachable via two
// sibling paths (a diamond). Only a repetition along a single root-to-node
// path is a true cycle; it prints the [CycleMarker] and stops descending.
// Ancestor tracking is a push-on-entry, pop-on-exit set shared across the
// walk, so membership is always scoped to the current path.
//
// Nodes without a graph entry (filtered during traversal, or sentinel values)
// render with no children.
func Render(w io.Writer, root string, g *depgraph.Graph) error {
	r := &renderer{w: w, graph: g, ancestors: make(map[string]bool)}
	r.emit(root, 0)
	return r.err
}

// String renders the tree into a string. Convenience for tests and the
// interactive browser.
func String(root string, g *depgraph.Graph) string {
	var sb strings.Builder
	_ = Render(&sb, root, g)
	return sb.String()
}

type renderer struct {
	w         io.Writer
	graph     *depgraph.Graph
	ancestors map[string]bool // names on the current root-to-node path
	err       error
}

func (r *renderer) emit(name string, depth int) {
	r.line(depth, name)

	if r.ancestors[name] {
		r.line(depth+1, CycleMarker)
		return
	}

	r.ancestors[name] = true
	for _, dep := range r.graph.Deps(name) {
		r.emit(dep, depth+1)
	}
	delete(r.ancestors, name)
}

// line prints text at the given depth: units 0..depth-2 are plain indents,
// the final unit is the connector glyph, depth 0 has no prefix.
func (r *renderer) line(depth int, text string) {
	if r.err != nil {
		return
	}
	var sb strings.Builder
	for i := 0; i < depth-1; i++ {
		sb.WriteString(indentUnit)
	}
	if depth > 0 {
		sb.WriteString(connector)
	}
	sb.WriteString(text)
	sb.WriteByte('\n')
	_, r.err = io.WriteString(r.w, sb.String())
}
