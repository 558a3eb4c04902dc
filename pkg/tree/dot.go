package tree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/debtree/pkg/depgraph"
)

// ToDOT converts a dependency graph to Graphviz DOT format.
//
// Nodes appear in visit order, so the output is deterministic for a given
// graph. Packages that couldn't be expanded are drawn with dashed grey
// outlines: names excluded by the traversal filter, and names whose entry is
// the not-found sentinel. The sentinel itself never becomes a node; the
// dashed style on the package carries that information. The root is drawn
// bold.
func ToDOT(root string, g *depgraph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	const (
		placeholderStyle = ` [style="rounded,filled,dashed", fillcolor=lightgrey]`
		rootStyle        = ` [style="rounded,filled,bold"]`
		rootMissingStyle = ` [style="rounded,filled,bold,dashed", fillcolor=lightgrey]`
	)

	notFound := func(name string) bool {
		deps := g.Deps(name)
		return len(deps) == 1 && deps[0] == depgraph.NotFound
	}

	emitted := make(map[string]bool)
	emit := func(name string, attrs string) {
		if emitted[name] {
			return
		}
		emitted[name] = true
		fmt.Fprintf(&buf, "  %q%s;\n", name, attrs)
	}

	if root != "" && !g.Has(root) {
		emit(root, rootMissingStyle)
	}
	for _, name := range g.Names() {
		switch {
		case name == root && notFound(name):
			emit(name, rootMissingStyle)
		case name == root:
			emit(name, rootStyle)
		case notFound(name):
			emit(name, placeholderStyle)
		default:
			emit(name, "")
		}
	}
	for _, name := range g.Names() {
		for _, dep := range g.Deps(name) {
			if dep == depgraph.NotFound {
				continue
			}
			if !g.Has(dep) {
				emit(dep, placeholderStyle)
			}
		}
	}

	buf.WriteString("\n")
	for _, name := range g.Names() {
		for _, dep := range g.Deps(name) {
			if dep == depgraph.NotFound {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the in-process Graphviz engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using the in-process Graphviz engine.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
