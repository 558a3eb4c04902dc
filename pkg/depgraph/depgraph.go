// Package depgraph builds the dependency graph reachable from a root package.
//
// Build performs a breadth-first traversal over a parsed repository, producing
// an adjacency mapping from each visited package to its displayed dependency
// list. The traversal is cycle-safe (a visited set bounds it to O(V+E)) and
// supports a substring filter that gates which nodes are expanded.
//
// The filter semantics are deliberately one-sided: a filtered name is still
// displayed wherever a parent lists it, but it is never expanded, so it has
// no entry of its own. A filtered root therefore yields an empty graph.
package depgraph

import (
	"strings"

	"github.com/matzehuels/debtree/pkg/control"
)

// NotFound is the sentinel dependency list entry recorded for a package
// referenced but absent from the repository.
const NotFound = "(package not found)"

// Graph is an adjacency mapping from visited package names to their displayed
// dependency lists. Keys are kept in visit order so that iteration, and any
// output derived from it, is deterministic.
type Graph struct {
	order []string
	deps  map[string][]string
}

// Names returns the visited package names in visit order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Deps returns the displayed dependency list for name, or nil when name was
// never expanded (filtered out, or only ever displayed as someone's child).
func (g *Graph) Deps(name string) []string { return g.deps[name] }

// Has reports whether name was visited and expanded.
func (g *Graph) Has(name string) bool {
	_, ok := g.deps[name]
	return ok
}

// Len returns the number of expanded packages.
func (g *Graph) Len() int { return len(g.deps) }

func (g *Graph) add(name string, deps []string) {
	if _, exists := g.deps[name]; !exists {
		g.order = append(g.order, name)
	}
	g.deps[name] = deps
}

// Build traverses the repository breadth-first from root and returns the
// reachable dependency graph. An empty filter disables filtering.
//
// A visited name containing the filter substring is skipped entirely: no
// graph entry, no expansion. A name absent from the repository maps to the
// [NotFound] sentinel list and is not expanded further. A present name maps
// to its full dependency list verbatim; the filter controls traversal only,
// never what is displayed for a node that passes it.
func Build(root string, repo *control.Repository, filter string) *Graph {
	g := &Graph{deps: make(map[string][]string)}

	visited := map[string]bool{root: true}
	queue := []string{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if filter != "" && strings.Contains(current, filter) {
			continue
		}

		rec, ok := repo.Lookup(current)
		if !ok {
			g.add(current, []string{NotFound})
			continue
		}

		g.add(current, rec.Depends)

		for _, dep := range rec.Depends {
			if filter != "" && strings.Contains(dep, filter) {
				continue
			}
			if !visited[dep] {
				visited[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	return g
}
