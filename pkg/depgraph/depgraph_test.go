package depgraph

import (
	"reflect"
	"testing"

	"github.com/matzehuels/debtree/pkg/control"
)

// repo builds a Repository from a name -> deps adjacency, preserving the
// given insertion order.
func repo(pairs ...any) *control.Repository {
	var records []control.Record
	for i := 0; i < len(pairs); i += 2 {
		records = append(records, control.Record{
			Name:    pairs[i].(string),
			Depends: pairs[i+1].([]string),
		})
	}
	return control.NewRepository(records)
}

func TestBuild_Chain(t *testing.T) {
	r := repo("A", []string{"B"}, "B", []string{"C"}, "C", []string{})

	g := Build("A", r, "")

	if got := g.Names(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("Names = %v, want [A B C]", got)
	}
	if got := g.Deps("A"); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Deps(A) = %v, want [B]", got)
	}
}

func TestBuild_Diamond(t *testing.T) {
	r := repo("A", []string{"B", "C"}, "B", []string{"D"}, "C", []string{"D"}, "D", []string{})

	g := Build("A", r, "")

	// D is expanded exactly once even though both B and C depend on it.
	if g.Len() != 4 {
		t.Errorf("Len = %d, want 4", g.Len())
	}
	if got := g.Deps("B"); !reflect.DeepEqual(got, []string{"D"}) {
		t.Errorf("Deps(B) = %v, want [D]", got)
	}
	if got := g.Deps("C"); !reflect.DeepEqual(got, []string{"D"}) {
		t.Errorf("Deps(C) = %v, want [D]", got)
	}
}

func TestBuild_Cycle(t *testing.T) {
	r := repo("A", []string{"B"}, "B", []string{"A"})

	g := Build("A", r, "")

	// The visited set terminates the traversal; both nodes are expanded once.
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
	if got := g.Deps("B"); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Deps(B) = %v, want [A]", got)
	}
}

func TestBuild_MissingPackage(t *testing.T) {
	r := repo("A", []string{"Z"})

	g := Build("A", r, "")

	if got := g.Deps("Z"); !reflect.DeepEqual(got, []string{NotFound}) {
		t.Errorf("Deps(Z) = %v, want [%s]", got, NotFound)
	}
}

func TestBuild_MissingRoot(t *testing.T) {
	g := Build("ghost", repo("A", []string{}), "")

	if g.Len() != 1 {
		t.Fatalf("Len = %d, want 1", g.Len())
	}
	if got := g.Deps("ghost"); !reflect.DeepEqual(got, []string{NotFound}) {
		t.Errorf("Deps(ghost) = %v, want [%s]", got, NotFound)
	}
}

func TestBuild_Filter(t *testing.T) {
	r := repo("A", []string{"B", "C"}, "B", []string{"D"}, "C", []string{}, "D", []string{})

	g := Build("A", r, "B")

	// A's displayed list keeps B verbatim, but B is never expanded, so
	// neither B nor its subtree gets a graph entry.
	if got := g.Deps("A"); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Errorf("Deps(A) = %v, want [B C]", got)
	}
	if g.Has("B") {
		t.Error("B has a graph entry, want filtered out")
	}
	if g.Has("D") {
		t.Error("D has a graph entry, want unreached (only reachable via B)")
	}
	if !g.Has("C") {
		t.Error("C missing from graph")
	}
}

func TestBuild_FilteredRoot(t *testing.T) {
	r := repo("app", []string{"lib"}, "lib", []string{})

	g := Build("app", r, "app")

	if g.Len() != 0 {
		t.Errorf("Len = %d, want 0 (filtered root produces no entries)", g.Len())
	}
}

func TestBuild_Idempotent(t *testing.T) {
	r := repo("A", []string{"B", "C"}, "B", []string{"C"}, "C", []string{"A"})

	first := Build("A", r, "")
	second := Build("A", r, "")

	if !reflect.DeepEqual(first.Names(), second.Names()) {
		t.Errorf("visit order differs: %v vs %v", first.Names(), second.Names())
	}
	for _, name := range first.Names() {
		if !reflect.DeepEqual(first.Deps(name), second.Deps(name)) {
			t.Errorf("Deps(%s) differs: %v vs %v", name, first.Deps(name), second.Deps(name))
		}
	}
}

func TestBuild_UnreachableNeverVisited(t *testing.T) {
	r := repo("A", []string{"B"}, "B", []string{}, "island", []string{"A"})

	g := Build("A", r, "")

	if g.Has("island") {
		t.Error("island has a graph entry, want unreached")
	}
}
