package tree

import (
	"strings"
	"testing"

	"github.com/matzehuels/debtree/pkg/control"
	"github.com/matzehuels/debtree/pkg/depgraph"
)

// build is a small helper: parse adjacency pairs into a repository and build
// the graph from root.
func build(root, filter string, pairs ...any) *depgraph.Graph {
	var records []control.Record
	for i := 0; i < len(pairs); i += 2 {
		records = append(records, control.Record{
			Name:    pairs[i].(string),
			Depends: pairs[i+1].([]string),
		})
	}
	return depgraph.Build(root, control.NewRepository(records), filter)
}

func TestRender_Diamond(t *testing.T) {
	g := build("A", "",
		"A", []string{"B", "C"},
		"B", []string{"D"},
		"C", []string{"D"},
		"D", []string{},
	)

	got := String("A", g)
	want := strings.Join([]string{
		"A",
		"└── B",
		"    └── D",
		"└── C",
		"    └── D",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, CycleMarker) {
		t.Error("diamond flagged as cycle")
	}
}

func TestRender_Cycle(t *testing.T) {
	g := build("A", "", "A", []string{"B"}, "B", []string{"A"})

	got := String("A", g)
	want := strings.Join([]string{
		"A",
		"└── B",
		"    └── A",
		"        └── " + CycleMarker,
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_SelfCycle(t *testing.T) {
	g := build("A", "", "A", []string{"A"})

	got := String("A", g)
	want := "A\n└── A\n    └── " + CycleMarker + "\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_MissingPackage(t *testing.T) {
	g := build("A", "", "A", []string{"Z"})

	got := String("A", g)
	want := "A\n└── Z\n    └── " + depgraph.NotFound + "\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_FilteredBranch(t *testing.T) {
	g := build("A", "B",
		"A", []string{"B", "C"},
		"B", []string{"D"},
		"C", []string{},
		"D", []string{},
	)

	got := String("A", g)
	// B is displayed but never expanded; only C's branch descends.
	want := strings.Join([]string{
		"A",
		"└── B",
		"└── C",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_FilteredRoot(t *testing.T) {
	g := build("app", "app", "app", []string{"lib"}, "lib", []string{})

	got := String("app", g)
	if got != "app\n" {
		t.Errorf("got %q, want bare root line", got)
	}
}

func TestRender_CycleBelowDiamond(t *testing.T) {
	// D is a diamond (via B and C) and also cycles back to A.
	g := build("A", "",
		"A", []string{"B", "C"},
		"B", []string{"D"},
		"C", []string{"D"},
		"D", []string{"A"},
	)

	got := String("A", g)
	want := strings.Join([]string{
		"A",
		"└── B",
		"    └── D",
		"        └── A",
		"            └── " + CycleMarker,
		"└── C",
		"    └── D",
		"        └── A",
		"            └── " + CycleMarker,
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_DepthPrefix(t *testing.T) {
	g := build("A", "",
		"A", []string{"B"},
		"B", []string{"C"},
		"C", []string{"D"},
		"D", []string{},
	)

	got := String("A", g)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	want := []string{
		"A",
		"└── B",
		"    └── C",
		"        └── D",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
