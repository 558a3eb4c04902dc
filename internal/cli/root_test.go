package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.ErrorLevel)
	root := c.RootCommand()

	if root.Use != "debtree" {
		t.Errorf("Use = %q, want debtree", root.Use)
	}

	want := map[string]bool{
		"tree":       false,
		"graph":      false,
		"browse":     false,
		"cache":      false,
		"completion": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("persistent flag --verbose not registered")
	}
}

func TestCacheSubcommands(t *testing.T) {
	c := New(io.Discard, log.ErrorLevel)
	cmd := c.cacheCommand()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	if !names["clear"] || !names["path"] {
		t.Errorf("cache subcommands = %v, want clear and path", names)
	}
}
