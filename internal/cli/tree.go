package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/debtree/pkg/control"
	"github.com/matzehuels/debtree/pkg/depgraph"
	"github.com/matzehuels/debtree/pkg/errors"
	"github.com/matzehuels/debtree/pkg/index"
	"github.com/matzehuels/debtree/pkg/tree"
)

// treeOpts holds the command-line flags shared by tree and graph.
type treeOpts struct {
	repo    string // repository URL or local index file
	filter  string // substring filter applied during traversal
	refresh bool   // bypass the index cache
	noCache bool   // disable caching entirely
}

// applyConfig fills unset flags from the loaded config file.
func (o *treeOpts) applyConfig(c *CLI) {
	if o.repo == "" {
		o.repo = c.Config.Repo
	}
	if o.filter == "" {
		o.filter = c.Config.Filter
	}
}

func (o *treeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.repo, "repo", "r", "", "repository URL or local Packages file (config default if empty)")
	cmd.Flags().StringVarP(&o.filter, "filter", "f", "", "skip expanding packages whose name contains this substring")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "bypass the index cache")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable caching")
}

// treeCommand creates the tree command, the main entry point.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{}

	cmd := &cobra.Command{
		Use:   "tree <package>",
		Short: "Print the dependency tree for a package",
		Long: `Print the dependency tree reachable from a package as an indented tree.

The package index is read from --repo, which accepts either a repository URL
(the "Packages" index file is appended automatically) or a path to a local
index file. Remote indexes are cached locally.

Missing packages render as "(package not found)" and dependency cycles are
truncated with a "(cyclic dependency)" marker; shared dependencies appear
once under every branch that requires them.

Examples:
  debtree tree curl --repo http://deb.debian.org/debian/dists/stable/main/binary-amd64
  debtree tree bash --repo ./testdata/Packages --filter libc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfig(c)
			g, err := c.buildGraph(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return tree.Render(os.Stdout, args[0], g)
		},
	}

	opts.register(cmd)
	return cmd
}

// buildGraph runs the shared fetch → parse → build pipeline.
func (c *CLI) buildGraph(ctx context.Context, pkg string, opts treeOpts) (*depgraph.Graph, error) {
	repo, err := c.loadRepository(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := errors.ValidatePackageName(pkg); err != nil {
		return nil, err
	}
	return depgraph.Build(pkg, repo, opts.filter), nil
}

// loadRepository fetches and parses the package index selected by opts.
func (c *CLI) loadRepository(ctx context.Context, opts treeOpts) (*control.Repository, error) {
	logger := loggerFromContext(ctx)

	store := c.newCache(ctx, opts.noCache)
	defer store.Close()

	src, err := index.Detect(opts.repo, store, c.cacheTTL())
	if err != nil {
		return nil, err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching index from %s...", src.Name()))
	spinner.Start()

	prog := newProgress(logger)
	text, err := src.Fetch(ctx, opts.refresh)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
		} else {
			spinner.StopWithError(fmt.Sprintf("Failed to fetch index from %s", src.Name()))
		}
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	spinner.Stop()

	repo := control.ParseRepository(text)
	prog.done(fmt.Sprintf("Parsed %d packages from %s", repo.Len(), src.Name()))

	return repo, nil
}
