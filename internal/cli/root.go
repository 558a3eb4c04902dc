package cli

import (
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/debtree/internal/config"
	"github.com/matzehuels/debtree/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = charmlog.DebugLevel
	LogInfo  = charmlog.InfoLevel
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "debtree",
		Short:        "Debtree visualizes Debian package dependency trees",
		Long:         `Debtree reads a Debian-style package index ("Packages" control file) from a local file or a remote repository and prints the dependency tree of a package, handling missing packages and dependency cycles gracefully.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}

			path, err := config.Path()
			if err == nil {
				cfg, err := config.Load(path)
				if err != nil {
					return err
				}
				c.Config = cfg
			}

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
