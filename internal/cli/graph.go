package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/debtree/pkg/errors"
	"github.com/matzehuels/debtree/pkg/tree"
)

// Output formats for the graph command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// graphCommand creates the graph export command.
func (c *CLI) graphCommand() *cobra.Command {
	opts := treeOpts{}
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph <package>",
		Short: "Export the dependency graph as DOT, SVG, or PNG",
		Long: `Export the dependency graph reachable from a package as a Graphviz
node-link diagram.

DOT output goes to stdout unless --output is given. SVG and PNG are rendered
in-process with Graphviz and require an output path.

Examples:
  debtree graph curl --repo ./Packages > curl.dot
  debtree graph curl --repo ./Packages --format svg --output curl.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfig(c)
			g, err := c.buildGraph(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			dot := tree.ToDOT(args[0], g)

			var data []byte
			switch format {
			case formatDOT:
				data = []byte(dot)
			case formatSVG:
				data, err = tree.RenderSVG(cmd.Context(), dot)
			case formatPNG:
				data, err = tree.RenderPNG(cmd.Context(), dot)
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot, svg, or png)", format)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			if output == "" {
				if format != formatDOT {
					return errors.New(errors.ErrCodeInvalidInput, "%s output requires --output", format)
				}
				fmt.Print(dot)
				return nil
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Exported %s graph", format)
			printFile(output)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&format, "format", formatDOT, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout for dot if empty)")

	return cmd
}
