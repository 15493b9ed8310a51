// Package commands implements the stepviz CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
)

// NewRootCommand assembles the stepviz command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "stepviz",
		Short: "Step-by-step terminal animations of classic algorithms",
		Long: `stepviz animates searching, sorting, traversal and shortest-path
algorithms one step at a time in the terminal.

Commands:
  run      Animate one algorithm
  list     Show available algorithms
  version  Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (default: ./.stepviz.yaml or $HOME/.stepviz.yaml)")

	root.AddCommand(NewRunCommand())
	root.AddCommand(newListCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stepviz %s (commit: %s)\n", Version, Commit)
		},
	}
}
