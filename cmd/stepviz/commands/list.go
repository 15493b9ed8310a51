package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/registry"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Algorithm", "Kind", "Input", "Description"})
			for _, e := range registry.All() {
				tbl.AppendRow(table.Row{e.ID, e.Kind, e.Input, e.Description})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			return err
		},
	}
}
