package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridtable/pkg/table"
)

// newStylesCmd creates the styles command, which previews every built-in
// border style on a small sample table.
func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Preview the built-in border styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range table.StyleNames() {
				style, _ := table.StyleByName(name)
				sample := table.New().
					SetStyle(style).
					SetHeader("style", "sample").
					AppendRow(name, "a").
					AppendRow("", "b")
				fmt.Fprintf(out, "%s:\n%s\n\n", name, sample.String())
			}
			return nil
		},
	}
}
