package cli

import (
	"github.com/spf13/cobra"

	"github.com/JCGoran/data-morph/pkg/shapes"
)

// shapesCommand creates the shapes command listing the target catalog.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the available target shapes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo("Target shapes:")
			for _, name := range shapes.Default().Names() {
				printDetail("%s", name)
			}
		},
	}
}
