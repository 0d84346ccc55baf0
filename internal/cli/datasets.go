package cli

import (
	"github.com/spf13/cobra"

	"github.com/JCGoran/data-morph/pkg/dataset"
)

// datasetsCommand creates the datasets command listing built-in start shapes.
func (c *CLI) datasetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the built-in start shapes",
		Long:  "List the built-in start shapes. Any CSV file of x,y points can be used instead by passing its path to 'morph'.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo("Built-in datasets:")
			for _, name := range dataset.Builtins() {
				printDetail("%s", name)
			}
		},
	}
}
