package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Print the compiled output for a source file and reconcile its source map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapIn, _ := cmd.Flags().GetString("map-in")
			mapOut, _ := cmd.Flags().GetString("map-out")

			res, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Path:   args[0],
				MapIn:  mapIn,
				MapOut: mapOut,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Content)
			return err
		},
	}
	cmd.Flags().String("map-in", "", "Source map supplied by the bundler")
	cmd.Flags().String("map-out", "", "Write the reconciled source map to this file")
	return cmd
}
