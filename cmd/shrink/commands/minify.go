package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/app"
	"go.trai.ch/shrink/internal/ui/style"
)

func (c *CLI) newMinifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minify [root]",
		Short: "Minify the JS and CSS bundles in the build directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootDir := "."
			if len(args) == 1 {
				rootDir = args[0]
			}
			buildDir, _ := cmd.Flags().GetString("build-dir")
			closure, _ := cmd.Flags().GetString("closure")
			downlevel, _ := cmd.Flags().GetBool("downlevel")

			bc, err := c.app.Minify(cmd.Context(), app.MinifyOptions{
				RootDir:       rootDir,
				BuildDir:      buildDir,
				ClosureConfig: closure,
				Downlevel:     downlevel,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", style.Check, bc.JSBundlePath())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", style.Check, bc.CSSBundlePath())
			return nil
		},
	}
	cmd.Flags().StringP("build-dir", "b", "", "Build directory holding the bundles (overrides SHRINK_BUILD_DIR)")
	cmd.Flags().String("closure", "", "Closure Compiler config file (overrides SHRINK_CLOSURE)")
	cmd.Flags().Bool("downlevel", false, "The bundle still needs downlevel transpilation")
	return cmd
}
