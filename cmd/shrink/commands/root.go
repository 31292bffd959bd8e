// Package commands implements the CLI commands for shrink.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/adapters/config"
	"go.trai.ch/shrink/internal/app"
	"go.trai.ch/shrink/internal/build"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/shrink/internal/engine/resolver"
)

// DotEnvFile is loaded from the working directory before any command runs.
const DotEnvFile = ".env"

// Application represents the application logic interface.
type Application interface {
	Minify(ctx context.Context, opts app.MinifyOptions) (*domain.BuildContext, error)
	Resolve(ctx context.Context, opts app.ResolveOptions) (resolver.Result, error)
}

// configurableLogger is implemented by the slog logger adapter.
type configurableLogger interface {
	SetDebug(enable bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for shrink.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "shrink",
		Short:         "Minify bundled JavaScript and CSS build output",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("debug", false, "Show debug diagnostics, including compiler output")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newMinifyCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLogs, _ := cmd.Flags().GetBool("json")

	if l, ok := c.logger.(configurableLogger); ok {
		l.SetDebug(debug)
		l.SetJSON(jsonLogs)
	}

	return config.LoadDotEnv(DotEnvFile)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
