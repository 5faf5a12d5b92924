// Package cli provides the sunicon command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-flat-icons/internal/config"
	"go-flat-icons/internal/logging"
	"go-flat-icons/internal/provider"
)

// Version is set by the main package at startup.
var Version = "v0.1.0-dev"

type app struct {
	env      config.Env
	logger   *logging.Logger
	provider *provider.Provider
	verbose  bool
}

// NewRootCmd builds the command tree. env supplies flag defaults.
func NewRootCmd(env config.Env, logger *logging.Logger) *cobra.Command {
	a := &app{env: env, logger: logger, provider: provider.Default()}

	rootCmd := &cobra.Command{
		Use:           "sunicon",
		Short:         "Render the flat weather icons",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := a.env.LogLevel
			if a.verbose {
				level = "debug"
			}
			return a.logger.SetLevel(level)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output (debug log level)")

	rootCmd.AddCommand(
		newRenderCmd(a),
		newGeometryCmd(),
		newTraceCmd(a),
		newListCmd(a),
	)
	return rootCmd
}

// Execute runs the root command with the process environment.
func Execute() error {
	logger := logging.NewDefault()
	env, err := config.LoadEnv()
	if err != nil {
		logger.Error().Err(err).Msg("load config")
		return err
	}
	if err := NewRootCmd(env, logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List icon names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range a.provider.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
