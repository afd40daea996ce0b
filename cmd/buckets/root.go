package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/buckets/config"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	flags *GlobalFlags
	cfg   *config.Config
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// newRootCmd builds the command tree writing to out and errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{flags: &GlobalFlags{}}

	rootCmd := &cobra.Command{
		Use:   "buckets",
		Short: "Solve the 4/3 water-jug puzzle with BFS, DFS and IDS",
		Long: `buckets searches the state space of two buckets holding 4 and 3 units,
starting from a configurable state, for a state whose first bucket holds
the objective level (2 by default).

Without a subcommand it runs all three strategies and prints one line
per strategy, exactly like the solve subcommand.`,
		PersistentPreRunE: a.loadConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              a.runSolve,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	RegisterGlobalFlags(rootCmd, a.flags)

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// loadConfig is called before any command runs: it loads the config file,
// applies flag overrides, validates the result, and installs the logger.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	validator := config.NewValidator()
	cfg, err := config.NewConfigLoader(validator).Decode(a.flags.ConfigFile)
	if err != nil {
		return err
	}

	// flags sit above file and environment, so validate only once they are in
	a.flags.Apply(cmd, cfg)
	if err = validator.Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	a.cfg = cfg

	return SetupLogging(cmd.ErrOrStderr(), cfg.Logging)
}
