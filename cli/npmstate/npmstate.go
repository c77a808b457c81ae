package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/statekit/npmstate/internal/cli"
	"github.com/statekit/npmstate/internal/logger"
)

var (
	verbose      bool
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npmstate",
		Short: "Declarative state reconciliation for npm packages",
		Long: `npmstate reconciles declared npm package state against what is
actually installed:
- Library: installed/removed/bootstrap reconciliation over an injected manager
- CLI: plan and validate declaration files offline`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logger.InitLogger("debug")
			} else {
				logger.InitLogger("info")
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (json, table)")

	// Set up CLI pkg variables
	cli.OutputFormat = &outputFormat

	// Add subcommands
	cmd.AddCommand(
		cli.NewPlanCmd(),
		cli.NewValidateCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
