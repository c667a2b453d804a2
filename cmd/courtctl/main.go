package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "courtctl",
	Short: "Operator tooling for the courtside service",
	Long: `Runs the maintenance tasks of courtside against the configured database:
schema migrations, one-off reaper sweeps and outbox drains, and token minting.
Configuration is read from the same environment variables as the server.`,
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "courtctl: %v\n", err)
		os.Exit(1)
	}
}
