package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/osa911/portfolio/internal/setup"
)

var rootCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the local development environment",
	Long: `Checks that Node.js, Python and Docker are installed, creates the data
directories and .env.local, and installs the dependencies of every app.

Run it from the repository root.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := os.Getwd()
		if err != nil {
			return err
		}
		return setup.NewRunner(root, setup.WithOutput(cmd.OutOrStdout())).Run(cmd.Context())
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return
	case ctx.Err() != nil:
		color.Yellow.Println("\n\n⚠️  Setup interrupted by user")
	case errors.Is(err, setup.ErrMissingPrerequisites):
		// already reported
	default:
		color.Red.Printf("\n❌ An error occurred: %v\n", err)
	}
	stop()
	os.Exit(1)
}
