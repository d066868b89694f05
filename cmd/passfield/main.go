package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/benaskins/passfield/pass"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "passfield",
	Short:             "Read passwords and fields from password-store entries",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	verbose    bool
	logJSON    bool
	noNewline  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.passfield/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&noNewline, "no-newline", "n", false, "Never print a trailing newline after a value")
}

// exitCode distinguishes missing entries and fields for scripts.
func exitCode(err error) int {
	switch {
	case errors.Is(err, pass.ErrEntryNotFound):
		return 2
	case errors.Is(err, pass.ErrFieldNotFound):
		return 3
	default:
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	closeAudit()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
