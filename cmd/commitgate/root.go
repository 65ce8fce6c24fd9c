package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ErrRejected signals that at least one reviewed unit was rejected; main
// maps it to exit code 1 without an extra error message.
var ErrRejected = errors.New("review rejected")

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "commitgate",
	Short: "commitgate gates commits and pushes behind an AI code review",
	Long: `commitgate is consumed by git hooks. It reviews staged changes with a
remote scoring service and falls back to deterministic static analysis when
that service is unavailable. Exit code 0 means all reviewed units were
accepted, 1 means at least one rejection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrRejected) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .commitgate.yaml)")
}
