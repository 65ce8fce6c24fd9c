package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitkovskyi/commitgate/internal/core"
	"github.com/vitkovskyi/commitgate/internal/gitutil"
	"github.com/vitkovskyi/commitgate/internal/jobs"
)

var reviewCmd = &cobra.Command{
	Use:   "review <file>...",
	Short: "Review staged changes file by file (pre-commit)",
	Long: `Review each staged file with the remote scorer, falling back to static
analysis when the scorer is unreachable. Trivial and low-complexity files are
skipped. Intended to be called from a pre-commit hook.

Example:
  commitgate review internal/auth/login.go internal/auth/session.go`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.cleanup()

	titleColor.Println("commitgate - pre-commit review")

	paths := gitutil.Eligible(args, a.cfg.Extensions)
	if len(paths) == 0 {
		dimColor.Println("[SKIP] no eligible source files in this commit")
		return nil
	}

	job := jobs.NewReviewJob(a.changes, a.client, a.scorer, a.filter, a.classifier, a.fallback, a.logger)
	result, skipped := job.Run(ctx, paths)

	for _, s := range skipped {
		if s.Reason == jobs.SkipLowComplexity {
			dimColor.Printf("[SKIP] %s (complexity: %d) - %s\n", s.Path, s.Score, s.Reason)
			continue
		}
		dimColor.Printf("[SKIP] %s - %s\n", s.Path, s.Reason)
	}
	for _, v := range result.Verdicts {
		tag := "[NORMAL]"
		if v.Critical {
			tag = "[CRITICAL]"
		}
		if v.Decision == core.DecisionReject {
			errorColor.Printf("[REJECT] %s %s\n", v.Paths[0], tag)
		} else {
			successColor.Printf("[OK] %s %s\n", v.Paths[0], tag)
		}
	}

	if len(result.Verdicts) > 0 {
		fmt.Println()
		summaryTable(os.Stdout, result.Verdicts)
		persistRun(ctx, a, "review", len(paths), result)
	}

	if result.ExitCode != 0 {
		errorColor.Printf("\n[REJECT] %d file(s) rejected by review:\n", len(result.Rejected))
		for _, p := range result.Rejected {
			errorColor.Printf("   - %s\n", p)
		}
		return ErrRejected
	}

	successColor.Printf("\n[PASS] all %d reviewed file(s) accepted\n", len(result.Verdicts))
	return nil
}
