package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitkovskyi/commitgate/internal/core"
	"github.com/vitkovskyi/commitgate/internal/gitutil"
	"github.com/vitkovskyi/commitgate/internal/jobs"
)

var (
	batchThreshold int
	batchPriority  string
)

var batchCmd = &cobra.Command{
	Use:   "batch [file...]",
	Short: "Review a large change set in batches (pre-push)",
	Long: `Review the whole change set as combined-diff batches. Without file
arguments the changed files are enumerated from the repository (HEAD~1..HEAD,
falling back to the staged set). Batch mode only applies once the eligible
file count reaches the threshold; below it the push passes without review.

Example:
  commitgate batch --threshold 10 --priority high`,
	RunE: runBatch,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	batchCmd.Flags().IntVar(&batchThreshold, "threshold", 0, "minimum file count to trigger batch review (0 = configured default)")
	batchCmd.Flags().StringVar(&batchPriority, "priority", "normal", "review priority: low, normal or high")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.cleanup()

	threshold := batchThreshold
	if threshold <= 0 {
		threshold = a.cfg.BatchThreshold
	}

	paths := args
	if len(paths) == 0 {
		paths, err = a.changes.ChangedFiles(ctx)
		if err != nil {
			return err
		}
	}
	paths = gitutil.Eligible(paths, a.cfg.Extensions)

	job := jobs.NewBatchJob(a.changes, a.client, a.fallback, a.logger)
	changes, skipped := job.Collect(ctx, paths)
	for _, s := range skipped {
		dimColor.Printf("[SKIP] %s - %s\n", s.Path, s.Reason)
	}

	result, planned := job.Run(ctx, changes, threshold, a.cfg.BatchSize, batchPriority)
	if !planned {
		dimColor.Printf("[SKIP] only %d eligible file(s) changed (threshold: %d)\n", len(changes), threshold)
		return nil
	}

	titleColor.Printf("commitgate - batch review of %d file(s) (priority: %s)\n", len(changes), batchPriority)

	for i, v := range result.Verdicts {
		if v.Decision == core.DecisionReject {
			errorColor.Printf("[REJECT] batch %d (%d file(s))\n", i+1, len(v.Paths))
		} else {
			successColor.Printf("[APPROVE] batch %d (%d file(s))\n", i+1, len(v.Paths))
		}
	}

	fmt.Println()
	summaryTable(os.Stdout, result.Verdicts)
	persistRun(ctx, a, "batch", len(changes), result)

	if result.ExitCode != 0 {
		errorColor.Printf("\n[REJECT] %d file(s) rejected by batch review:\n", len(result.Rejected))
		for _, p := range result.Rejected {
			errorColor.Printf("   - %s\n", p)
		}
		return ErrRejected
	}

	successColor.Printf("\n[PASS] all %d file(s) passed batch review\n", len(changes))
	return nil
}
