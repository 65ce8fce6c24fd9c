// Package jobs orchestrates the review pipeline: gating, dispatching units to
// the remote scorer with static fallback, and aggregating verdicts into a
// single pass/fail outcome.
package jobs

import (
	"context"

	"github.com/vitkovskyi/commitgate/internal/core"
)

// ChangeSource supplies changed paths, their diffs, and current file content.
type ChangeSource interface {
	StagedDiff(ctx context.Context, path string) (core.FileChange, error)
	ChangedFiles(ctx context.Context) ([]string, error)
	FileContent(path string) (string, error)
}

// Reviewer dispatches review units to the remote scorer.
type Reviewer interface {
	ReviewFile(ctx context.Context, change core.FileChange, critical bool) (core.Verdict, error)
	ReviewBatch(ctx context.Context, changes []core.FileChange, priority string) (core.Verdict, error)
}

// SkipReason explains why a file produced no verdict.
type SkipReason string

const (
	SkipTrivial       SkipReason = "trivial change"
	SkipLowComplexity SkipReason = "below complexity threshold"
	SkipReadFailure   SkipReason = "unreadable diff"
	SkipEmpty         SkipReason = "no staged changes"
)

// Skipped records one file excluded from review. Score is only meaningful
// for SkipLowComplexity.
type Skipped struct {
	Path   string
	Reason SkipReason
	Score  int
}
