package jobs

import (
	"context"
	"log/slog"

	"github.com/vitkovskyi/commitgate/internal/analysis"
	"github.com/vitkovskyi/commitgate/internal/core"
)

// BatchJob runs the combined-diff review pipeline used by pre-push hooks.
type BatchJob struct {
	source   ChangeSource
	reviewer Reviewer
	fallback *analysis.Analyzer
	logger   *slog.Logger
}

// NewBatchJob wires the batch pipeline.
func NewBatchJob(source ChangeSource, reviewer Reviewer, fallback *analysis.Analyzer, logger *slog.Logger) *BatchJob {
	return &BatchJob{
		source:   source,
		reviewer: reviewer,
		fallback: fallback,
		logger:   logger,
	}
}

// Run partitions changes into batches and reviews them sequentially. It
// returns planned=false when the file count is below threshold and batch
// mode does not apply; the caller treats that as a pass.
func (j *BatchJob) Run(ctx context.Context, changes []core.FileChange, threshold, batchSize int, priority string) (result core.AggregateResult, planned bool) {
	groups := Plan(changes, threshold, batchSize)
	if groups == nil {
		return core.AggregateResult{}, false
	}

	var verdicts []core.Verdict
	for i, group := range groups {
		verdict, err := j.reviewer.ReviewBatch(ctx, group, priority)
		if err != nil {
			// Transport failure degrades to one static verdict per member
			// file so every FileChange still yields exactly one verdict.
			j.logger.Warn("remote batch review failed, using static fallback", "batch", i+1, "error", err)
			for _, change := range group {
				verdicts = append(verdicts, j.fallback.Analyze(change.Path, change.Diff))
			}
			continue
		}
		verdicts = append(verdicts, verdict)
	}

	return Aggregate(verdicts), true
}

// Collect resolves paths into FileChanges, skipping unreadable or empty
// diffs with a logged warning.
func (j *BatchJob) Collect(ctx context.Context, paths []string) ([]core.FileChange, []Skipped) {
	var changes []core.FileChange
	var skipped []Skipped

	for _, path := range paths {
		change, err := j.source.StagedDiff(ctx, path)
		if err != nil {
			j.logger.Warn("skipping unreadable file", "path", path, "error", err)
			skipped = append(skipped, Skipped{Path: path, Reason: SkipReadFailure})
			continue
		}
		if change.Diff == "" {
			skipped = append(skipped, Skipped{Path: path, Reason: SkipEmpty})
			continue
		}
		changes = append(changes, change)
	}
	return changes, skipped
}
