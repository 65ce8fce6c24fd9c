package jobs

import (
	"context"
	"log/slog"

	"github.com/vitkovskyi/commitgate/internal/analysis"
	"github.com/vitkovskyi/commitgate/internal/core"
)

// ReviewJob runs the per-file review pipeline over a set of staged paths.
// Files are processed strictly in input order; a failure in one unit never
// blocks the remaining ones.
type ReviewJob struct {
	source     ChangeSource
	reviewer   Reviewer
	scorer     *analysis.Scorer
	filter     *analysis.TrivialFilter
	classifier *analysis.Classifier
	fallback   *analysis.Analyzer
	logger     *slog.Logger
}

// NewReviewJob wires the per-file pipeline.
func NewReviewJob(
	source ChangeSource,
	reviewer Reviewer,
	scorer *analysis.Scorer,
	filter *analysis.TrivialFilter,
	classifier *analysis.Classifier,
	fallback *analysis.Analyzer,
	logger *slog.Logger,
) *ReviewJob {
	return &ReviewJob{
		source:     source,
		reviewer:   reviewer,
		scorer:     scorer,
		filter:     filter,
		classifier: classifier,
		fallback:   fallback,
		logger:     logger,
	}
}

// Run reviews each path and aggregates the verdicts. Skipped files carry the
// reason they produced no verdict.
func (j *ReviewJob) Run(ctx context.Context, paths []string) (core.AggregateResult, []Skipped) {
	var verdicts []core.Verdict
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
		if j.filter.ShouldSkip(change.Diff) {
			skipped = append(skipped, Skipped{Path: path, Reason: SkipTrivial})
			continue
		}

		// The complexity gate scores current file content; when the file
		// cannot be read the diff itself is the closest approximation.
		content, err := j.source.FileContent(path)
		if err != nil {
			content = change.Diff
		}
		if score := j.scorer.Score(content); score < j.scorer.Threshold() {
			skipped = append(skipped, Skipped{Path: path, Reason: SkipLowComplexity, Score: score})
			continue
		}

		verdicts = append(verdicts, j.reviewUnit(ctx, change))
	}

	return Aggregate(verdicts), skipped
}

// reviewUnit dispatches one file to the remote scorer and substitutes the
// static fallback on transport failure.
func (j *ReviewJob) reviewUnit(ctx context.Context, change core.FileChange) core.Verdict {
	critical := j.classifier.IsCritical(change.Diff)

	verdict, err := j.reviewer.ReviewFile(ctx, change, critical)
	if err != nil {
		j.logger.Warn("remote review failed, using static fallback", "path", change.Path, "error", err)
		return j.fallback.Analyze(change.Path, change.Diff)
	}
	return verdict
}
