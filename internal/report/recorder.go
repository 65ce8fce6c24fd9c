// Package report persists the aggregated verdicts of a run as a timestamped
// Markdown report consumed by humans during hook failures.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vitkovskyi/commitgate/internal/core"
)

// Recorder writes one report file per invocation. The report is written once
// at the end of the run from the fully aggregated result, never
// incrementally.
type Recorder struct {
	dir    string
	logger *slog.Logger
}

// NewRecorder returns a Recorder storing reports under dir.
func NewRecorder(dir string, logger *slog.Logger) *Recorder {
	return &Recorder{dir: dir, logger: logger}
}

// Save writes the report for a run and returns the file path. mode is
// "review" or "batch" and selects the filename prefix.
func (r *Recorder) Save(runID, mode string, result core.AggregateResult) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	now := time.Now()
	prefix := "review"
	title := "Pre-commit Code Review"
	if mode == "batch" {
		prefix = "batch_review"
		title = "Batch Code Review (Pre-Push)"
	}
	path := filepath.Join(r.dir, fmt.Sprintf("%s_%s.md", prefix, now.Format("20060102_150405")))

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Run**: %s\n", runID)
	fmt.Fprintf(&b, "**Timestamp**: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Units**: %d\n\n", len(result.Verdicts))

	for _, v := range result.Verdicts {
		if len(v.Paths) == 1 {
			fmt.Fprintf(&b, "## File: %s\n\n", v.Paths[0])
		} else {
			fmt.Fprintf(&b, "## Batch: %s\n\n", strings.Join(v.Paths, ", "))
		}
		fmt.Fprintf(&b, "**Critical**: %s\n", yesNo(v.Critical))
		fmt.Fprintf(&b, "**Source**: %s\n\n", v.Source)
		b.WriteString(v.Review)
		b.WriteString("\n\n---\n\n")
	}

	if len(result.Rejected) > 0 {
		b.WriteString("## Rejected\n\n")
		for _, p := range result.Rejected {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	r.logger.Info("review report saved", "path", path)
	return path, nil
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
