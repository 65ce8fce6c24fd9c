// Package core defines the essential data structures and interfaces that form
// the backbone of the review pipeline. These components are designed to be
// abstract, allowing for flexible and decoupled implementations of the
// application's logic.
package core

import "time"

// Decision is the outcome of a single reviewed unit.
type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionReject Decision = "REJECT"
)

// Source identifies which reviewer produced a verdict. The remote scorer and
// the static fallback have different precision characteristics, so provenance
// is carried explicitly rather than hidden behind an identical return shape.
type Source string

const (
	SourceRemote         Source = "REMOTE"
	SourceStaticFallback Source = "STATIC_FALLBACK"
)

// FileChange is one changed file together with its textual diff. For a new
// untracked file the diff is synthesized from the full content as additions.
// A FileChange is immutable once read.
type FileChange struct {
	Path string
	Diff string
}

// Verdict is the result of reviewing one unit (a single file or a batch of
// files submitted together). Produced exactly once per reviewed unit and
// never mutated afterwards.
type Verdict struct {
	Paths    []string // files covered by this unit, in input order
	Decision Decision
	Score    int // 0-100 from the parser; fallback scores may go below 0
	Issues   []string
	Critical bool
	Source   Source
	Review   string // full review text as returned by the reviewer
}

// AggregateResult merges every Verdict of a run into a single pass/fail
// outcome. Rejected preserves the order in which paths first appeared.
type AggregateResult struct {
	Verdicts []Verdict
	Rejected []string
	ExitCode int
}

// Run is one recorded invocation of the review pipeline.
type Run struct {
	ID        string    `db:"id"`
	Mode      string    `db:"mode"` // "review" or "batch"
	Files     int       `db:"files"`
	Rejected  int       `db:"rejected"`
	ExitCode  int       `db:"exit_code"`
	CreatedAt time.Time `db:"created_at"`
}
