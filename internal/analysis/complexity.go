// Package analysis contains the local, deterministic parts of the review
// pipeline: the complexity gate, the trivial-change filter, the criticality
// classifier, and the static fallback reviewer. Everything here is a pure
// function of its input text; nothing touches the network or the filesystem.
package analysis

import "regexp"

type complexityRule struct {
	re     *regexp.Regexp
	weight int
}

// The rule table approximates how much reviewable logic a file carries.
// Patterns are language-agnostic on purpose: the tool gates commits in mixed
// repositories, so it counts constructs common across the supported languages.
var complexityRules = []complexityRule{
	// function/method signatures
	{regexp.MustCompile(`\b(public|private|protected|internal|func|def)\s+\w+.*\(`), 2},
	// data-manipulation statements
	{regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b`), 3},
	// concurrency keywords
	{regexp.MustCompile(`\b(async|await|goroutine|chan|Mutex)\b`), 2},
	// fluent query-style chains
	{regexp.MustCompile(`\.(Where|Select|FirstOrDefault|Any|All|Filter|Map)\(`), 1},
	// exception handling
	{regexp.MustCompile(`\b(try|catch|throw|panic|recover)\b`), 2},
}

// Scorer assigns a complexity score to file content and gates review on it.
// Files scoring below the threshold are reported as skipped, never reviewed.
type Scorer struct {
	threshold int
}

// NewScorer returns a Scorer that gates at the given threshold.
func NewScorer(threshold int) *Scorer {
	return &Scorer{threshold: threshold}
}

// Score computes the weighted pattern-count sum for content. It is a pure,
// deterministic function: identical content always yields an identical score.
func (s *Scorer) Score(content string) int {
	total := 0
	for _, rule := range complexityRules {
		total += len(rule.re.FindAllStringIndex(content, -1)) * rule.weight
	}
	return total
}

// NeedsReview reports whether content scores at or above the gate threshold.
func (s *Scorer) NeedsReview(content string) bool {
	return s.Score(content) >= s.threshold
}

// Threshold returns the configured gate threshold.
func (s *Scorer) Threshold() int {
	return s.threshold
}
