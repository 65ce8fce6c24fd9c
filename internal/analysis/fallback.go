package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vitkovskyi/commitgate/internal/core"
)

type fallbackRule struct {
	re      *regexp.Regexp
	message string
	penalty int
}

// The rule table is fixed and ordered. It trades precision for determinism:
// these are pattern-based approximations of the checks the remote reviewer
// would perform, used only when that service is unreachable.
var fallbackRules = []fallbackRule{
	{regexp.MustCompile(`(?i)hashlib\.(md5|sha1)|\b(md5|sha1)\.New\b`), "Weak hashing algorithm detected", 30},
	{regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[^\n]*(\+|\{|%s|\$\{)`), "Potential SQL injection vulnerability", 40},
	{regexp.MustCompile(`(?i)\b(eval|exec)\s*\(`), "Dangerous code execution function", 50},
	{regexp.MustCompile(`open\s*\([^)\n]*['"][rwa]['"]\s*\)`), "File opened without a scoped-resource construct", 10},
	{regexp.MustCompile(`(?i)\bfor\b[^\n]*\n[^\n]*\+\s*=`), "Inefficient string concatenation in loop", 15},
	{regexp.MustCompile(`(?i)time\.sleep\(\s*[0-9]+\s*\)`), "Blocking sleep operation", 10},
}

// criticalIssueMarkers flag an issue message as inherently critical
// independent of the numeric score.
var criticalIssueMarkers = []string{"injection", "dangerous"}

const fallbackScoreFloor = 70

// Analyzer is the deterministic local reviewer substituted for the remote
// scorer on transport failure. Analyze always succeeds and never sees the
// network.
type Analyzer struct{}

// NewAnalyzer returns a static fallback Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze runs the fixed rule table against diff and produces a verdict with
// Source set to STATIC_FALLBACK. The score starts at 100 and each matching
// rule subtracts its penalty; scores below zero are not clamped.
func (a *Analyzer) Analyze(path, diff string) core.Verdict {
	score := 100
	var issues []string

	for _, rule := range fallbackRules {
		if rule.re.MatchString(diff) {
			issues = append(issues, rule.message)
			score -= rule.penalty
		}
	}

	critical := score < fallbackScoreFloor
	if !critical {
		for _, issue := range issues {
			lower := strings.ToLower(issue)
			for _, marker := range criticalIssueMarkers {
				if strings.Contains(lower, marker) {
					critical = true
				}
			}
		}
	}

	decision := core.DecisionAccept
	if len(issues) > 0 && critical {
		decision = core.DecisionReject
	}

	return core.Verdict{
		Paths:    []string{path},
		Decision: decision,
		Score:    score,
		Issues:   issues,
		Critical: critical,
		Source:   core.SourceStaticFallback,
		Review:   renderFallbackReview(decision, score, issues),
	}
}

func renderFallbackReview(decision core.Decision, score int, issues []string) string {
	var b strings.Builder
	b.WriteString("## Static Code Review Results\n\n")
	fmt.Fprintf(&b, "**DECISION**: %s (Score: %d/100)\n\n", decision, score)

	if len(issues) > 0 {
		b.WriteString("**ISSUES FOUND**:\n")
		for _, issue := range issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
		b.WriteString("\n**RECOMMENDATIONS**:\n")
		b.WriteString("- Use secure hashing algorithms (SHA-256 or better)\n")
		b.WriteString("- Use parameterized queries to prevent SQL injection\n")
		b.WriteString("- Use scoped-resource constructs for file operations\n")
		b.WriteString("- Avoid string concatenation in hot loops\n")
	} else {
		b.WriteString("**STATUS**: No critical issues detected in static analysis.\n")
	}

	b.WriteString("\n*Note: this is a static analysis fallback. For a full AI-powered review, make sure the review proxy is reachable.*")
	return b.String()
}
