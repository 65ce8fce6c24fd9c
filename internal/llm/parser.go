package llm

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vitkovskyi/commitgate/internal/core"
)

var (
	// Matches the DECISION line our prompts mandate, e.g.
	// "**DECISION**: REJECT (Score: 35/100)" or "1. **DECISION**: ACCEPT".
	decisionRegex = regexp.MustCompile(`(?im)^\s*(?:\d+\.\s*)?\*{0,2}DECISION\*{0,2}:?\s*\*{0,2}(ACCEPT|REJECT)\b`)
	scoreRegex    = regexp.MustCompile(`(?i)Score:?\s*(-?\d+)`)
	issueHeading  = regexp.MustCompile(`(?i)\*{0,2}(CRITICAL\s+)?ISSUES\b`)
	bulletLine    = regexp.MustCompile(`^\s*[-*]\s+(.*)`)
)

// ReviewResult is the structured outcome extracted from free-form review
// text: a tagged decision plus supporting detail, produced by a dedicated
// parsing step instead of inferring the decision downstream.
type ReviewResult struct {
	Decision core.Decision
	Score    int
	Issues   []string
}

// VerdictParser turns review text into a ReviewResult. The primary parser
// reads the DECISION line the prompts require. When the model returns
// unconstrained prose, a legacy textual-contains scan over the configured
// rejection markers is the last resort; text containing no marker is an
// acceptance, with the false-negative risk that implies.
type VerdictParser struct {
	markers []string
}

// NewVerdictParser returns a parser recognizing the given literal rejection
// markers (case-sensitive), e.g. "REJECT" plus its localized equivalents.
func NewVerdictParser(markers []string) *VerdictParser {
	return &VerdictParser{markers: markers}
}

// Parse extracts a structured result from text. It never fails: unparsable
// input degrades to the marker scan.
func (p *VerdictParser) Parse(text string) ReviewResult {
	if m := decisionRegex.FindStringSubmatch(text); m != nil {
		res := ReviewResult{
			Decision: core.Decision(strings.ToUpper(m[1])),
			Issues:   extractIssues(text),
		}
		if s := scoreRegex.FindStringSubmatch(text); s != nil {
			if score, err := strconv.Atoi(s[1]); err == nil {
				res.Score = score
			}
		}
		return res
	}

	// Legacy compatibility: substring presence of a rejection marker.
	for _, marker := range p.markers {
		if strings.Contains(text, marker) {
			return ReviewResult{Decision: core.DecisionReject}
		}
	}
	return ReviewResult{Decision: core.DecisionAccept}
}

// extractIssues collects the bullet lines under an ISSUES heading.
func extractIssues(text string) []string {
	var issues []string
	inSection := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if issueHeading.MatchString(trimmed) {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if m := bulletLine.FindStringSubmatch(line); m != nil {
			issues = append(issues, strings.TrimSpace(m[1]))
			continue
		}
		if trimmed == "" && len(issues) > 0 {
			break
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "**") {
			break
		}
	}
	return issues
}
