package analysis

import (
	"fmt"
	"regexp"
)

// criticalLineThreshold is the combined added+removed line count above which
// a change is flagged critical regardless of its content.
const criticalLineThreshold = 20

// Classifier flags diffs that touch sensitive areas or are large enough to be
// treated as high-risk. The flag is advisory: it annotates the verdict for
// downstream consumers and never gates whether review happens.
type Classifier struct {
	patterns []*regexp.Regexp
}

// NewClassifier compiles the configured critical patterns case-insensitively.
func NewClassifier(patterns []string) (*Classifier, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("invalid critical pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &Classifier{patterns: compiled}, nil
}

// IsCritical reports whether diff matches any critical pattern or exceeds the
// size threshold.
func (c *Classifier) IsCritical(diff string) bool {
	for _, re := range c.patterns {
		if re.MatchString(diff) {
			return true
		}
	}
	return len(meaningfulLines(diff)) > criticalLineThreshold
}
