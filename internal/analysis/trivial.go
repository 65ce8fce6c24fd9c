package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// TrivialFilter short-circuits review for diffs too small and mechanical to
// warrant one: imports, comments, attribute/annotation lines.
type TrivialFilter struct {
	patterns []*regexp.Regexp
}

// NewTrivialFilter compiles the configured skip patterns.
func NewTrivialFilter(patterns []string) (*TrivialFilter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &TrivialFilter{patterns: compiled}, nil
}

// ShouldSkip reports whether diff is trivial: fewer than 3 meaningful lines,
// each of which (with its +/- marker stripped) matches at least one skip
// pattern. A trivial diff produces no verdict at all.
func (f *TrivialFilter) ShouldSkip(diff string) bool {
	lines := meaningfulLines(diff)
	if len(lines) >= 3 {
		return false
	}
	for _, line := range lines {
		stripped := strings.TrimSpace(line[1:])
		if !f.matchesAny(stripped) {
			return false
		}
	}
	return true
}

func (f *TrivialFilter) matchesAny(line string) bool {
	for _, re := range f.patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
