package gitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEligible(t *testing.T) {
	extensions := []string{".go", ".py", ".sql"}

	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "filters by extension preserving order",
			paths: []string{"a.go", "README.md", "b.py", "Makefile", "c.sql"},
			want:  []string{"a.go", "b.py", "c.sql"},
		},
		{
			name:  "extension match is case-insensitive",
			paths: []string{"Model.GO", "query.SQL"},
			want:  []string{"Model.GO", "query.SQL"},
		},
		{
			name:  "no extension never matches",
			paths: []string{"LICENSE", "Dockerfile"},
			want:  nil,
		},
		{
			name:  "empty input",
			paths: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eligible(tt.paths, extensions))
		})
	}
}

func TestSynthesizeDiff(t *testing.T) {
	got := synthesizeDiff("pkg/new.go", "package pkg\n\nfunc New() {}")

	assert.Equal(t, "New file: pkg/new.go\n+package pkg\n+\n+func New() {}\n", got)
}

func TestSynthesizeDiffEmptyContent(t *testing.T) {
	got := synthesizeDiff("empty.txt", "")

	assert.Equal(t, "New file: empty.txt\n+\n", got)
}
