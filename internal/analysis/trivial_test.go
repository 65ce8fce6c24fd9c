package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSkipPatterns = []string{
	`^using\s+`,
	`^import\s+`,
	`^\s*(//|#).*$`,
	`^\s*\[.*\]\s*$`,
}

func TestTrivialFilterShouldSkip(t *testing.T) {
	f, err := NewTrivialFilter(testSkipPatterns)
	require.NoError(t, err)

	tests := []struct {
		name string
		diff string
		want bool
	}{
		{
			name: "import-only change",
			diff: "--- a/svc.cs\n+++ b/svc.cs\n+using System.Text;\n-using System.IO;\n",
			want: true,
		},
		{
			name: "comment-only change",
			diff: "--- a/main.go\n+++ b/main.go\n+// clarify intent\n",
			want: true,
		},
		{
			name: "attribute-only change",
			diff: "+[Obsolete]\n-[Serializable]\n",
			want: true,
		},
		{
			name: "real logic change",
			diff: "+if user.IsAdmin {\n+\tgrantAccess(user)\n",
			want: false,
		},
		{
			name: "three meaningful lines never trivial",
			diff: "+using System;\n+using System.IO;\n+using System.Text;\n",
			want: false,
		},
		{
			name: "mixed trivial and logic",
			diff: "+import os\n+os.remove(path)\n",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.ShouldSkip(tt.diff))
		})
	}
}

func TestNewTrivialFilterRejectsBadPattern(t *testing.T) {
	_, err := NewTrivialFilter([]string{`[unclosed`})
	assert.Error(t, err)
}
