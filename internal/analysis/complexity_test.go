package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorerScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "empty content",
			content: "",
			want:    0,
		},
		{
			name:    "two function signatures",
			content: "func alpha() {}\nfunc beta() {}\n",
			want:    4,
		},
		{
			name:    "sql statement",
			content: "SELECT * FROM users",
			want:    3,
		},
		{
			name:    "async handler with error handling",
			content: "async def fetch_user(id):\n    data = await client.get(id)\n    try:\n        return parse(data)\n    except ValueError:\n        throw\n",
			// def signature 2, async+await 4, try+throw 4
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(10)
			assert.Equal(t, tt.want, s.Score(tt.content))
		})
	}
}

func TestScorerDeterministic(t *testing.T) {
	content := "func handler() {\n\trows := db.Query(\"SELECT id FROM accounts\")\n}\n"
	s := NewScorer(10)

	first := s.Score(content)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(content))
	}
}

func TestScorerNeedsReview(t *testing.T) {
	s := NewScorer(10)

	assert.False(t, s.NeedsReview("// just a comment\n"))
	assert.True(t, s.NeedsReview("async def fetch_user(id):\n    data = await client.get(id)\n    try:\n        return parse(data)\n    except ValueError:\n        throw\n"))
}
