package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitkovskyi/commitgate/internal/core"
)

func TestAggregateAllAccepted(t *testing.T) {
	res := Aggregate([]core.Verdict{
		{Paths: []string{"a.go"}, Decision: core.DecisionAccept},
		{Paths: []string{"b.go"}, Decision: core.DecisionAccept},
	})

	assert.Empty(t, res.Rejected)
	assert.Equal(t, 0, res.ExitCode)
	assert.Len(t, res.Verdicts, 2)
}

func TestAggregateExpandsBatchVerdicts(t *testing.T) {
	res := Aggregate([]core.Verdict{
		{Paths: []string{"a.py", "b.py"}, Decision: core.DecisionReject},
		{Paths: []string{"c.py"}, Decision: core.DecisionAccept},
	})

	assert.Equal(t, []string{"a.py", "b.py"}, res.Rejected)
	assert.Equal(t, 1, res.ExitCode)
}

func TestAggregateDeduplicatesPaths(t *testing.T) {
	res := Aggregate([]core.Verdict{
		{Paths: []string{"a.py"}, Decision: core.DecisionReject},
		{Paths: []string{"a.py", "b.py"}, Decision: core.DecisionReject},
	})

	assert.Equal(t, []string{"a.py", "b.py"}, res.Rejected)
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil)
	assert.Equal(t, 0, res.ExitCode)
	assert.Empty(t, res.Rejected)
}
