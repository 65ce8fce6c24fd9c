package jobs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitkovskyi/commitgate/internal/core"
)

func changesOf(n int) []core.FileChange {
	files := make([]core.FileChange, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, core.FileChange{Path: fmt.Sprintf("file%02d.go", i), Diff: "+x\n"})
	}
	return files
}

func TestPlanBelowThreshold(t *testing.T) {
	assert.Nil(t, Plan(changesOf(9), 10, 5))
	assert.Nil(t, Plan(nil, 10, 5))
}

func TestPlanPartitionsPreservingOrder(t *testing.T) {
	groups := Plan(changesOf(12), 10, 5)

	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 5)
	assert.Len(t, groups[1], 5)
	assert.Len(t, groups[2], 2)

	assert.Equal(t, "file00.go", groups[0][0].Path)
	assert.Equal(t, "file05.go", groups[1][0].Path)
	assert.Equal(t, "file11.go", groups[2][1].Path)
}

func TestPlanExactThreshold(t *testing.T) {
	groups := Plan(changesOf(10), 10, 5)
	require.Len(t, groups, 2)
}

func TestPlanGuardsZeroBatchSize(t *testing.T) {
	groups := Plan(changesOf(3), 1, 0)
	require.Len(t, groups, 3)
}
