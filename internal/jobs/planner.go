package jobs

import "github.com/vitkovskyi/commitgate/internal/core"

// Plan partitions files into consecutive review batches of size batchSize,
// preserving input order. It returns nil when the changed-file count is below
// threshold, meaning batch mode does not apply.
func Plan(files []core.FileChange, threshold, batchSize int) [][]core.FileChange {
	if len(files) < threshold {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	groups := make([][]core.FileChange, 0, (len(files)+batchSize-1)/batchSize)
	for i := 0; i < len(files); i += batchSize {
		end := min(i+batchSize, len(files))
		groups = append(groups, files[i:end])
	}
	return groups
}
