package jobs

import "github.com/vitkovskyi/commitgate/internal/core"

// Aggregate merges all verdicts of a run into one result. Rejected is the
// union of every path covered by a rejecting verdict, with batch verdicts
// expanded to their member files; first-appearance order is preserved. The
// exit code is 1 iff any path was rejected.
func Aggregate(verdicts []core.Verdict) core.AggregateResult {
	res := core.AggregateResult{Verdicts: verdicts}

	seen := make(map[string]struct{})
	for _, v := range verdicts {
		if v.Decision != core.DecisionReject {
			continue
		}
		for _, p := range v.Paths {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			res.Rejected = append(res.Rejected, p)
		}
	}

	if len(res.Rejected) > 0 {
		res.ExitCode = 1
	}
	return res
}
