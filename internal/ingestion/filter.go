// Package ingestion accepts externally supplied topic candidates and
// narrows them to the batch a planning run will process.
package ingestion

import (
	"strings"

	"github.com/jonathan/content-planner/internal/types"
)

// FilterResult reports what survived ingestion. Skipped counts
// malformed candidates (no title and no keyword/query material) that
// were dropped with a warning rather than aborting the batch.
type FilterResult struct {
	Candidates []types.TopicCandidate
	Skipped    int
}

// Filter applies the optional cluster allow-list, drops malformed
// candidates, and truncates to the first count survivors. Input order
// is authoritative and never re-sorted: callers control priority by
// ordering their candidate list.
func Filter(candidates []types.TopicCandidate, count int, allowClusters []string) FilterResult {
	allowed := make(map[string]bool, len(allowClusters))
	for _, c := range allowClusters {
		if cl := strings.ToLower(strings.TrimSpace(c)); cl != "" {
			allowed[cl] = true
		}
	}

	result := FilterResult{Candidates: []types.TopicCandidate{}}
	for i := range candidates {
		if len(result.Candidates) == count {
			break
		}
		c := candidates[i]
		if c.IsEmpty() {
			result.Skipped++
			continue
		}
		if len(allowed) > 0 && !allowed[strings.ToLower(strings.TrimSpace(c.ParentTopic))] {
			continue
		}
		result.Candidates = append(result.Candidates, c)
	}
	return result
}
