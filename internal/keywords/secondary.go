package keywords

import "github.com/jonathan/content-planner/internal/types"

// maxSecondary caps the supporting keyword set per brief.
const maxSecondary = 4

// SelectSecondary derives up to four supporting keyword variants for a
// brief: candidate queries first, then keywords, normalized,
// de-duplicated, and never equal to the chosen primary. Fewer than two
// results is acceptable when the input is sparse.
func SelectSecondary(c *types.TopicCandidate, primary string) []string {
	pool := NormalizeAll(c.Queries)
	pool = append(pool, NormalizeAll(c.Keywords)...)

	seen := map[string]bool{primary: true}
	out := make([]string, 0, maxSecondary)
	for _, kw := range pool {
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
		if len(out) == maxSecondary {
			break
		}
	}
	return out
}
