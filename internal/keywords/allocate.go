package keywords

import "github.com/jonathan/content-planner/internal/types"

// Allocation is the outcome of picking a primary keyword for one candidate.
type Allocation struct {
	Primary string
	// Unique is false when every normalization candidate was already
	// taken and the fallback itself collided. The brief is still
	// emitted; callers treat this as a warning condition.
	Unique bool
}

// AllocatePrimary selects one primary keyword for a candidate,
// first-fit over its keywords then its queries, guaranteed unique
// within the batch via the shared used set. The used set is passed
// explicitly and mutated in place, which makes allocation
// order-sensitive and the batch deterministic for a fixed input order.
//
// If no candidate value qualifies, a normalized form of the title (or
// parent topic) is used; if even that is taken, the non-unique fallback
// is returned with Unique=false rather than dropping the candidate.
func AllocatePrimary(c *types.TopicCandidate, used map[string]bool) Allocation {
	candidates := NormalizeAll(c.Keywords)
	candidates = append(candidates, NormalizeAll(c.Queries)...)

	for _, kw := range candidates {
		if !used[kw] {
			used[kw] = true
			return Allocation{Primary: kw, Unique: true}
		}
	}

	fallback := Normalize(c.Title)
	if fallback == "" {
		fallback = Normalize(c.ParentTopic)
	}
	if fallback == "" {
		return Allocation{}
	}
	if used[fallback] {
		return Allocation{Primary: fallback, Unique: false}
	}
	used[fallback] = true
	return Allocation{Primary: fallback, Unique: true}
}
