// Package cannibalization cross-references allocated primary keywords
// against the site's content index to flag ranking-dilution risk.
package cannibalization

import (
	"strings"

	"github.com/jonathan/content-planner/internal/contentindex"
	"github.com/jonathan/content-planner/internal/refine"
	"github.com/jonathan/content-planner/internal/types"
)

// Detect produces the cannibalization verdict for one allocated primary
// keyword. The check is an exact match on the normalized head term;
// fuzzy or semantic matching is intentionally out of scope (it would
// change recall/precision downstream).
//
// Rules, in order:
//   - keyword equals an existing declared primary  -> high, canonicalize
//   - keyword exists in the general inventory      -> possible, differentiate
//   - otherwise                                    -> none
func Detect(primary, cluster string, idx *contentindex.Index) types.Cannibalization {
	kw := strings.ToLower(strings.TrimSpace(primary))
	if kw == "" {
		return types.Cannibalization{Risk: types.RiskNone}
	}

	if idx.Primaries[kw] {
		verdict := types.Cannibalization{
			Risk:           types.RiskHigh,
			Recommendation: types.RecommendCanonicalize,
		}
		conflicts := idx.FindByPrimary(kw, cluster)
		if len(conflicts) > 0 {
			verdict.Conflicts = conflicts
			verdict.CanonicalTo = canonicalURL(conflicts[0])
		}
		return verdict
	}

	if idx.Inventory[kw] {
		return types.Cannibalization{
			Risk:           types.RiskPossible,
			Recommendation: types.RecommendDifferentiate,
		}
	}

	return types.Cannibalization{Risk: types.RiskNone}
}

// canonicalURL picks the URL a conflicting brief should canonicalize
// to, deriving a slug from the title when the item has no published URL.
func canonicalURL(item types.ExistingContentRecord) string {
	if item.URL != "" {
		return item.URL
	}
	return "/" + refine.Slugify(item.Title)
}
