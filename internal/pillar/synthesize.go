// Package pillar emits one hub/overview brief per cluster represented
// in a planning batch.
package pillar

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/content-planner/internal/contentindex"
	"github.com/jonathan/content-planner/internal/links"
	"github.com/jonathan/content-planner/internal/refine"
	"github.com/jonathan/content-planner/internal/types"
)

// Synthesize appends a pillar brief for each distinct non-empty cluster
// in the batch and returns the reordered set with every pillar inserted
// ahead of its cluster's other briefs. Uncategorized briefs keep their
// relative order.
//
// A pillar intentionally overlaps its cluster's topic, so it is born
// with a possible-risk / differentiate verdict.
func Synthesize(briefs []types.ContentBrief, idx *contentindex.Index, rules []refine.NamingRule) []types.ContentBrief {
	pillars := make(map[string]types.ContentBrief)
	for _, b := range briefs {
		cluster := strings.TrimSpace(b.ParentCluster)
		key := strings.ToLower(cluster)
		if key == "" {
			continue
		}
		if _, ok := pillars[key]; ok {
			continue
		}
		pillars[key] = buildPillar(cluster, idx, rules)
	}

	out := make([]types.ContentBrief, 0, len(briefs)+len(pillars))
	inserted := make(map[string]bool, len(pillars))
	for _, b := range briefs {
		key := strings.ToLower(strings.TrimSpace(b.ParentCluster))
		if key != "" && !inserted[key] {
			out = append(out, pillars[key])
			inserted[key] = true
		}
		out = append(out, b)
	}
	return out
}

func buildPillar(cluster string, idx *contentindex.Index, rules []refine.NamingRule) types.ContentBrief {
	primary := strings.ToLower(strings.Join(strings.Fields(cluster), " "))
	title := refine.Title("", primary, cluster, rules)

	return types.ContentBrief{
		ID:             uuid.New(),
		Title:          title,
		H1:             title,
		URLPath:        "/" + refine.Slugify(cluster) + "/overview",
		PageType:       types.PagePillar,
		ParentCluster:  cluster,
		PrimaryKeyword:    primary,
		Intent:            types.IntentMixed,
		SecondaryKeywords: []string{},
		Cannibalization: types.Cannibalization{
			Risk:           types.RiskPossible,
			Recommendation: types.RecommendDifferentiate,
		},
		InternalLinks: links.Plan(cluster, idx),
		Status:        types.StatusDraft,
	}
}
