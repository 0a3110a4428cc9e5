// Package links plans same-cluster reinforcement links and the
// up-to-pillar suggestion for each brief.
package links

import (
	"strings"

	"github.com/jonathan/content-planner/internal/contentindex"
	"github.com/jonathan/content-planner/internal/refine"
	"github.com/jonathan/content-planner/internal/types"
)

// maxSameCluster caps reinforcement links per brief.
const maxSameCluster = 3

// hubMarkers flag titles that read like cluster hub pages.
var hubMarkers = []string{"guide", "overview", "ultimate", "complete"}

// Plan builds the internal-link plan for one brief. Same-cluster links
// use up to three existing items; the pillar link scans for a hub-like
// title and falls back to the first existing item. A cluster with no
// existing content yields an empty plan. CrossCluster is an extension
// point and always empty here.
func Plan(cluster string, idx *contentindex.Index) types.InternalLinks {
	plan := types.InternalLinks{
		SameCluster:  []types.Link{},
		CrossCluster: []types.Link{},
	}

	existing := idx.ClusterContent(cluster)
	if len(existing) == 0 {
		return plan
	}

	for _, item := range existing {
		if len(plan.SameCluster) == maxSameCluster {
			break
		}
		plan.SameCluster = append(plan.SameCluster, toLink(item))
	}

	pillar := toLink(findPillar(existing))
	plan.UpToPillar = &pillar
	return plan
}

// findPillar returns the first item whose title carries a hub marker,
// falling back to the first item in the cluster.
func findPillar(existing []types.ExistingContentRecord) types.ExistingContentRecord {
	for _, item := range existing {
		title := strings.ToLower(item.Title)
		for _, marker := range hubMarkers {
			if strings.Contains(title, marker) {
				return item
			}
		}
	}
	return existing[0]
}

// toLink converts an existing content item into a link suggestion: the
// declared primary keyword (or title) as anchor, the published URL (or
// a derived slug) as target.
func toLink(item types.ExistingContentRecord) types.Link {
	anchor := item.PrimaryKeyword
	if anchor == "" {
		anchor = item.Title
	}
	target := item.URL
	if target == "" {
		target = "/" + refine.Slugify(item.Title)
	}
	return types.Link{Anchor: anchor, Target: target}
}
