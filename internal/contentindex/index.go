// Package contentindex builds the in-memory lookup structures for one
// planning run: declared primary keywords, the general keyword
// inventory, and existing content grouped by cluster.
package contentindex

import (
	"strings"

	"github.com/jonathan/content-planner/internal/types"
)

// Index is the read-only context snapshot the per-candidate pass runs
// against. All keys are lower-cased.
type Index struct {
	// Primaries holds keywords already declared as some page's primary.
	Primaries map[string]bool
	// Inventory holds every keyword the site already tracks.
	Inventory map[string]bool
	// ByCluster maps a lower-cased cluster label to its existing content.
	ByCluster map[string][]types.ExistingContentRecord
}

// Result tags an index with its provenance: a degraded index is empty
// because the context fetch failed, which is distinct from a site that
// genuinely has no inventory. Downstream consumers discount
// cannibalization confidence when Degraded is set.
type Result struct {
	Index    *Index
	Degraded bool
	Reason   string
}

// Build constructs the index from raw inventory rows. It is a pure
// transform: empty input produces empty structures, never an error.
func Build(keywords []types.KeywordRecord, content []types.ExistingContentRecord) *Index {
	idx := &Index{
		Primaries: make(map[string]bool),
		Inventory: make(map[string]bool),
		ByCluster: make(map[string][]types.ExistingContentRecord),
	}

	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw.Keyword))
		if k == "" {
			continue
		}
		idx.Inventory[k] = true
		if strings.EqualFold(kw.Type, "primary") {
			idx.Primaries[k] = true
		}
	}

	for _, item := range content {
		if pk := strings.ToLower(strings.TrimSpace(item.PrimaryKeyword)); pk != "" {
			idx.Primaries[pk] = true
			idx.Inventory[pk] = true
		}
		cluster := strings.ToLower(strings.TrimSpace(item.Cluster))
		if cluster == "" {
			continue
		}
		idx.ByCluster[cluster] = append(idx.ByCluster[cluster], item)
	}

	return idx
}

// Ok wraps a freshly built index as a healthy result.
func Ok(idx *Index) Result {
	return Result{Index: idx}
}

// DegradedResult substitutes an empty index after a failed context
// fetch so the run can proceed with reduced confidence.
func DegradedResult(reason string) Result {
	return Result{Index: Build(nil, nil), Degraded: true, Reason: reason}
}

// ClusterContent returns the existing content for a cluster label,
// matched case-insensitively.
func (idx *Index) ClusterContent(cluster string) []types.ExistingContentRecord {
	return idx.ByCluster[strings.ToLower(strings.TrimSpace(cluster))]
}

// FindByPrimary locates existing content whose declared primary keyword
// equals the given normalized keyword, preferring items in the given
// cluster. Used to populate cannibalization conflicts.
func (idx *Index) FindByPrimary(keyword, cluster string) []types.ExistingContentRecord {
	var inCluster, elsewhere []types.ExistingContentRecord
	target := strings.ToLower(strings.TrimSpace(cluster))
	for cl, items := range idx.ByCluster {
		for _, item := range items {
			if strings.ToLower(strings.TrimSpace(item.PrimaryKeyword)) != keyword {
				continue
			}
			if cl == target {
				inCluster = append(inCluster, item)
			} else {
				elsewhere = append(elsewhere, item)
			}
		}
	}
	return append(inCluster, elsewhere...)
}
