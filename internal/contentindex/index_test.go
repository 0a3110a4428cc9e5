package contentindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/types"
)

func TestBuild_EmptyInput(t *testing.T) {
	idx := Build(nil, nil)
	require.NotNil(t, idx)
	assert.Empty(t, idx.Primaries)
	assert.Empty(t, idx.Inventory)
	assert.Empty(t, idx.ByCluster)
}

func TestBuild_IndexesKeywordsAndContent(t *testing.T) {
	keywords := []types.KeywordRecord{
		{Keyword: "Email Marketing Software", Type: "primary", Cluster: "marketing-tools"},
		{Keyword: "drip campaigns", Type: "tracked"},
		{Keyword: "  "},
	}
	content := []types.ExistingContentRecord{
		{Cluster: "Marketing-Tools", Title: "Email Marketing Software Guide", URL: "/marketing-tools/email-marketing-software", PrimaryKeyword: "email marketing software"},
		{Cluster: "marketing-tools", Title: "Drip Campaign Basics"},
		{Title: "Orphan Page", PrimaryKeyword: "orphan keyword"},
	}

	idx := Build(keywords, content)

	assert.True(t, idx.Primaries["email marketing software"])
	assert.False(t, idx.Primaries["drip campaigns"])
	assert.True(t, idx.Inventory["drip campaigns"])
	// Declared primaries on content rows join the inventory too.
	assert.True(t, idx.Inventory["orphan keyword"])

	// Cluster labels are lower-cased; both rows land in one bucket.
	assert.Len(t, idx.ByCluster["marketing-tools"], 2)
	// Content without a cluster is indexed by primary only.
	assert.NotContains(t, idx.ByCluster, "")
}

func TestClusterContent_CaseInsensitive(t *testing.T) {
	idx := Build(nil, []types.ExistingContentRecord{
		{Cluster: "logistics", Title: "Freight Guide"},
	})

	assert.Len(t, idx.ClusterContent("Logistics"), 1)
	assert.Empty(t, idx.ClusterContent("unknown"))
}

func TestFindByPrimary_PrefersSameCluster(t *testing.T) {
	idx := Build(nil, []types.ExistingContentRecord{
		{Cluster: "other", Title: "Elsewhere", PrimaryKeyword: "crm software"},
		{Cluster: "sales-tools", Title: "In Cluster", PrimaryKeyword: "crm software"},
	})

	found := idx.FindByPrimary("crm software", "sales-tools")
	require.Len(t, found, 2)
	assert.Equal(t, "In Cluster", found[0].Title)
}

func TestDegradedResult(t *testing.T) {
	res := DegradedResult("keyword fetch timed out")
	require.NotNil(t, res.Index)
	assert.True(t, res.Degraded)
	assert.Equal(t, "keyword fetch timed out", res.Reason)
	assert.Empty(t, res.Index.Inventory)
}
