package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/content-planner/internal/contentindex"
	"github.com/jonathan/content-planner/internal/types"
)

func TestPlan_EmptyClusterYieldsEmptyPlan(t *testing.T) {
	idx := contentindex.Build(nil, nil)

	plan := Plan("marketing-tools", idx)
	assert.Nil(t, plan.UpToPillar)
	assert.Empty(t, plan.SameCluster)
	assert.NotNil(t, plan.SameCluster, "same_cluster serializes as [], not null")
	assert.NotNil(t, plan.CrossCluster)
}

func TestPlan_SameClusterCappedAtThree(t *testing.T) {
	idx := contentindex.Build(nil, []types.ExistingContentRecord{
		{Cluster: "logistics", Title: "Freight Basics", URL: "/logistics/freight-basics"},
		{Cluster: "logistics", Title: "Customs Checklist", PrimaryKeyword: "customs checklist"},
		{Cluster: "logistics", Title: "Pallet Sizing", URL: "/logistics/pallet-sizing"},
		{Cluster: "logistics", Title: "Incoterms Explained"},
	})

	plan := Plan("logistics", idx)
	require.Len(t, plan.SameCluster, 3)

	// Anchor prefers the declared primary keyword over the title.
	assert.Equal(t, "Freight Basics", plan.SameCluster[0].Anchor)
	assert.Equal(t, "customs checklist", plan.SameCluster[1].Anchor)

	// Target prefers the published URL, deriving a slug otherwise.
	assert.Equal(t, "/logistics/freight-basics", plan.SameCluster[0].Target)
	assert.Equal(t, "/customs-checklist", plan.SameCluster[1].Target)
}

func TestPlan_PillarPrefersHubMarkers(t *testing.T) {
	idx := contentindex.Build(nil, []types.ExistingContentRecord{
		{Cluster: "coffee", Title: "Roast Profiles", URL: "/coffee/roast-profiles"},
		{Cluster: "coffee", Title: "The Complete Coffee Sourcing Guide", URL: "/coffee/sourcing-guide"},
	})

	plan := Plan("coffee", idx)
	require.NotNil(t, plan.UpToPillar)
	assert.Equal(t, "/coffee/sourcing-guide", plan.UpToPillar.Target)
}

func TestPlan_PillarFallsBackToFirstItem(t *testing.T) {
	idx := contentindex.Build(nil, []types.ExistingContentRecord{
		{Cluster: "coffee", Title: "Roast Profiles", URL: "/coffee/roast-profiles"},
		{Cluster: "coffee", Title: "Water Chemistry", URL: "/coffee/water-chemistry"},
	})

	plan := Plan("coffee", idx)
	require.NotNil(t, plan.UpToPillar)
	assert.Equal(t, "/coffee/roast-profiles", plan.UpToPillar.Target)
}
