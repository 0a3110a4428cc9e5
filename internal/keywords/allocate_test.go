package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/content-planner/internal/types"
)

func TestAllocatePrimary_FirstFit(t *testing.T) {
	used := map[string]bool{}
	c := &types.TopicCandidate{
		Title:    "Coffee Importer Guide",
		Keywords: []string{"Coffee Importer", "green coffee supplier"},
		Queries:  []string{"how to import coffee"},
	}

	alloc := AllocatePrimary(c, used)
	assert.Equal(t, "coffee importer", alloc.Primary)
	assert.True(t, alloc.Unique)
	assert.True(t, used["coffee importer"])
}

func TestAllocatePrimary_SkipsUsedKeywords(t *testing.T) {
	used := map[string]bool{"coffee importer": true}
	c := &types.TopicCandidate{
		Keywords: []string{"coffee importer", "green coffee supplier"},
	}

	alloc := AllocatePrimary(c, used)
	assert.Equal(t, "green coffee supplier", alloc.Primary)
	assert.True(t, alloc.Unique)
}

func TestAllocatePrimary_FallsThroughToQueries(t *testing.T) {
	used := map[string]bool{"coffee importer": true}
	c := &types.TopicCandidate{
		Keywords: []string{"coffee importer"},
		Queries:  []string{"how to import coffee"},
	}

	alloc := AllocatePrimary(c, used)
	assert.Equal(t, "how to import coffee", alloc.Primary)
	assert.True(t, alloc.Unique)
}

func TestAllocatePrimary_TitleFallback(t *testing.T) {
	used := map[string]bool{"coffee importer": true}
	c := &types.TopicCandidate{
		Title:    "Coffee Importer FAQ",
		Keywords: []string{"coffee importer"},
	}

	alloc := AllocatePrimary(c, used)
	assert.Equal(t, "coffee importer faq", alloc.Primary)
	assert.True(t, alloc.Unique)
}

func TestAllocatePrimary_ExhaustedFallbackIsNonUnique(t *testing.T) {
	// Everything the candidate offers, including its title fallback, is taken.
	used := map[string]bool{
		"coffee importer":     true,
		"coffee importer faq": true,
	}
	c := &types.TopicCandidate{
		Title:    "Coffee Importer FAQ",
		Keywords: []string{"coffee importer"},
	}

	alloc := AllocatePrimary(c, used)
	assert.Equal(t, "coffee importer faq", alloc.Primary)
	assert.False(t, alloc.Unique, "exhausted allocation must be flagged, not dropped")
}

func TestAllocatePrimary_CollapsesGenerationArtifacts(t *testing.T) {
	used := map[string]bool{}
	c := &types.TopicCandidate{Keywords: []string{"importer importer license"}}

	alloc := AllocatePrimary(c, used)
	assert.Equal(t, "importer license", alloc.Primary)
}

func TestAllocatePrimary_BatchUniqueness(t *testing.T) {
	// Two candidates sharing a head term: the second must allocate a
	// different primary. Order sensitivity is deliberate.
	used := map[string]bool{}
	first := &types.TopicCandidate{Keywords: []string{"crm software", "crm tools"}}
	second := &types.TopicCandidate{Keywords: []string{"crm software", "crm platform"}}

	a := AllocatePrimary(first, used)
	b := AllocatePrimary(second, used)

	assert.Equal(t, "crm software", a.Primary)
	assert.Equal(t, "crm platform", b.Primary)
	assert.NotEqual(t, a.Primary, b.Primary)
}

func TestAllocatePrimary_NoSignalAtAll(t *testing.T) {
	alloc := AllocatePrimary(&types.TopicCandidate{}, map[string]bool{})
	assert.Empty(t, alloc.Primary)
	assert.False(t, alloc.Unique)
}
