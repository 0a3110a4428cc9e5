package types

import (
	"time"

	"github.com/google/uuid"
)

// PageType classifies the role a brief plays within its cluster.
type PageType string

// Page types.
const (
	PagePillar     PageType = "pillar"
	PageCluster    PageType = "cluster"
	PageSupporting PageType = "supporting"
)

// Intent is the inferred purpose of the search query a brief targets.
type Intent string

// Search intents, in no particular order.
const (
	IntentInformational Intent = "informational"
	IntentTransactional Intent = "transactional"
	IntentComparison    Intent = "comparison"
	IntentPricing       Intent = "pricing"
	IntentLocation      Intent = "location"
	IntentMixed         Intent = "mixed"
)

// Risk buckets for cannibalization verdicts.
type Risk string

const (
	RiskNone     Risk = "none"
	RiskPossible Risk = "possible"
	RiskHigh     Risk = "high"
)

// Recommendation is the suggested resolution for a cannibalization conflict.
type Recommendation string

const (
	RecommendDifferentiate Recommendation = "differentiate"
	RecommendConsolidate   Recommendation = "consolidate"
	RecommendCanonicalize  Recommendation = "canonicalize"
)

// Link is a single internal-link suggestion: anchor text plus target URL.
type Link struct {
	Anchor string `json:"anchor"`
	Target string `json:"target"`
}

// InternalLinks is the link plan attached to one brief.
// CrossCluster is reserved for future cross-linking and is always
// emitted as an empty list by the current planner.
type InternalLinks struct {
	UpToPillar   *Link  `json:"up_to_pillar,omitempty"`
	SameCluster  []Link `json:"same_cluster"`
	CrossCluster []Link `json:"cross_cluster"`
}

// Cannibalization is the risk verdict for one brief's primary keyword.
type Cannibalization struct {
	Risk           Risk                    `json:"risk"`
	Conflicts      []ExistingContentRecord `json:"conflicts,omitempty"`
	Recommendation Recommendation          `json:"recommendation,omitempty"`
	CanonicalTo    string                  `json:"canonical_to,omitempty"`
}

// BriefMetadata carries presentation hints and free-form notes.
type BriefMetadata struct {
	MinWordCount int      `json:"min_word_count,omitempty"`
	MaxWordCount int      `json:"max_word_count,omitempty"`
	Tone         string   `json:"tone,omitempty"`
	Notes        []string `json:"notes,omitempty"`
}

// Brief lifecycle status. Briefs are created as draft; later transitions
// belong to the persistence layer, not this engine.
const StatusDraft = "draft"

// ContentBrief is the primary output entity of a planning run. It is
// fully populated before being handed to persistence and never mutated
// afterwards, except for the scheduler's ScheduledFor assignment.
type ContentBrief struct {
	ID                uuid.UUID       `json:"id"`
	Title             string          `json:"title"`
	H1                string          `json:"h1"`
	URLPath           string          `json:"url_path"`
	PageType          PageType        `json:"page_type"`
	ParentCluster     string          `json:"parent_cluster,omitempty"`
	PrimaryKeyword    string          `json:"primary_keyword"`
	Intent            Intent          `json:"intent"`
	SecondaryKeywords []string        `json:"secondary_keywords"`
	InternalLinks     InternalLinks   `json:"internal_links"`
	Cannibalization   Cannibalization `json:"cannibalization"`
	Metadata          BriefMetadata   `json:"metadata"`
	ScheduledFor      time.Time       `json:"scheduled_for"`
	Status            string          `json:"status"`
}
