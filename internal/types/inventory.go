package types

// KeywordRecord is one row of the site's existing keyword inventory.
// It is a read-only snapshot for a single planning run.
type KeywordRecord struct {
	Keyword string `json:"keyword"`
	Type    string `json:"type,omitempty"` // e.g., primary, secondary, tracked
	Cluster string `json:"cluster,omitempty"`
}

// ExistingContentRecord describes a page the site has already published
// (or at least briefed) within a cluster. Used to detect conflicts and
// to source internal-link targets.
type ExistingContentRecord struct {
	Cluster        string `json:"cluster"`
	Title          string `json:"title"`
	URL            string `json:"url,omitempty"`
	PrimaryKeyword string `json:"primary_keyword,omitempty"`
}
