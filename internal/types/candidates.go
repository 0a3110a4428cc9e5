// Package types provides type definitions for structured data used throughout the content-planner system.
package types

import "strings"

// ArticleFormat hints at the shape of the article a candidate should become.
type ArticleFormat struct {
	Type         string `json:"type,omitempty"`           // e.g., how-to, faq, guide, comparison, listicle
	MinWordCount int    `json:"min_word_count,omitempty"` // recommended lower bound
	MaxWordCount int    `json:"max_word_count,omitempty"` // recommended upper bound
}

// TopicCandidate is a raw topic idea supplied by an external idea source.
// Candidates are immutable input and are consumed once per planning run.
type TopicCandidate struct {
	Title       string         `json:"title"`
	ParentTopic string         `json:"parent_topic,omitempty"`
	Keywords    []string       `json:"keywords,omitempty"`
	Queries     []string       `json:"queries,omitempty"`
	Format      *ArticleFormat `json:"format,omitempty"`
}

// IsEmpty reports whether a candidate carries no usable signal at all
// (no title and no keyword or query material). Such candidates are
// skipped with a warning rather than aborting the batch.
func (c *TopicCandidate) IsEmpty() bool {
	if strings.TrimSpace(c.Title) != "" {
		return false
	}
	for _, k := range c.Keywords {
		if strings.TrimSpace(k) != "" {
			return false
		}
	}
	for _, q := range c.Queries {
		if strings.TrimSpace(q) != "" {
			return false
		}
	}
	return true
}
