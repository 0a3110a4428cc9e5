// Package intent labels briefs with a heuristic search intent using an
// ordered rule table evaluated with first-match-wins semantics.
package intent

import (
	"strings"

	"github.com/jonathan/content-planner/internal/types"
)

// Rule pairs a predicate with the intent it assigns. Rules are
// evaluated top-to-bottom; the first match wins. The ordering encodes
// signal strength (comparison/pricing markers beat generic how-to
// phrasing) and must stay stable for reproducible batches.
type Rule struct {
	Name  string
	Match func(title string, format *types.ArticleFormat) bool
	Label types.Intent
}

var comparisonMarkers = []string{"vs", "versus", "compare", "comparison"}

var pricingMarkers = []string{"pricing", "price", "prices", "cost", "costs", "rate", "rates", "quote", "quotes"}

var commercialMarkers = []string{"supplier", "suppliers", "buy", "wholesale", "order", "request"}

var informationalFormats = map[string]bool{
	"how-to":         true,
	"faq":            true,
	"guide":          true,
	"beginner-guide": true,
}

// DefaultLocationMarkers is the built-in place-name phrase list; sites
// override it via configuration.
var DefaultLocationMarkers = []string{
	"near me", "in usa", "in the us", "in uk", "in europe", "in canada", "in australia",
}

// tokenize splits a lower-cased title into words, stripping edge
// punctuation so "vs." and "cost?" still match their markers.
func tokenize(title string) []string {
	fields := strings.Fields(title)
	for i, f := range fields {
		fields[i] = strings.Trim(f, ".,:;?!()\"'")
	}
	return fields
}

func hasToken(tokens []string, markers []string) bool {
	for _, tok := range tokens {
		for _, m := range markers {
			if tok == m {
				return true
			}
		}
	}
	return false
}

func hasPhrase(title string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(title, p) {
			return true
		}
	}
	return false
}

// DefaultRules builds the standard rule table. The locationMarkers
// argument replaces the built-in place-name list when non-nil.
func DefaultRules(locationMarkers []string) []Rule {
	if locationMarkers == nil {
		locationMarkers = DefaultLocationMarkers
	}
	return []Rule{
		{
			Name: "comparison",
			Match: func(title string, format *types.ArticleFormat) bool {
				if format != nil && format.Type == "comparison" {
					return true
				}
				return hasToken(tokenize(title), comparisonMarkers)
			},
			Label: types.IntentComparison,
		},
		{
			Name: "pricing",
			Match: func(title string, _ *types.ArticleFormat) bool {
				return hasToken(tokenize(title), pricingMarkers)
			},
			Label: types.IntentPricing,
		},
		{
			Name: "location",
			Match: func(title string, _ *types.ArticleFormat) bool {
				return hasPhrase(title, locationMarkers)
			},
			Label: types.IntentLocation,
		},
		{
			Name: "informational-format",
			Match: func(_ string, format *types.ArticleFormat) bool {
				return format != nil && informationalFormats[format.Type]
			},
			Label: types.IntentInformational,
		},
		{
			Name: "transactional",
			Match: func(title string, _ *types.ArticleFormat) bool {
				return hasToken(tokenize(title), commercialMarkers)
			},
			Label: types.IntentTransactional,
		},
	}
}

// Classify runs the rule table against a candidate's title and format
// hint. Unmatched candidates default to informational.
func Classify(title string, format *types.ArticleFormat, rules []Rule) types.Intent {
	lowered := strings.ToLower(title)
	for _, rule := range rules {
		if rule.Match(lowered, format) {
			return rule.Label
		}
	}
	return types.IntentInformational
}
