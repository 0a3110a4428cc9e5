package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/content-planner/internal/types"
)

func TestClassify(t *testing.T) {
	rules := DefaultRules(nil)

	tests := []struct {
		name     string
		title    string
		format   *types.ArticleFormat
		expected types.Intent
	}{
		{"vs marker", "HubSpot vs Salesforce for Small Teams", nil, types.IntentComparison},
		{"vs with period", "Mailchimp vs. Constant Contact", nil, types.IntentComparison},
		{"comparison format hint", "Best CRM Options", &types.ArticleFormat{Type: "comparison"}, types.IntentComparison},
		{"pricing marker", "Freight Forwarding Rates Explained", nil, types.IntentPricing},
		{"cost marker", "How Much Does a Warehouse Cost?", nil, types.IntentPricing},
		{"location phrase", "Coffee Roasters Near Me", nil, types.IntentLocation},
		{"how-to format", "Setting Up Drip Campaigns", &types.ArticleFormat{Type: "how-to"}, types.IntentInformational},
		{"guide format", "Email Deliverability", &types.ArticleFormat{Type: "guide"}, types.IntentInformational},
		{"supplier marker", "Finding a Green Coffee Supplier", nil, types.IntentTransactional},
		{"wholesale marker", "Wholesale Packaging Materials", nil, types.IntentTransactional},
		{"default informational", "The History of Espresso", nil, types.IntentInformational},
		{"rate token does not match inside words", "Corporate Email Templates", nil, types.IntentInformational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.title, tt.format, rules))
		})
	}
}

func TestClassify_OrderingIsFirstMatchWins(t *testing.T) {
	rules := DefaultRules(nil)

	// Carries both a comparison and a pricing signal; comparison is the
	// stronger rule and sits higher in the table.
	got := Classify("HubSpot vs Salesforce Pricing", nil, rules)
	assert.Equal(t, types.IntentComparison, got)

	// Pricing beats a how-to format hint.
	got = Classify("CRM Pricing Breakdown", &types.ArticleFormat{Type: "how-to"}, rules)
	assert.Equal(t, types.IntentPricing, got)
}

func TestClassify_CustomLocationMarkers(t *testing.T) {
	rules := DefaultRules([]string{"in toronto"})

	assert.Equal(t, types.IntentLocation, Classify("Best Coffee Shops in Toronto", nil, rules))
	// The built-in list is replaced, not extended.
	assert.Equal(t, types.IntentInformational, Classify("Coffee Shops Near Me Today", nil, rules))
}
