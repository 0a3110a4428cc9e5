package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"basic", "Email Marketing Software", "email-marketing-software"},
		{"ampersand", "Shipping & Handling", "shipping-and-handling"},
		{"punctuation stripped", "What's the Cost? (2026)", "whats-the-cost-2026"},
		{"whitespace runs", "green   coffee\tsupplier", "green-coffee-supplier"},
		{"repeated hyphens collapse", "a -- b", "a-b"},
		{"edge hyphens trimmed", " -trailing- ", "trailing"},
		{"empty", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Email Marketing Software", "shipping-and-handling", "crm-software-overview"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugifying twice must be a no-op for %q", in)
	}
}

func TestURLPath(t *testing.T) {
	assert.Equal(t, "/marketing-tools/email-marketing-software",
		URLPath("Marketing Tools", "email marketing software", "ignored"))

	// Falls back to the title when there is no primary.
	assert.Equal(t, "/marketing-tools/drip-campaign-basics",
		URLPath("marketing-tools", "", "Drip Campaign Basics"))

	// Uncategorized briefs get a single-segment path.
	assert.Equal(t, "/standalone-page", URLPath("", "standalone page", ""))
}

func TestTitle(t *testing.T) {
	// Prefers a title-cased primary keyword.
	assert.Equal(t, "Email Marketing Software",
		Title("original title", "email marketing software", "marketing-tools", nil))

	// Small words stay lower-case mid-title.
	assert.Equal(t, "How to Import Coffee",
		Title("", "how to import coffee", "", nil))

	// Falls back to the cluster label, then the original.
	assert.Equal(t, "Marketing Tools", Title("original", "", "marketing tools", nil))
	assert.Equal(t, "Original Kept As-Is", Title("Original Kept As-Is", "", "", nil))
}

func TestTitle_NamingRules(t *testing.T) {
	rules := []NamingRule{
		{ClusterContains: "coffee", TitleSuffix: " | Roast House"},
		{ClusterContains: "logistics", TitleSuffix: " | Freight Desk"},
	}

	got := Title("", "green coffee supplier", "Coffee Sourcing", rules)
	assert.Equal(t, "Green Coffee Supplier | Roast House", got)

	// Only the first matching rule applies.
	got = Title("", "freight rates", "coffee logistics", rules)
	assert.Equal(t, "Freight Rates | Roast House", got)

	// No match, no suffix.
	got = Title("", "crm software", "sales-tools", rules)
	assert.Equal(t, "Crm Software", got)
}
