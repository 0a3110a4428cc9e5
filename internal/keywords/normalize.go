// Package keywords implements primary keyword allocation and secondary
// keyword selection for a planning batch.
package keywords

import "strings"

// Normalize lower-cases and trims a keyword and collapses immediately
// repeated tokens ("importer importer license" -> "importer license").
// The collapse guards against duplication artifacts from upstream
// candidate generation.
func Normalize(raw string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return ""
	}

	collapsed := fields[:1]
	for _, tok := range fields[1:] {
		if tok != collapsed[len(collapsed)-1] {
			collapsed = append(collapsed, tok)
		}
	}
	return strings.Join(collapsed, " ")
}

// NormalizeAll normalizes every value and drops empties, preserving order.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if n := Normalize(r); n != "" {
			out = append(out, n)
		}
	}
	return out
}
