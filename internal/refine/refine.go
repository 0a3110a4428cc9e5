// Package refine normalizes the human-facing title and URL path of a
// brief: slugging, title casing, and site-specific naming suffixes.
package refine

import (
	"strings"
	"unicode"
)

// NamingRule appends a suffix to refined titles when the cluster label
// contains its trigger. Rules are site configuration, not engine logic.
type NamingRule struct {
	ClusterContains string `yaml:"cluster_contains"`
	TitleSuffix     string `yaml:"title_suffix"`
}

// Slugify turns free text into a URL path segment: lower-cased, "&"
// becomes "and", non-alphanumerics stripped except hyphens, whitespace
// collapsed to single hyphens, repeated hyphens collapsed. Slugging is
// idempotent: slug-like input passes through unchanged.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune('-')
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// URLPath builds the canonical path /{cluster-slug}/{page-slug}. The
// page slug prefers the primary keyword and falls back to the title; an
// empty cluster yields a single-segment path.
func URLPath(cluster, primary, title string) string {
	page := Slugify(primary)
	if page == "" {
		page = Slugify(title)
	}

	clusterSlug := Slugify(cluster)
	if clusterSlug == "" {
		return "/" + page
	}
	return "/" + clusterSlug + "/" + page
}

// Title polishes the human-facing title: a title-cased primary keyword
// when available, then a title-cased cluster label, otherwise the
// original candidate title unchanged. A matching naming rule appends
// its site-specific suffix.
func Title(original, primary, cluster string, rules []NamingRule) string {
	refined := titleCase(primary)
	if refined == "" {
		refined = titleCase(cluster)
	}
	if refined == "" {
		refined = original
	}

	lowerCluster := strings.ToLower(cluster)
	for _, rule := range rules {
		if rule.ClusterContains == "" || rule.TitleSuffix == "" {
			continue
		}
		if strings.Contains(lowerCluster, strings.ToLower(rule.ClusterContains)) {
			refined += rule.TitleSuffix
			break
		}
	}
	return refined
}

// smallWords stay lower-case mid-title.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "for": true, "in": true, "of": true, "on": true, "or": true,
	"the": true, "to": true, "vs": true, "with": true,
}

func titleCase(text string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	for i, f := range fields {
		if i > 0 && smallWords[f] {
			continue
		}
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
