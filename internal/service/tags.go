package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// normalizeTag folds a tag to its stored form: NFKC, trimmed, lower case.
func normalizeTag(tag string) string {
	tag = strings.TrimSpace(norm.NFKC.String(tag))
	return cases.Lower(language.Und).String(tag)
}

// normalizeTags normalises every tag and drops empty and repeated ones,
// keeping the first occurrence order.
func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		tag = normalizeTag(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}
