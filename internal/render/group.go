package render

import (
	"regexp"
	"strings"

	"cvgen/internal/model"
)

// CompanyGroup is the work entries of one employer, in source order.
type CompanyGroup struct {
	Name    string
	Entries []model.WorkEntry
}

var parenRe = regexp.MustCompile(`\s*\([^)]*\)`)

// NormalizeCompany strips any parenthetical mission annotation from an
// employer name and trims the result. This is the grouping key.
func NormalizeCompany(name string) string {
	return strings.TrimSpace(parenRe.ReplaceAllString(name, ""))
}

// GroupByCompany partitions work entries by normalized employer name.
// Groups appear in first-seen order and keep their entries in source
// order; no entry is dropped. Entries with an empty employer name form
// their own group keyed by the empty string.
func GroupByCompany(entries []model.WorkEntry) []CompanyGroup {
	index := make(map[string]int, len(entries))
	var groups []CompanyGroup
	for _, e := range entries {
		key := NormalizeCompany(e.Name)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CompanyGroup{Name: key})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
