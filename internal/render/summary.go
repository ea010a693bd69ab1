package render

import (
	"strings"
	"time"

	"cvgen/internal/i18n"
)

// CompanyCard is the page-1 rollup for one company group.
type CompanyCard struct {
	Company  string
	Color    string
	Logo     string
	Period   string
	Duration string
	Roles    string
	Snippets []string
}

const maxCardSnippets = 3

// groupSpan derives the overall engagement span of a group: the
// earliest start across members, and the latest end — or ongoing
// (empty) when any member is still open-ended.
func groupSpan(g CompanyGroup) (start, end string) {
	ongoing := false
	for _, e := range g.Entries {
		if e.StartDate != "" && (start == "" || e.StartDate < start) {
			start = e.StartDate
		}
		if e.EndDate == "" {
			ongoing = true
		} else if e.EndDate > end {
			end = e.EndDate
		}
	}
	if ongoing {
		end = ""
	}
	return start, end
}

// BuildCompanyCard renders one company group into its summary card:
// span and duration over the whole group, role titles deduplicated in
// first-seen order, and at most three description snippets drawn from
// each entry's summary plus up to two of its non-environment
// highlights.
func BuildCompanyCard(g CompanyGroup, theme Theme, b *i18n.Bundle, now time.Time) CompanyCard {
	start, end := groupSpan(g)

	var roles []string
	seen := map[string]bool{}
	for _, e := range g.Entries {
		r := displayPosition(e.Position)
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}

	var snippets []string
	for _, e := range g.Entries {
		if e.Summary != "" {
			snippets = append(snippets, e.Summary)
		}
		taken := 0
		for _, h := range e.Highlights {
			if _, env := splitEnvironment(h, b); env {
				continue
			}
			snippets = append(snippets, h)
			taken++
			if taken == 2 {
				break
			}
		}
	}
	if len(snippets) > maxCardSnippets {
		snippets = snippets[:maxCardSnippets]
	}

	return CompanyCard{
		Company:  g.Name,
		Color:    theme.Color(g.Name),
		Logo:     theme.Logo(g.Name),
		Period:   b.FormatDate(start) + " – " + b.FormatDate(end),
		Duration: b.Duration(start, end, now),
		Roles:    strings.Join(roles, " • "),
		Snippets: snippets,
	}
}
