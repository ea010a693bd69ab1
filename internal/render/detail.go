package render

import (
	"regexp"
	"strings"
	"time"

	"cvgen/internal/i18n"
)

// HighlightView is one bullet; Environment marks a tech-stack line
// that gets distinct markup.
type HighlightView struct {
	Text        string
	Environment bool
}

// ExperienceView is one engagement, ready for the detail template.
type ExperienceView struct {
	Company    string
	Mission    string
	Position   string
	Period     string
	Duration   string
	Highlights []HighlightView
}

// GroupDetail is the detail fragment for one company group; the
// paginator places these whole.
type GroupDetail struct {
	Company string
	Color   string
	Entries []ExperienceView
}

var missionRe = regexp.MustCompile(`\(([^)]+)\)`)

// extractMission pulls the parenthetical mission annotation from the
// employer name, or from the position when the position carries a
// literal Mission marker.
func extractMission(name, position string) string {
	if strings.Contains(name, "(") {
		if m := missionRe.FindStringSubmatch(name); m != nil {
			return m[1]
		}
	} else if strings.Contains(position, "Mission") {
		if m := missionRe.FindStringSubmatch(position); m != nil {
			return m[1]
		}
	}
	return ""
}

// displayPosition strips a parenthetical annotation from a role title.
func displayPosition(position string) string {
	return strings.TrimSpace(strings.SplitN(position, "(", 2)[0])
}

// splitEnvironment reports whether a highlight is an environment line
// and returns its text without the marker. The French marker is always
// recognized: translated records keep untranslated environment lines.
func splitEnvironment(h string, b *i18n.Bundle) (string, bool) {
	for _, prefix := range []string{b.EnvironmentPrefix, "Environnement:"} {
		if strings.HasPrefix(h, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(h, prefix)), true
		}
	}
	return h, false
}

// BuildGroupDetail renders one company group into its detail fragment.
// Input text is expected to be already translated/anonymized.
func BuildGroupDetail(g CompanyGroup, theme Theme, b *i18n.Bundle, now time.Time) *GroupDetail {
	out := &GroupDetail{
		Company: g.Name,
		Color:   theme.Color(g.Name),
		Entries: make([]ExperienceView, 0, len(g.Entries)),
	}
	for _, e := range g.Entries {
		view := ExperienceView{
			Company:  g.Name,
			Mission:  extractMission(e.Name, e.Position),
			Position: displayPosition(e.Position),
			Period:   b.FormatDate(e.StartDate) + " – " + b.FormatDate(e.EndDate),
			Duration: b.Duration(e.StartDate, e.EndDate, now),
		}
		for _, h := range e.Highlights {
			text, env := splitEnvironment(h, b)
			view.Highlights = append(view.Highlights, HighlightView{Text: text, Environment: env})
		}
		out.Entries = append(out.Entries, view)
	}
	return out
}
