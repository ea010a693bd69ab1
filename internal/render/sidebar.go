package render

import (
	"strings"

	"cvgen/internal/i18n"
	"cvgen/internal/model"
)

// ContactItem is one line in the contact block; Link distinguishes
// anchors from plain text.
type ContactItem struct {
	Text string
	Link bool
}

type SkillGroupView struct {
	Name     string
	Keywords string
}

type EducationView struct {
	Degree      string
	Institution string
	Span        string
}

type CertificateView struct {
	Name string
	Year string
}

type LanguageView struct {
	Language string
	Fluency  string
}

type InterestView struct {
	Name     string
	Keywords string
}

// Sidebar is the per-page identity/contact column. Empty slices mean
// the corresponding sub-section is omitted entirely.
type Sidebar struct {
	Photo        string
	Name         string
	NameLines    []string
	TitleLines   []string
	Contact      []ContactItem
	Skills       []SkillGroupView
	Education    []EducationView
	Certificates []CertificateView
	Languages    []LanguageView
	Interests    []InterestView
}

// recognizedNetworks maps a profile network to its public URL prefix.
// The sidebar shows at most one link per recognized network.
var recognizedNetworks = map[string]string{
	"LinkedIn": "linkedin.com/in/",
	"GitHub":   "github.com/",
}

// BuildSidebar assembles the sidebar view from an already
// anonymized/translated record. Phone and email render only when
// present; the anonymization pass clears them, so no flag is needed
// here.
func BuildSidebar(r *model.Resume, b *i18n.Bundle) Sidebar {
	basics := r.Basics

	sb := Sidebar{
		Photo:      basics.Image,
		Name:       basics.Name,
		NameLines:  strings.Fields(basics.Name),
		TitleLines: splitNonEmpty(basics.Label, " / "),
	}

	if basics.Phone != "" {
		sb.Contact = append(sb.Contact, ContactItem{Text: basics.Phone})
	}
	if basics.Email != "" {
		sb.Contact = append(sb.Contact, ContactItem{Text: basics.Email})
	}
	if basics.URL != "" {
		url := strings.TrimPrefix(strings.TrimPrefix(basics.URL, "https://"), "http://")
		sb.Contact = append(sb.Contact, ContactItem{Text: url, Link: true})
	}
	linked := map[string]bool{}
	for _, p := range basics.Profiles {
		prefix, ok := recognizedNetworks[p.Network]
		if !ok || p.Username == "" || linked[p.Network] {
			continue
		}
		linked[p.Network] = true
		sb.Contact = append(sb.Contact, ContactItem{Text: prefix + p.Username, Link: true})
	}
	if basics.Location != nil && basics.Location.City != "" {
		loc := basics.Location.City
		if basics.Location.Region != "" {
			loc += ", " + basics.Location.Region
		}
		sb.Contact = append(sb.Contact, ContactItem{Text: loc})
	}

	for _, s := range r.Skills {
		sb.Skills = append(sb.Skills, SkillGroupView{
			Name:     s.Name,
			Keywords: strings.Join(s.Keywords, ", "),
		})
	}

	for _, e := range r.Education {
		degree := e.StudyType
		switch {
		case e.StudyType != "" && e.Area != "":
			degree = e.StudyType + b.DegreeConjunction + e.Area
		case e.StudyType == "":
			degree = e.Area
		}
		span := ""
		if e.StartDate != "" || e.EndDate != "" {
			span = e.StartDate + "–" + e.EndDate
		}
		sb.Education = append(sb.Education, EducationView{
			Degree:      degree,
			Institution: e.Institution,
			Span:        span,
		})
	}

	for _, c := range r.Certificates {
		year := ""
		if c.Date != "" {
			year = strings.SplitN(c.Date, "-", 2)[0]
		}
		sb.Certificates = append(sb.Certificates, CertificateView{Name: c.Name, Year: year})
	}

	for _, l := range r.Languages {
		sb.Languages = append(sb.Languages, LanguageView{Language: l.Language, Fluency: l.Fluency})
	}

	for _, in := range r.Interests {
		sb.Interests = append(sb.Interests, InterestView{
			Name:     in.Name,
			Keywords: strings.Join(in.Keywords, ", "),
		})
	}

	return sb
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
