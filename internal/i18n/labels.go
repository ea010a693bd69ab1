// Package i18n holds the per-language label bundles used by the
// renderers. Bundles are immutable configuration values; components
// receive the bundle they should render with instead of consulting
// process-wide state.
package i18n

import "golang.org/x/text/language"

// Bundle carries every localized string one document language needs.
type Bundle struct {
	Tag language.Tag

	Summary      string
	Detail       string
	TLDR         string
	Contact      string
	Education    string
	Certificates string
	Languages    string
	Skills       string
	Interests    string

	Present   string
	Months    string
	Year      string
	Years     string
	Page      string
	Continued string

	// DegreeConjunction joins studyType and area in education entries
	// ("DUT en Génie Informatique" / "BSc in Computer Science").
	DegreeConjunction string

	// EnvironmentPrefix marks a highlight as a tech-environment line.
	EnvironmentPrefix string

	MonthAbbrevs [12]string
}

var french = &Bundle{
	Tag:               language.French,
	Summary:           "Parcours professionnel — Synthèse",
	Detail:            "Parcours professionnel — Détail",
	TLDR:              "TL;DR",
	Contact:           "Contact",
	Education:         "Formation",
	Certificates:      "Certifications",
	Languages:         "Langues",
	Skills:            "Compétences",
	Interests:         "Loisirs & Intérêts",
	Present:           "Présent",
	Months:            "mois",
	Year:              "an",
	Years:             "ans",
	Page:              "Page",
	Continued:         " (suite)",
	DegreeConjunction: " en ",
	EnvironmentPrefix: "Environnement:",
	MonthAbbrevs:      [12]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Jun", "Jul", "Août", "Sep", "Oct", "Nov", "Déc"},
}

var english = &Bundle{
	Tag:               language.English,
	Summary:           "Professional Experience — Summary",
	Detail:            "Professional Experience — Detail",
	TLDR:              "TL;DR",
	Contact:           "Contact",
	Education:         "Education",
	Certificates:      "Certifications",
	Languages:         "Languages",
	Skills:            "Skills",
	Interests:         "Interests",
	Present:           "Present",
	Months:            "months",
	Year:              "year",
	Years:             "years",
	Page:              "Page",
	Continued:         " (continued)",
	DegreeConjunction: " in ",
	EnvironmentPrefix: "Environment:",
	MonthAbbrevs:      [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

var (
	bundles = []*Bundle{french, english}
	matcher = language.NewMatcher([]language.Tag{language.French, language.English})
)

// Lookup resolves a BCP-47 language string to its bundle. Unknown or
// unparsable tags fall back to French, the source language of the
// records this tool was written for.
func Lookup(lang string) *Bundle {
	tag, err := language.Parse(lang)
	if err != nil {
		return french
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return french
	}
	return bundles[idx]
}

// Code returns the two-letter language code used in file names and the
// document's lang attribute.
func (b *Bundle) Code() string {
	base, _ := b.Tag.Base()
	return base.String()
}
