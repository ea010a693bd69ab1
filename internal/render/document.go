package render

import (
	"strings"
	"time"

	"cvgen/internal/i18n"
	"cvgen/internal/model"
)

// DetailPage is one rendered two-column page; page 1 is the summary,
// so detail numbering starts at 2 and pages after the first detail
// page carry the continued suffix.
type DetailPage struct {
	Number    int
	Continued bool
	Col1      []*GroupDetail
	Col2      []*GroupDetail
}

// Document is the fully derived view of one resume in one language.
// It is consumed once by the assembler and not retained.
type Document struct {
	Lang    string
	Name    string
	Labels  *i18n.Bundle
	Sidebar Sidebar
	TLDR    []string
	Cards   []CompanyCard
	Pages   []DetailPage
}

// BuildDocument derives every view the templates need from a record.
// Anonymization, when requested, must already have happened: this is
// the first point where work-entry text becomes display text.
func BuildDocument(r *model.Resume, theme Theme, b *i18n.Bundle, now time.Time, p Paginator) *Document {
	groups := GroupByCompany(r.Work)

	cards := make([]CompanyCard, 0, len(groups))
	details := make([]*GroupDetail, 0, len(groups))
	for _, g := range groups {
		cards = append(cards, BuildCompanyCard(g, theme, b, now))
		details = append(details, BuildGroupDetail(g, theme, b, now))
	}

	var pages []DetailPage
	for i, pg := range p.Paginate(details) {
		pages = append(pages, DetailPage{
			Number:    i + 2,
			Continued: i > 0,
			Col1:      pg.Col1,
			Col2:      pg.Col2,
		})
	}

	return &Document{
		Lang:    b.Code(),
		Name:    r.Basics.Name,
		Labels:  b,
		Sidebar: BuildSidebar(r, b),
		TLDR:    paragraphs(r.Basics.Summary),
		Cards:   cards,
		Pages:   pages,
	}
}

// paragraphs splits a bio summary into sentence paragraphs.
func paragraphs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ". ")
	for i := 0; i < len(parts)-1; i++ {
		parts[i] += "."
	}
	return parts
}
