package render

// Default layout budget, in millimetres of estimated rendered height.
// An A4 page is 297mm; titles and margins leave roughly 255mm per
// column, and an average experience block runs about 35mm.
const (
	DefaultColumnBudget = 255.0
	DefaultEntryHeight  = 35.0
)

// Estimator guesses the rendered height of a company group. The model
// is presentation-dependent, so it stays pluggable; the default counts
// entries at a fixed average height and ignores text-length variance.
type Estimator interface {
	Estimate(g *GroupDetail) float64
}

// FixedEstimator estimates a flat height per experience entry.
type FixedEstimator struct {
	PerEntry float64
}

func (f FixedEstimator) Estimate(g *GroupDetail) float64 {
	return float64(len(g.Entries)) * f.PerEntry
}

// Page is one detail page: two columns of whole company groups.
type Page struct {
	Col1 []*GroupDetail
	Col2 []*GroupDetail
}

// Paginator packs company groups into two-column pages under a
// per-column height budget.
type Paginator struct {
	Budget    float64
	Estimator Estimator
}

// NewPaginator returns a paginator with the default budget model.
func NewPaginator() Paginator {
	return Paginator{
		Budget:    DefaultColumnBudget,
		Estimator: FixedEstimator{PerEntry: DefaultEntryHeight},
	}
}

// Paginate distributes groups greedily, in order, never splitting a
// group across a column or page. Each group goes to the column with
// the smaller accumulated height (ties favor column 1); when it would
// not fit there, the current page is closed and the group seeds column
// 1 of a fresh page. The budget is advisory: a group taller than the
// whole budget is still placed alone rather than dropped or deferred,
// and no emitted page is empty.
func (p Paginator) Paginate(groups []*GroupDetail) []Page {
	var pages []Page
	var col1, col2 []*GroupDetail
	var h1, h2 float64

	flush := func() {
		if len(col1) > 0 || len(col2) > 0 {
			pages = append(pages, Page{Col1: col1, Col2: col2})
		}
		col1, col2 = nil, nil
		h1, h2 = 0, 0
	}

	for _, g := range groups {
		h := p.Estimator.Estimate(g)
		if h1 <= h2 {
			if h1+h <= p.Budget {
				col1 = append(col1, g)
				h1 += h
				continue
			}
		} else {
			if h2+h <= p.Budget {
				col2 = append(col2, g)
				h2 += h
				continue
			}
		}
		flush()
		col1 = []*GroupDetail{g}
		h1 = h
	}
	flush()

	return pages
}
