package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// groupOf builds a GroupDetail with n placeholder entries, so the
// fixed estimator sees n×PerEntry of height.
func groupOf(name string, n int) *GroupDetail {
	g := &GroupDetail{Company: name}
	for i := 0; i < n; i++ {
		g.Entries = append(g.Entries, ExperienceView{Company: name})
	}
	return g
}

func placedGroups(pages []Page) []string {
	var names []string
	for _, p := range pages {
		for _, g := range p.Col1 {
			names = append(names, g.Company)
		}
		for _, g := range p.Col2 {
			names = append(names, g.Company)
		}
	}
	return names
}

func TestPaginateEmpty(t *testing.T) {
	p := NewPaginator()
	assert.Empty(t, p.Paginate(nil))
}

func TestPaginateSingleGroup(t *testing.T) {
	p := NewPaginator()
	pages := p.Paginate([]*GroupDetail{groupOf("A", 2)})
	assert.Len(t, pages, 1)
	assert.Len(t, pages[0].Col1, 1)
	assert.Empty(t, pages[0].Col2)
}

func TestPaginateBalancesColumns(t *testing.T) {
	p := Paginator{Budget: 100, Estimator: FixedEstimator{PerEntry: 10}}
	// heights: 30, 30, 20
	pages := p.Paginate([]*GroupDetail{groupOf("A", 3), groupOf("B", 3), groupOf("C", 2)})

	assert.Len(t, pages, 1)
	// A seeds col1, B goes to the then-empty col2, and the 30/30 tie
	// sends C back to col1
	assert.Equal(t, []string{"A", "C"}, []string{pages[0].Col1[0].Company, pages[0].Col1[1].Company})
	assert.Equal(t, "B", pages[0].Col2[0].Company)
}

func TestPaginateOverflowStartsNewPage(t *testing.T) {
	p := Paginator{Budget: 50, Estimator: FixedEstimator{PerEntry: 10}}
	// heights: 40, 40, 40 — third fits in neither column of page 1
	pages := p.Paginate([]*GroupDetail{groupOf("A", 4), groupOf("B", 4), groupOf("C", 4)})

	assert.Len(t, pages, 2)
	assert.Equal(t, "A", pages[0].Col1[0].Company)
	assert.Equal(t, "B", pages[0].Col2[0].Company)
	assert.Equal(t, "C", pages[1].Col1[0].Company)
	assert.Empty(t, pages[1].Col2)
}

func TestPaginateOversizedGroupStillPlaced(t *testing.T) {
	p := Paginator{Budget: 50, Estimator: FixedEstimator{PerEntry: 10}}
	// single group taller than the budget: one page, one column, never
	// dropped or deferred, and no empty page emitted before it
	pages := p.Paginate([]*GroupDetail{groupOf("A", 9)})

	assert.Len(t, pages, 1)
	assert.Len(t, pages[0].Col1, 1)
	assert.Empty(t, pages[0].Col2)
}

func TestPaginateNeverSplitsAndCoversAll(t *testing.T) {
	p := Paginator{Budget: 70, Estimator: FixedEstimator{PerEntry: 10}}

	sizes := []int{1, 5, 3, 8, 2, 2, 6, 1, 4, 7}
	var groups []*GroupDetail
	var want []string
	for i, n := range sizes {
		name := string(rune('A' + i))
		groups = append(groups, groupOf(name, n))
		want = append(want, name)
	}

	pages := p.Paginate(groups)

	// every group placed exactly once, no page empty
	assert.ElementsMatch(t, want, placedGroups(pages))
	for i, pg := range pages {
		assert.True(t, len(pg.Col1) > 0 || len(pg.Col2) > 0, "page %d is empty", i)
	}
}

func TestPaginateDeterministic(t *testing.T) {
	p := NewPaginator()
	groups := []*GroupDetail{groupOf("A", 3), groupOf("B", 5), groupOf("C", 2), groupOf("D", 4)}
	assert.Equal(t, p.Paginate(groups), p.Paginate(groups))
}
