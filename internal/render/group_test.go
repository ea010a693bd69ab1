package render

import (
	"testing"

	"cvgen/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SFEIR (Mission Canal+)", "SFEIR"},
		{"SFEIR", "SFEIR"},
		{"  Mixdata  ", "Mixdata"},
		{"Viseo Technologies (Groupama) ", "Viseo Technologies"},
		{"", ""},
		{"(orphan annotation)", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCompany(tt.in), "input %q", tt.in)
	}
}

func TestGroupByCompany(t *testing.T) {
	entries := []model.WorkEntry{
		{Name: "SFEIR (Mission A)", Position: "Dev"},
		{Name: "Mixdata", Position: "Lead"},
		{Name: "SFEIR (Mission B)", Position: "Architect"},
		{Name: "Canal+", Position: "Dev"},
		{Name: "SFEIR", Position: "Dev"},
	}

	groups := GroupByCompany(entries)

	// first-seen order
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"SFEIR", "Mixdata", "Canal+"}, names)

	// cardinality preserved
	total := 0
	for _, g := range groups {
		total += len(g.Entries)
	}
	assert.Equal(t, len(entries), total)

	// entries keep source order within their group
	assert.Equal(t, "Dev", groups[0].Entries[0].Position)
	assert.Equal(t, "Architect", groups[0].Entries[1].Position)
	assert.Equal(t, "Dev", groups[0].Entries[2].Position)
}

func TestGroupByCompanyEmptyName(t *testing.T) {
	groups := GroupByCompany([]model.WorkEntry{
		{Name: "", Position: "Freelance"},
		{Name: "(annotation only)", Position: "Consultant"},
	})
	// both normalize to the empty key and share one group
	assert.Len(t, groups, 1)
	assert.Equal(t, "", groups[0].Name)
	assert.Len(t, groups[0].Entries, 2)
}

func TestGroupByCompanyEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByCompany(nil))
}
