package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	r, err := Parse([]byte(`{
		"basics": {"name": "Jean Dupont"},
		"work": [{"name": "SFEIR", "position": "Dev", "highlights": ["a", "b"]}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", r.Basics.Name)
	require.Len(t, r.Work, 1)
	assert.Equal(t, []string{"a", "b"}, r.Work[0].Highlights)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"basics":`))
	assert.ErrorContains(t, err, "invalid resume JSON")
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing basics", `{"work": []}`},
		{"missing name", `{"basics": {"label": "Dev"}}`},
		{"work entry without position", `{"basics": {"name": "X"}, "work": [{"name": "SFEIR"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.ErrorContains(t, err, "schema validation failed")
		})
	}
}
