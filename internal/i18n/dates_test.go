package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestFormatDate(t *testing.T) {
	en := Lookup("en")
	fr := Lookup("fr")

	tests := []struct {
		name   string
		bundle *Bundle
		in     string
		want   string
	}{
		{"english month", en, "2020-01", "Jan 2020"},
		{"french month", fr, "2020-08", "Août 2020"},
		{"december", en, "2021-12", "Dec 2021"},
		{"empty is present", en, "", "Present"},
		{"empty is present fr", fr, "", "Présent"},
		{"malformed passes through", en, "2020", "2020"},
		{"month out of range passes through", en, "2020-13", "2020-13"},
		{"garbage passes through", en, "whenever", "whenever"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bundle.FormatDate(tt.in))
		})
	}
}

func TestDuration(t *testing.T) {
	en := Lookup("en")
	fr := Lookup("fr")

	tests := []struct {
		name       string
		bundle     *Bundle
		start, end string
		want       string
	}{
		{"years and months", en, "2020-01", "2021-07", "1 year 6 months"},
		{"exactly one year", en, "2020-01", "2021-01", "1 year"},
		{"months only", en, "2020-01", "2020-04", "3 months"},
		{"plural years", en, "2018-03", "2021-03", "3 years"},
		{"plural years with months", en, "2018-01", "2021-07", "3 years 6 months"},
		{"french singular year", fr, "2020-01", "2021-01", "1 an"},
		{"french plural years", fr, "2018-01", "2021-01", "3 ans"},
		{"french months", fr, "2020-01", "2020-04", "3 mois"},
		{"malformed start is empty", en, "early 2020", "2021-01", ""},
		{"empty start is empty", en, "", "2021-01", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bundle.Duration(tt.start, tt.end, testNow))
		})
	}
}

func TestDurationOngoing(t *testing.T) {
	en := Lookup("en")
	// empty end counts up to the supplied clock
	assert.Equal(t, "1 year 5 months", en.Duration("2024-01", "", testNow))
	// malformed end also falls back to the clock
	assert.Equal(t, "5 months", en.Duration("2025-01", "ongoing", testNow))
}

func TestLookupFallback(t *testing.T) {
	assert.Same(t, Lookup("fr"), Lookup("zz-not-a-tag"))
	assert.Same(t, Lookup("fr"), Lookup(""))
	assert.Same(t, Lookup("en"), Lookup("en-US"))
	assert.Same(t, Lookup("fr"), Lookup("fr-FR"))
}

func TestBundleCode(t *testing.T) {
	assert.Equal(t, "en", Lookup("en").Code())
	assert.Equal(t, "fr", Lookup("fr").Code())
}
