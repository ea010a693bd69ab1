package i18n

import (
	"fmt"
	"time"
)

// parseYearMonth parses the YYYY-MM convention used by resume dates.
func parseYearMonth(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a YYYY-MM date for display. An empty date means
// the engagement is ongoing and renders as the Present label. A date
// that does not parse is returned unchanged: resume data regularly
// carries partial or legacy date strings and those must never be fatal.
func (b *Bundle) FormatDate(date string) string {
	if date == "" {
		return b.Present
	}
	t, ok := parseYearMonth(date)
	if !ok {
		return date
	}
	return fmt.Sprintf("%s %d", b.MonthAbbrevs[int(t.Month())-1], t.Year())
}

// Duration renders the elapsed time between two YYYY-MM dates. An
// empty end date counts up to now. An unparsable start yields an empty
// string; an unparsable end falls back to now as well.
func (b *Bundle) Duration(start, end string, now time.Time) string {
	startT, ok := parseYearMonth(start)
	if !ok {
		return ""
	}
	endT := now
	if end != "" {
		if t, ok := parseYearMonth(end); ok {
			endT = t
		}
	}

	months := (endT.Year()-startT.Year())*12 + int(endT.Month()) - int(startT.Month())
	years := months / 12
	rem := months % 12

	yearWord := b.Years
	if years == 1 {
		yearWord = b.Year
	}

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", rem, b.Months)
	case rem == 0:
		return fmt.Sprintf("%d %s", years, yearWord)
	default:
		return fmt.Sprintf("%d %s %d %s", years, yearWord, rem, b.Months)
	}
}
