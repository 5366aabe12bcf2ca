package portfolio

import "time"

// dateLayouts are the accepted forms for profile date strings, most
// specific first.
var dateLayouts = []string{"2006-01-02", "2006-01", "Jan 2006", "2006"}

// parseDate parses a profile date string. Returns false for empty or
// unparseable input.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// endOrNow resolves an experience end date: empty or unparseable means
// the position is ongoing, so "now" applies.
func endOrNow(endDate string, now time.Time) time.Time {
	if t, ok := parseDate(endDate); ok {
		return t
	}
	return now
}

// monthsBetween returns whole months from a to b, clamped at zero.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months < 0 {
		return 0
	}
	return months
}

// experienceYears sums the duration of all experience entries in months
// and converts to years, rounded to the nearest integer.
func experienceYears(entries []Experience, now time.Time) int {
	totalMonths := 0
	for _, e := range entries {
		start, ok := parseDate(e.StartDate)
		if !ok {
			continue
		}
		totalMonths += monthsBetween(start, endOrNow(e.EndDate, now))
	}
	return (totalMonths + 6) / 12
}
