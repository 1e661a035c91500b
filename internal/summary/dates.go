package summary

import (
	"strings"
	"time"
)

// dateLayouts are the textual date formats the spreadsheet-era records
// arrive in. The first match wins.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// NormalizeDate converts a raw date string to the sortable YYYY-MM-DD form.
// Unparseable input is returned unchanged; comparisons against such values
// are best-effort, not an error.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// InRange reports whether date falls within [from, to] after normalization.
// An empty bound is unbounded on that side.
func InRange(date, from, to string) bool {
	d := NormalizeDate(date)
	if from != "" && d < NormalizeDate(from) {
		return false
	}
	if to != "" && d > NormalizeDate(to) {
		return false
	}
	return true
}
