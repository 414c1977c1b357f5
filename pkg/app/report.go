package app

import (
	"time"

	"tableflip.dev/timeline/pkg/entry"
)

// ReportSection groups entries that fall in one calendar month.
type ReportSection struct {
	Month   time.Time
	Entries []*entry.Entry
}

// ReportResult holds the entries dated inside a window, grouped by month.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	Total    int
	// Undated counts entries whose date could not be parsed. They never
	// fall inside a window.
	Undated int
}

// Report returns the entries dated between since and until, inclusive,
// grouped by month in timeline order.
func (t *Timeline) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	result := ReportResult{Since: since, Until: until}

	for _, e := range t.Entries() {
		when, ok := e.When()
		if !ok {
			result.Undated++
			continue
		}
		if when.Before(since) || when.After(until) {
			continue
		}
		month := time.Date(when.Year(), when.Month(), 1, 0, 0, 0, 0, when.Location())
		if n := len(result.Sections); n == 0 || !result.Sections[n-1].Month.Equal(month) {
			result.Sections = append(result.Sections, ReportSection{Month: month})
		}
		last := &result.Sections[len(result.Sections)-1]
		last.Entries = append(last.Entries, e)
		result.Total++
	}
	return result
}
