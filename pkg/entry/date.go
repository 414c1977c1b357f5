package entry

import (
	"strings"
	"time"
)

const (
	layoutISO       = "2006-01-02"
	layoutLocalTime = "2006-01-02T15:04"
	layoutUS        = "January 2, 2006"
)

var dateLayouts = []string{
	layoutISO,
	layoutLocalTime,
	time.RFC3339,
	layoutUS,
}

// ParseDate understands the date formats produced by the entry form and the
// CLI. The boolean is false for anything else.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders v as YYYY-MM-DD. Unparseable input is returned verbatim
// so the user still sees what they typed.
func FormatDate(v string) string {
	t, ok := ParseDate(v)
	if !ok {
		return v
	}
	return t.Format(layoutISO)
}
