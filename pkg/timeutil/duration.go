package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback report window used when none is provided.
	DefaultWindow = "1y"
)

// Window is a calendar span. Months and years are applied with time.AddDate,
// not as fixed durations.
type Window struct {
	Years  int
	Months int
	Days   int
}

type unit int

const (
	unitDay unit = iota
	unitWeek
	unitMonth
	unitYear
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]unit{
		"d":      unitDay,
		"day":    unitDay,
		"days":   unitDay,
		"w":      unitWeek,
		"wk":     unitWeek,
		"wks":    unitWeek,
		"week":   unitWeek,
		"weeks":  unitWeek,
		"m":      unitMonth,
		"mo":     unitMonth,
		"mos":    unitMonth,
		"month":  unitMonth,
		"months": unitMonth,
		"y":      unitYear,
		"yr":     unitYear,
		"yrs":    unitYear,
		"year":   unitYear,
		"years":  unitYear,
	}
)

// ParseWindow parses a human-friendly span (for example "1y", "3m", or
// "1y2m10d") and returns it along with a canonical, compact representation.
// When the input is empty, the default window of one year is used.
func ParseWindow(input string) (Window, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	var w Window
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.Atoi(valueStr)
		if err != nil {
			return Window{}, "", fmt.Errorf("invalid window value %q: %w", valueStr, err)
		}
		u, ok := unitMap[unitStr]
		if !ok {
			return Window{}, "", fmt.Errorf("unsupported window unit %q", unitStr)
		}
		switch u {
		case unitDay:
			w.Days += value
		case unitWeek:
			w.Days += 7 * value
		case unitMonth:
			w.Months += value
		case unitYear:
			w.Years += value
		}

		remaining = remaining[len(matches[0]):]
	}

	w = w.normalize()
	if w.IsZero() {
		return Window{}, "", fmt.Errorf("window must be greater than zero")
	}

	return w, FormatWindow(w), nil
}

func (w Window) normalize() Window {
	w.Years += w.Months / 12
	w.Months %= 12
	return w
}

// IsZero reports whether the window spans nothing.
func (w Window) IsZero() bool {
	return w.Years == 0 && w.Months == 0 && w.Days == 0
}

// Before returns the start of the window that ends at t.
func (w Window) Before(t time.Time) time.Time {
	return t.AddDate(-w.Years, -w.Months, -w.Days)
}

// FormatWindow renders a window using year/month/week/day tokens.
func FormatWindow(w Window) string {
	w = w.normalize()
	var parts []string
	if w.Years > 0 {
		parts = append(parts, fmt.Sprintf("%dy", w.Years))
	}
	if w.Months > 0 {
		parts = append(parts, fmt.Sprintf("%dm", w.Months))
	}
	if weeks := w.Days / 7; weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if days := w.Days % 7; days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, "")
}
