// Package entry defines the timeline entry model and its storage codec.
package entry

import (
	"fmt"
	"strings"
	"time"
)

// Entry is a single dated point on the timeline.
type Entry struct {
	// ID is the creation time in epoch milliseconds and the entry's unique key.
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// New builds an entry stamped with the creation time of now.
func New(now time.Time, date, title, description, image string) *Entry {
	return &Entry{
		ID:          now.UnixMilli(),
		Date:        date,
		Title:       title,
		Description: description,
		Image:       image,
	}
}

// When returns the parsed calendar date and whether it was understood.
func (e *Entry) When() (time.Time, bool) {
	return ParseDate(e.Date)
}

// DisplayDate is the date as shown to users, YYYY-MM-DD when parseable.
func (e *Entry) DisplayDate() string {
	return FormatDate(e.Date)
}

// HasImage reports whether an image URL was supplied.
func (e *Entry) HasImage() bool {
	return strings.TrimSpace(e.Image) != ""
}

// Row returns the columns used by tabular printers.
func (e *Entry) Row() (string, string, string) {
	return fmt.Sprintf("%d", e.ID), e.DisplayDate(), e.Title
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s  %s", e.DisplayDate(), e.Title)
}

// Clone returns a copy that does not alias e.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}
