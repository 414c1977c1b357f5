// Package render turns timeline entries into HTML.
//
// All user-supplied text goes through html/template's contextual escaping;
// image URLs are additionally restricted by entry.SafeImageURL.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"tableflip.dev/timeline/pkg/entry"
)

// EmptyState is the markup shown when the timeline has no entries.
const EmptyState = `<div class="empty-state">No timeline entries yet. Use the add button above to create one.</div>`

// Item is an entry plus its transient display state.
type Item struct {
	Entry    *entry.Entry
	Expanded bool
}

type itemView struct {
	ID          int64
	Date        string
	Title       string
	Description string
	ImageURL    string
	Expanded    bool
}

type pageView struct {
	Container template.HTML
	Count     int
}

var templates = template.Must(template.New("timeline").Parse(containerTemplate + confirmTemplate + pageTemplate))

func views(items []Item) []itemView {
	out := make([]itemView, 0, len(items))
	for _, it := range items {
		if it.Entry == nil {
			continue
		}
		v := itemView{
			ID:          it.Entry.ID,
			Date:        it.Entry.DisplayDate(),
			Title:       it.Entry.Title,
			Description: it.Entry.Description,
			Expanded:    it.Expanded,
		}
		if u, ok := entry.SafeImageURL(it.Entry.Image); ok {
			v.ImageURL = u
		}
		out = append(out, v)
	}
	return out
}

// Container renders the list markup that fills the timeline container.
func Container(items []Item) string {
	vs := views(items)
	if len(vs) == 0 {
		return EmptyState
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "container", vs); err != nil {
		// Only reachable through a broken template, which tests catch.
		fmt.Fprintf(os.Stderr, "render: container: %v\n", err)
		return EmptyState
	}
	return buf.String()
}

// Page renders the complete document: entry form overlay and container.
func Page(items []Item) string {
	var buf bytes.Buffer
	pv := pageView{
		// Container output is produced by the escaping template above.
		Container: template.HTML(Container(items)),
		Count:     len(items),
	}
	if err := templates.ExecuteTemplate(&buf, "page", pv); err != nil {
		fmt.Fprintf(os.Stderr, "render: page: %v\n", err)
		return ""
	}
	return buf.String()
}

// ConfirmDelete renders the fallback confirmation page used when the browser
// did not ask the user itself.
func ConfirmDelete(e *entry.Entry) string {
	if e == nil {
		return ""
	}
	vs := views([]Item{{Entry: e}})
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "confirm", vs[0]); err != nil {
		fmt.Fprintf(os.Stderr, "render: confirm: %v\n", err)
		return ""
	}
	return buf.String()
}
