package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/timeline/pkg/entry"
)

func TestContainerEmptyState(t *testing.T) {
	assert.Equal(t, EmptyState, Container(nil))
	assert.Equal(t, EmptyState, Container([]Item{{Entry: nil}}))
}

func TestContainerEscapesUserText(t *testing.T) {
	out := Container([]Item{{Entry: &entry.Entry{
		ID:          1,
		Date:        "2024-01-05",
		Title:       "<b>X</b>",
		Description: `<script>alert("d")</script>`,
	}}})

	assert.Contains(t, out, "&lt;b&gt;X&lt;/b&gt;")
	assert.NotContains(t, out, "<b>X</b>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestContainerListsEntriesInOrder(t *testing.T) {
	out := Container([]Item{
		{Entry: &entry.Entry{ID: 1, Date: "2023-06-01", Title: "Kickoff"}},
		{Entry: &entry.Entry{ID: 2, Date: "2024-01-05T09:30", Title: "Launch"}, Expanded: true},
	})

	assert.Contains(t, out, `<div class="timeline-line"></div>`)
	assert.Less(t, strings.Index(out, "Kickoff"), strings.Index(out, "Launch"))
	assert.Contains(t, out, `<span class="timeline-date">2024-01-05</span>`)
	assert.Contains(t, out, `action="/entries/1/toggle"`)
	assert.Contains(t, out, `action="/entries/2/delete"`)
	assert.Equal(t, 1, strings.Count(out, `timeline-item active`))
	assert.Contains(t, out, `id="entry-2"`)
}

func TestContainerOptionalFields(t *testing.T) {
	out := Container([]Item{{Entry: &entry.Entry{ID: 1, Date: "2024-01-05", Title: "Plain"}}})
	assert.NotContains(t, out, "timeline-description")
	assert.NotContains(t, out, "<img")

	out = Container([]Item{{Entry: &entry.Entry{
		ID:          1,
		Date:        "2024-01-05",
		Title:       `Cat "pic"`,
		Description: "fluffy",
		Image:       "https://example.com/cat.png?a=1&b=2",
	}}})
	assert.Contains(t, out, `<div class="timeline-description">fluffy</div>`)
	assert.Contains(t, out, `src="https://example.com/cat.png?a=1&amp;b=2"`)
	assert.Contains(t, out, `alt="Cat &#34;pic&#34;"`)
	assert.Contains(t, out, `onerror="this.style.display='none'"`)
}

func TestContainerDropsUnsafeImages(t *testing.T) {
	out := Container([]Item{{Entry: &entry.Entry{
		ID:    1,
		Date:  "2024-01-05",
		Title: "Sneaky",
		Image: "javascript:alert(1)",
	}}})
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "javascript:")
}

func TestContainerInvalidDateShownVerbatim(t *testing.T) {
	out := Container([]Item{{Entry: &entry.Entry{ID: 1, Date: "someday", Title: "Later"}}})
	assert.Contains(t, out, `<span class="timeline-date">someday</span>`)
}

func TestPageWrapsContainer(t *testing.T) {
	items := []Item{{Entry: &entry.Entry{ID: 7, Date: "2024-01-05", Title: "<i>Launch</i>"}}}
	page := Page(items)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `id="timelineForm"`)
	assert.Contains(t, page, `name="title" required`)
	assert.Contains(t, page, `id="closeBtn"`)
	assert.Contains(t, page, "&lt;i&gt;Launch&lt;/i&gt;")
	assert.NotContains(t, page, "&amp;lt;", "container markup must not be escaped twice")
	assert.Contains(t, page, `data-count="1"`)

	assert.Contains(t, Page(nil), EmptyState)
}

func TestConfirmDelete(t *testing.T) {
	page := ConfirmDelete(&entry.Entry{ID: 9, Date: "2024-01-05", Title: "<b>Gone</b>"})
	assert.Contains(t, page, `action="/entries/9/delete"`)
	assert.Contains(t, page, `name="confirm" value="yes"`)
	assert.Contains(t, page, "&lt;b&gt;Gone&lt;/b&gt;")
	assert.Equal(t, "", ConfirmDelete(nil))
}
