package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tableflip.dev/timeline/pkg/entry"
)

func init() {
	color.NoColor = true
}

func sample() []*entry.Entry {
	return []*entry.Entry{
		{ID: 1685577600000, Date: "2023-06-01", Title: "Kickoff"},
		{ID: 1704412800000, Date: "2024-01-05", Title: "Launch", Description: "shipped it", Image: "https://example.com/a.png"},
	}
}

func TestTimelinePrintsRowsInOrder(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Timeline(sample()...)

	out := buf.String()
	assert.Less(t, strings.Index(out, "Kickoff"), strings.Index(out, "Launch"))
	assert.Contains(t, out, "2024-01-05")
	assert.NotContains(t, out, "1704412800000")
}

func TestTimelineShowIDAndVerbose(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true, Verbose: true}
	pp.Timeline(sample()...)

	out := buf.String()
	assert.Contains(t, out, "1704412800000")
	assert.Contains(t, out, "shipped it")
	assert.Contains(t, out, "image: https://example.com/a.png")
}

func TestTimelineEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Timeline()
	assert.Contains(t, buf.String(), "none")
}

func TestTimelineTruncatesLongTitles(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Timeline(&entry.Entry{ID: 1, Date: "2024-01-01", Title: strings.Repeat("x", 100)})
	assert.Contains(t, buf.String(), "…")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 60))
}

func TestMonthHighlightsEntries(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Month(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), sample()...)

	out := buf.String()
	assert.Contains(t, out, "January 2024")
	assert.Contains(t, out, "Launch")
	assert.NotContains(t, out, "Kickoff")
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysIn(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Monday, StartDay(time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPretty, f)
	f, err = ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Structured(&buf, FormatJSON, sample()))

	var got []*entry.Entry
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample(), got)

	buf.Reset()
	require.NoError(t, Structured(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestStructuredYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Structured(&buf, FormatYAML, sample()))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Kickoff", got[0]["title"])
	assert.NotContains(t, got[0], "image")
	assert.Equal(t, "https://example.com/a.png", got[1]["image"])
}

func TestStructuredRejectsPretty(t *testing.T) {
	assert.Error(t, Structured(&bytes.Buffer{}, FormatPretty, nil))
}
