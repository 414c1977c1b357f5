package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGroupsByMonth(t *testing.T) {
	tl := newTimeline(t, nil)
	for _, d := range []string{"2023-12-31", "2024-01-05", "2024-01-20", "2024-02-01", "2024-04-01", "someday"} {
		_, err := tl.Add(d, "t "+d, "", "")
		require.NoError(t, err)
	}

	since := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	got := tl.Report(until, since)

	assert.Equal(t, since, got.Since, "bounds are swapped into order")
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 1, got.Undated)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, time.January, got.Sections[0].Month.Month())
	assert.Equal(t, []string{"t 2024-01-05", "t 2024-01-20"}, titles(got.Sections[0].Entries))
	assert.Equal(t, time.February, got.Sections[1].Month.Month())
}

func TestReportEmptyWindow(t *testing.T) {
	tl := newTimeline(t, nil)
	_, err := tl.Add("2020-01-01", "old", "", "")
	require.NoError(t, err)

	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	got := tl.Report(now, now.AddDate(0, 1, 0))
	assert.Zero(t, got.Total)
	assert.Empty(t, got.Sections)
}
