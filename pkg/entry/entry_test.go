package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStampsMillisecondID(t *testing.T) {
	now := time.Date(2024, time.January, 5, 10, 30, 0, 123_000_000, time.UTC)
	e := New(now, "2024-01-05", "Launch", "", "")
	assert.Equal(t, now.UnixMilli(), e.ID)
	assert.Equal(t, "Launch", e.Title)
	assert.False(t, e.HasImage())
}

func TestParseDateLayouts(t *testing.T) {
	cases := map[string]string{
		"2024-01-05":           "2024-01-05",
		" 2024-01-05 ":         "2024-01-05",
		"2024-01-05T18:45":     "2024-01-05",
		"2024-01-05T18:45:00Z": "2024-01-05",
		"January 5, 2024":      "2024-01-05",
	}
	for in, want := range cases {
		got, ok := ParseDate(in)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", in)
		}
		if got.Format(layoutISO) != want {
			t.Fatalf("ParseDate(%q) = %s, want %s", in, got.Format(layoutISO), want)
		}
	}
}

func TestFormatDateKeepsInvalidInput(t *testing.T) {
	assert.Equal(t, "2023-06-01", FormatDate("2023-06-01T08:00"))
	assert.Equal(t, "someday", FormatDate("someday"))
	assert.Equal(t, "", FormatDate(""))
}

func TestSortAscendingInvalidLast(t *testing.T) {
	list := []*Entry{
		{ID: 1, Date: "2024-01-05", Title: "Launch"},
		{ID: 2, Date: "not a date", Title: "Mystery"},
		{ID: 3, Date: "2023-06-01", Title: "Kickoff"},
		{ID: 4, Date: "", Title: "Blank"},
		{ID: 5, Date: "2023-06-01", Title: "Same day"},
	}
	Sort(list)

	titles := make([]string, 0, len(list))
	for _, e := range list {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"Kickoff", "Same day", "Launch", "Mystery", "Blank"}, titles)
	assert.True(t, IsSorted(list))
}

func TestIsSortedDetectsDisorder(t *testing.T) {
	assert.False(t, IsSorted([]*Entry{{Date: "2024-02-01"}, {Date: "2024-01-01"}}))
	assert.False(t, IsSorted([]*Entry{{Date: "junk"}, {Date: "2024-01-01"}}))
	assert.True(t, IsSorted(nil))
}

func TestMarshalRoundTrip(t *testing.T) {
	list := []*Entry{
		{ID: 1685577600000, Date: "2023-06-01", Title: "Kickoff"},
		{ID: 1704412800000, Date: "2024-01-05", Title: "Launch", Description: "v1 <ships>", Image: "https://example.com/a.png"},
	}
	data, err := Marshal(list)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestMarshalNilIsEmptyArray(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestUnmarshalTolerance(t *testing.T) {
	for _, in := range []string{"", "  ", "null"} {
		got, err := Unmarshal([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.Empty(t, got)
	}

	got, err := Unmarshal([]byte(`[{"id":1,"date":"2024-01-01","title":"A"},null]`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Description)

	_, err = Unmarshal([]byte(`{"broken":`))
	assert.Error(t, err)
}

func TestSafeImageURL(t *testing.T) {
	allowed := []string{
		"https://example.com/cat.png",
		"http://example.com/cat.png?size=2",
		"/static/cat.png",
		"images/cat.png",
		"//cdn.example.com/cat.png",
	}
	for _, in := range allowed {
		_, ok := SafeImageURL(in)
		assert.True(t, ok, in)
	}

	refused := []string{
		"",
		"javascript:alert(1)",
		" JavaScript:alert(1)",
		"data:image/svg+xml;base64,PHN2Zz4=",
		"vbscript:msgbox",
		"https:///nohost.png",
	}
	for _, in := range refused {
		_, ok := SafeImageURL(in)
		assert.False(t, ok, in)
	}
}
