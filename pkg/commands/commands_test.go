package commands

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/commands/options"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TIMELINE_CONFIG_PATH", t.TempDir())
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--path", dir, "--driver", "diskv"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

type listed struct {
	ID    int64  `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
}

func listJSON(t *testing.T, dir string) []listed {
	t.Helper()
	out, err := run(t, dir, "list", "--json")
	require.NoError(t, err)
	var got []listed
	require.NoError(t, sonic.ConfigStd.UnmarshalFromString(out, &got), out)
	return got
}

func TestAddListDelete(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "add", "--date", "2024-01-05", "--title", "Launch")
	require.NoError(t, err)
	_, err = run(t, dir, "add", "-d", "2023-06-01", "-t", "Kickoff")
	require.NoError(t, err)

	got := listJSON(t, dir)
	require.Len(t, got, 2)
	assert.Equal(t, "Kickoff", got[0].Title)
	assert.Equal(t, "Launch", got[1].Title)

	_, err = run(t, dir, "delete", "1", "--yes")
	assert.Error(t, err, "unknown id")

	// stdin is not a terminal
	_, err = run(t, dir, "delete", itoa(got[0].ID))
	assert.Error(t, err)
	assert.Len(t, listJSON(t, dir), 2)

	_, err = run(t, dir, "delete", itoa(got[0].ID), "--yes")
	require.NoError(t, err)
	got = listJSON(t, dir)
	require.Len(t, got, 1)
	assert.Equal(t, "Launch", got[0].Title)
}

func TestDeleteUnknownIDFailsBeforePrompting(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "--date", "2024-01-05", "--title", "Launch")
	require.NoError(t, err)

	// stdin is not a terminal and --yes is absent
	_, err = run(t, dir, "delete", "1")
	assert.ErrorIs(t, err, app.ErrNotFound)
	assert.NotErrorIs(t, err, options.ErrNotInteractive)

	got := listJSON(t, dir)
	_, err = run(t, dir, "delete", itoa(got[0].ID))
	assert.ErrorIs(t, err, options.ErrNotInteractive)
}

func TestAddRequiresFields(t *testing.T) {
	_, err := run(t, t.TempDir(), "add", "--title", "No date")
	assert.Error(t, err)
}

func TestListYAML(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "add", "--date", "2024-01-05", "--title", "Launch")
	require.NoError(t, err)

	out, err := run(t, dir, "list", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Launch")
}

func TestRenderFragment(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, dir, "render", "--fragment")
	require.NoError(t, err)
	assert.Contains(t, out, "No timeline entries yet.")

	_, err = run(t, dir, "add", "--date", "2024-01-05", "--title", "<b>X</b>")
	require.NoError(t, err)
	out, err = run(t, dir, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "&lt;b&gt;X&lt;/b&gt;")
}

func TestJSONErrors(t *testing.T) {
	// --json reports the error on stdout instead of failing the command.
	_, err := run(t, t.TempDir(), "delete", "nope", "--json")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
