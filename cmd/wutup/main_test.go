package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutup-dev/wutup/internal/errors"
	"github.com/wutup-dev/wutup/pkg/stream"
)

// run executes the CLI with a throwaway config file.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "wutup.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: error\n"), 0644))

	var stdout, stderr bytes.Buffer
	a := &app{out: &stdout, errOut: &stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderEvents(t *testing.T) {
	out, _, err := run(t, "render", "events", "--names", "Picnic,Hackathon")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Happening now</title>")
	assert.Equal(t, 2, strings.Count(out, "current-event-stream-attendButton"))
}

func TestRenderGuestsFragment(t *testing.T) {
	out, _, err := run(t, "render", "guests", "--container", "party", "--names", "Ana, Bo", "--fragment")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<tbody>"), out)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Bo")
	assert.Equal(t, 2, strings.Count(out, "<tr>"))
}

func TestRenderNamesPolicy(t *testing.T) {
	_, _, err := run(t, "render", "events", "--container", "past", "--names", "a", "--rows", "3")
	assert.Equal(t, "E003", errors.CodeOf(err))
	assert.ErrorIs(t, err, stream.ErrInsufficientData)

	out, _, err := run(t, "render", "events", "--container", "past", "--names", "a", "--rows", "3",
		"--names-policy", "pad", "--fragment")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<tr>"))

	_, _, err = run(t, "render", "events", "--names-policy", "lenient")
	assert.Equal(t, "E140", errors.CodeOf(err))
}

func TestRenderKeepsBlankNamePositions(t *testing.T) {
	out, _, err := run(t, "render", "guests", "--names", "Ana,,Cy", "--fragment")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<tr>"))
	ana := strings.Index(out, "<td>Ana</td>")
	blank := strings.Index(out, "<td></td>")
	cy := strings.Index(out, "<td>Cy</td>")
	require.True(t, ana >= 0 && blank >= 0 && cy >= 0, out)
	assert.Less(t, ana, blank)
	assert.Less(t, blank, cy)

	assert.Equal(t, []string{"a", "", "b"}, trimNames([]string{" a", " ", "b "}))
}

func TestRenderFromData(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(data, []byte(`{"events":[{"title":"Picnic","time":"noon"},{"title":"Gala"}]}`), 0644))
	out := filepath.Join(dir, "out.html")

	_, stderr, err := run(t, "render", "events", "--container", "past", "--data", data,
		"--query", ".events", "--rows", "1", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote "+out)

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Picnic")
	assert.Contains(t, string(html), "noon")
	assert.NotContains(t, string(html), "Gala")
}

func TestRenderArgs(t *testing.T) {
	_, _, err := run(t, "render")
	assert.Equal(t, "E140", errors.CodeOf(err))

	_, _, err = run(t, "render", "chairs")
	assert.Equal(t, "E005", errors.CodeOf(err))
}

func TestPreview(t *testing.T) {
	out, _, err := run(t, "preview", "guests", "--names", "Ana,Bo")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "[img Llamas]")

	_, stderr, err := run(t, "preview", "guests")
	require.NoError(t, err)
	assert.Contains(t, stderr, "guest-list has no rows")
}

func TestPublishWithoutBucket(t *testing.T) {
	_, _, err := run(t, "publish", "events", "--names", "a")
	assert.Equal(t, "E041", errors.CodeOf(err))
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, _, err = run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
}

func TestLogFlags(t *testing.T) {
	_, _, err := run(t, "--log-format", "xml", "version")
	assert.Equal(t, "E140", errors.CodeOf(err))

	_, _, err = run(t, "--log-level", "loud", "version")
	assert.Equal(t, "E140", errors.CodeOf(err))

	_, _, err = run(t, "--log-format", "json", "--log-level", "debug", "version", "-s")
	assert.NoError(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	var out bytes.Buffer
	a := &app{out: &out, errOut: &out}
	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml"), "version"})
	assert.Equal(t, "E141", errors.CodeOf(cmd.Execute()))
}

func TestResize(t *testing.T) {
	rows := []stream.Row{{Name: "a", TimeLabel: "noon"}, {Name: "b"}}

	got, err := resize(rows, 1, stream.PolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, []stream.Row{{Name: "a", TimeLabel: "noon"}}, got)

	got, err = resize(rows, 3, stream.PolicyPad)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "noon", got[0].TimeLabel)

	_, err = resize(rows, 3, stream.PolicyStrict)
	assert.ErrorIs(t, err, stream.ErrInsufficientData)
}
