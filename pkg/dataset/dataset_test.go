package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wutup-dev/wutup/internal/errors"
	"github.com/wutup-dev/wutup/pkg/stream"
)

const eventsJSON = `{
  "events": [
    {"title": "Picnic", "time": "noon", "url": "/events/1"},
    {"name": "Hackathon", "description": "All night", "image": "hack.png"}
  ]
}`

func TestExtractWithoutQuery(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want []string
	}{
		{"string list", []any{"Ana", "Bo"}, []string{"Ana", "Bo"}},
		{"scalar list", []any{float64(1), true}, []string{"1", "true"}},
		{"object list", []any{map[string]any{"name": "Cy"}}, []string{"Cy"}},
		{"wrapped guests", map[string]any{"guests": []any{"Ana"}}, []string{"Ana"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Extract(tt.doc, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, Names(rows))
		})
	}
}

func TestExtractErrors(t *testing.T) {
	_, err := Extract("just a string", "")
	assert.Equal(t, "E023", errors.CodeOf(err))

	_, err = Extract([]any{[]any{"nested"}}, "")
	assert.Equal(t, "E023", errors.CodeOf(err))

	_, err = Extract(map[string]any{}, ".[")
	assert.Equal(t, "E022", errors.CodeOf(err))

	_, err = Extract(map[string]any{"a": 1.0}, ".a | error(\"boom\")")
	assert.Equal(t, "E022", errors.CodeOf(err))

	_, err = Extract(map[string]any{}, "$.missing")
	assert.Equal(t, "E022", errors.CodeOf(err))
}

func TestExtractJQ(t *testing.T) {
	doc, err := Decode([]byte(eventsJSON), "json")
	require.NoError(t, err)

	rows, err := Extract(doc, ".events[] | .title // .name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Picnic", "Hackathon"}, Names(rows))

	rows, err = Extract(doc, "[.events[] | select(.time)]")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, stream.Row{Name: "Picnic", TimeLabel: "noon", Link: "/events/1"}, rows[0])
}

func TestExtractJSONPath(t *testing.T) {
	doc, err := Decode([]byte(eventsJSON), "json")
	require.NoError(t, err)

	rows, err := Extract(doc, "$.events")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Hackathon", rows[1].Name)
	assert.Equal(t, "All night", rows[1].Description)
	assert.Equal(t, "hack.png", rows[1].ImageURL)

	doc, err = Decode([]byte(`{"guests": [{"who": "Ana"}, {"who": "Bo"}]}`), "json")
	require.NoError(t, err)
	rows, err = Extract(doc, "$.guests[*].who")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bo"}, Names(rows))
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(eventsJSON), 0644))
	rows, err := Load(context.Background(), jsonPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Picnic", "Hackathon"}, Names(rows))

	yamlPath := filepath.Join(dir, "guests.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("guests:\n  - Ana\n  - name: Bo\n    image: bo.png\n  - 42\n"), 0644))
	rows, err = Load(context.Background(), yamlPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bo", "42"}, Names(rows))
	assert.Equal(t, "bo.png", rows[1].ImageURL)

	_, err = Load(context.Background(), filepath.Join(dir, "missing.json"), "")
	assert.Equal(t, "E020", errors.CodeOf(err))

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{"), 0644))
	_, err = Load(context.Background(), badPath, "")
	assert.Equal(t, "E021", errors.CodeOf(err))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/events":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(eventsJSON))
		case "/guests":
			w.Header().Set("Content-Type", "application/yaml")
			w.Write([]byte("- Ana\n- Bo\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := &Loader{Client: srv.Client()}

	rows, err := loader.Load(context.Background(), srv.URL+"/events", ".events | map(.title // .name)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Picnic", "Hackathon"}, Names(rows))

	rows, err = loader.Load(context.Background(), srv.URL+"/guests", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bo"}, Names(rows))

	_, err = loader.Load(context.Background(), srv.URL+"/nope", "")
	assert.Equal(t, "E020", errors.CodeOf(err))
}
