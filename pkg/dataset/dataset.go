// Package dataset loads table rows from files and HTTP endpoints.
//
// A source is a .json/.yaml/.yml file or an http(s) URL returning JSON or
// YAML. The decoded document is turned into rows either directly (a list of
// names or of row objects) or through a query: expressions starting with
// "$" are JSONPath, anything else is jq.
//
//	rows, err := dataset.Load(ctx, "https://api.example.com/events", ".events[] | .title")
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"

	"github.com/wutup-dev/wutup/internal/errors"
	"github.com/wutup-dev/wutup/pkg/stream"
)

// maxBody caps how much of a remote source is read.
const maxBody = 8 << 20

// Loader reads sources. The zero value uses http.DefaultClient.
type Loader struct {
	Client *http.Client
}

// Load reads source with a default Loader.
func Load(ctx context.Context, source, query string) ([]stream.Row, error) {
	return (&Loader{}).Load(ctx, source, query)
}

// Load reads source and converts it to rows, applying query when set.
func (l *Loader) Load(ctx context.Context, source, query string) ([]stream.Row, error) {
	data, format, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Extract(doc, query)
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.fetch(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, "", errors.New("E020").WithDetail(source).Wrap(err)
	}
	return data, formatFromExt(filepath.Ext(source)), nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, string, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", errors.New("E020").WithDetail(url).Wrap(err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", errors.New("E020").WithDetail(url).Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", errors.New("E020").WithDetailf("%s returned %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, "", errors.New("E020").WithDetail(url).Wrap(err)
	}

	format := "json"
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		format = "yaml"
	}
	return data, format, nil
}

func formatFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// Decode parses data as JSON or YAML into JSON-compatible values
// (map[string]any, []any, string, float64, bool, nil).
func Decode(data []byte, format string) (any, error) {
	var doc any
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.New("E021").WithDetail("yaml: " + err.Error()).Wrap(err)
		}
		return normalize(doc)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.New("E021").WithDetail("json: " + err.Error()).Wrap(err)
		}
		return doc, nil
	}
}

// normalize round-trips v through JSON so YAML-specific types (int, maps
// with non-string keys) match what the query engines expect.
func normalize(v any) (any, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, errors.FromError(err, "E021")
	}
	var out any
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil, errors.FromError(err, "E021")
	}
	return out, nil
}

// Extract converts doc to rows, applying query first when it is non-empty.
func Extract(doc any, query string) ([]stream.Row, error) {
	query = strings.TrimSpace(query)
	switch {
	case query == "":
		return toRows(doc)
	case strings.HasPrefix(query, "$"):
		v, err := jsonpath.Get(query, doc)
		if err != nil {
			return nil, errors.New("E022").WithDetail(query).Wrap(err)
		}
		return toRows(v)
	default:
		results, err := runJQ(query, doc)
		if err != nil {
			return nil, err
		}
		if len(results) == 1 {
			if _, isList := results[0].([]any); isList {
				return toRows(results[0])
			}
		}
		return toRows(results)
	}
}

func runJQ(query string, doc any) ([]any, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, errors.New("E022").WithDetail(query).Wrap(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, errors.New("E022").WithDetail(query).Wrap(err)
	}

	results := []any{}
	iter := code.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := v.(error); isErr {
			return nil, errors.New("E022").WithDetail(query).Wrap(qerr)
		}
		results = append(results, v)
	}
	return results, nil
}

// toRows accepts a list of strings, a list of row objects, or an object
// with an "events", "guests", "attendees", or "rows" list.
func toRows(v any) ([]stream.Row, error) {
	switch t := v.(type) {
	case []any:
		rows := make([]stream.Row, 0, len(t))
		for i, item := range t {
			row, err := toRow(item)
			if err != nil {
				return nil, errors.New("E023").WithDetailf("item %d: %v", i, err)
			}
			rows = append(rows, row)
		}
		return rows, nil
	case map[string]any:
		for _, key := range []string{"events", "guests", "attendees", "rows"} {
			if list, ok := t[key].([]any); ok {
				return toRows(list)
			}
		}
	}
	return nil, errors.New("E023").WithDetailf("got %s", describe(v))
}

func toRow(v any) (stream.Row, error) {
	switch t := v.(type) {
	case string:
		return stream.Row{Name: t}, nil
	case float64, bool:
		return stream.Row{Name: fmt.Sprint(t)}, nil
	case map[string]any:
		row := stream.Row{
			Name:        firstString(t, "name", "title"),
			ImageURL:    firstString(t, "image", "imageUrl", "picture"),
			ImageAlt:    firstString(t, "imageAlt", "alt"),
			Description: firstString(t, "description"),
			TimeLabel:   firstString(t, "time", "start", "when"),
			Link:        firstString(t, "link", "url", "href"),
		}
		return row, nil
	}
	return stream.Row{}, fmt.Errorf("unsupported %s", describe(v))
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	case string:
		return "string"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Names returns the Name of each row.
func Names(rows []stream.Row) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	return names
}
