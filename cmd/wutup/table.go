package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wutup-dev/wutup/internal/errors"
	"github.com/wutup-dev/wutup/pkg/dataset"
	"github.com/wutup-dev/wutup/pkg/page"
	"github.com/wutup-dev/wutup/pkg/stream"
	"github.com/wutup-dev/wutup/pkg/vdom"
)

// defaultGuestTable is the container id for guest lists without --container.
const defaultGuestTable = "guest-list"

// tableFlags are the flags shared by render, publish, and preview.
type tableFlags struct {
	container string
	names     []string
	rows      int
	data      string
	query     string
	policy    string
	pretty    bool
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.container, "container", "", "Table id (default: the current event stream, or guest-list)")
	cmd.Flags().StringSliceVarP(&f.names, "names", "n", nil, "Comma-separated row labels")
	cmd.Flags().IntVarP(&f.rows, "rows", "r", -1, "Number of rows (default: one per name)")
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "Load rows from a JSON/YAML file or http(s) URL")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "jq expression, or JSONPath starting with $, applied to --data")
	cmd.Flags().StringVar(&f.policy, "names-policy", "", "strict, pad, or truncate (default from config)")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "Indent HTML output")
}

// tableArgs validates the kind argument.
func tableArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("E140").
			WithDetailf("%s takes exactly one kind: events or guests", cmd.Name()).
			WithExample(cmd.CommandPath() + " events --names Picnic,Hackathon")
	}
	_, err := stream.ParseKind(args[0])
	return err
}

// pageConfig merges config-file stream settings with flag overrides.
func (f *tableFlags) pageConfig(a *app) (page.Config, error) {
	opts := a.cfg.StreamOptions()
	if f.policy != "" {
		p, err := stream.ParseNamesPolicy(f.policy)
		if err != nil {
			return page.Config{}, errors.New("E140").WithDetail(err.Error())
		}
		opts = append(opts, stream.WithNamesPolicy(p))
	}
	opts = append(opts, stream.WithLogger(a.logger))

	return page.Config{
		Stream:     opts,
		TracerName: a.cfg.Tracing.TracerName,
		Pretty:     f.pretty,
	}, nil
}

func (f *tableFlags) containerFor(a *app, kind stream.Kind) string {
	if f.container != "" {
		return f.container
	}
	if kind == stream.KindEvents {
		return a.cfg.Stream.CurrentStreamID
	}
	return defaultGuestTable
}

// builtTable is a rendered page and what it was rendered from.
type builtTable struct {
	doc  *vdom.Document
	kind stream.Kind
	id   string
	cfg  page.Config
}

// build renders the requested table into a fresh page document.
func (f *tableFlags) build(ctx context.Context, a *app, kindArg string) (*builtTable, error) {
	kind, err := stream.ParseKind(kindArg)
	if err != nil {
		return nil, err
	}
	pc, err := f.pageConfig(a)
	if err != nil {
		return nil, err
	}
	t := &builtTable{kind: kind, id: f.containerFor(a, kind), cfg: pc}

	if f.data == "" {
		names := trimNames(f.names)
		rowCount := f.rows
		if rowCount < 0 {
			rowCount = len(names)
		}
		t.doc, err = page.BuildNames(ctx, pc, kind, t.id, rowCount, names)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	rows, err := dataset.Load(ctx, f.data, f.query)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded rows", "source", f.data, "rows", len(rows))

	if f.rows >= 0 {
		rows, err = resize(rows, f.rows, stream.NewOptions(pc.Stream...).NamesPolicy)
		if err != nil {
			return nil, err
		}
	}
	t.doc, err = page.Build(ctx, pc, kind, t.id, rows)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// html renders the table as a full page, or just its newest tbody.
func (t *builtTable) html(title string, fragment bool) ([]byte, error) {
	if fragment {
		s, err := page.Fragment(t.doc, t.id, t.cfg.Pretty)
		return []byte(s + "\n"), err
	}
	if title == "" {
		title = page.Heading(t.kind, t.id)
	}
	var buf bytes.Buffer
	if err := page.Render(&buf, t.doc, title, t.cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resize applies the names policy to loaded rows as if they were names.
func resize(rows []stream.Row, n int, policy stream.NamesPolicy) ([]stream.Row, error) {
	sized, err := stream.RowsFromNames(n, dataset.Names(rows), policy)
	if err != nil {
		return nil, err
	}
	copy(sized, rows)
	return sized, nil
}

// trimNames trims whitespace from each name. Blank names keep their
// position so later labels stay on their rows.
func trimNames(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.TrimSpace(n)
	}
	return out
}
