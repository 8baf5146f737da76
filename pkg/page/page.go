// Package page assembles full HTML pages around the stream renderers.
//
// A page is a heading plus one empty table; the event or guest renderer
// then fills the table with a tbody. Each build runs inside a tracing span.
//
//	doc, err := page.EventStream(ctx, cfg, "current-event-stream", rows)
//	err = page.Render(w, doc, "Tonight", cfg)
package page

import (
	"context"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wutup-dev/wutup/pkg/middleware"
	"github.com/wutup-dev/wutup/pkg/render"
	"github.com/wutup-dev/wutup/pkg/stream"
	"github.com/wutup-dev/wutup/pkg/vdom"
)

// Config controls page assembly and output.
type Config struct {
	// Stream options passed to every render.
	Stream []stream.Option

	// TracerName names the tracer for render spans (default "wutup").
	TracerName string

	// Pretty indents the HTML output.
	Pretty bool

	// StyleSheets are linked from the page head.
	StyleSheets []string
}

// EventStream builds an event stream page for streamID.
func EventStream(ctx context.Context, cfg Config, streamID string, rows []stream.Row) (*vdom.Document, error) {
	return Build(ctx, cfg, stream.KindEvents, streamID, rows)
}

// GuestList builds a guest list page for tableID.
func GuestList(ctx context.Context, cfg Config, tableID string, rows []stream.Row) (*vdom.Document, error) {
	return Build(ctx, cfg, stream.KindGuests, tableID, rows)
}

// BuildNames resolves names with the configured names policy and builds
// the page.
func BuildNames(ctx context.Context, cfg Config, kind stream.Kind, id string, rowCount int, names []string) (*vdom.Document, error) {
	o := stream.NewOptions(cfg.Stream...)
	rows, err := stream.RowsFromNames(rowCount, names, o.NamesPolicy)
	if err != nil {
		return nil, err
	}
	return Build(ctx, cfg, kind, id, rows)
}

// Build creates the page skeleton and renders rows into its table.
func Build(ctx context.Context, cfg Config, kind stream.Kind, id string, rows []stream.Row) (*vdom.Document, error) {
	_, span := middleware.StartSpan(ctx, cfg.TracerName, "wutup.render",
		attribute.String("wutup.kind", string(kind)),
		attribute.String("wutup.container", id),
		attribute.Int("wutup.rows", len(rows)),
	)
	defer span.End()

	doc := Skeleton(kind, id)
	if err := stream.Render(kind, doc, id, rows, cfg.Stream...); err != nil {
		middleware.RecordError(span, err)
		return nil, err
	}
	return doc, nil
}

// Skeleton returns a document with a heading and an empty table with id.
func Skeleton(kind stream.Kind, id string) *vdom.Document {
	return vdom.NewDocument(vdom.Main(vdom.Class("container"),
		vdom.Section(vdom.Class(string(kind)),
			vdom.H1(vdom.Text(Heading(kind, id))),
			vdom.Table(vdom.ID(id), vdom.Class("table")),
		),
	))
}

// Heading is the page heading for kind.
func Heading(kind stream.Kind, id string) string {
	switch {
	case kind == stream.KindEvents && id == stream.CurrentEventStreamID:
		return "Happening now"
	case kind == stream.KindEvents:
		return "Events: " + humanize(id)
	default:
		return "Guests: " + humanize(id)
	}
}

func humanize(id string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(id)
}

// Render writes doc as a complete HTML5 page. When w is an http.Flusher
// the head and body are flushed as they are written.
func Render(w io.Writer, doc *vdom.Document, title string, cfg Config) error {
	r := render.NewStreamingRenderer(w, render.RendererConfig{Pretty: cfg.Pretty})
	return r.RenderPage(render.PageData{
		Body:        doc.Root,
		Title:       title,
		StyleSheets: cfg.StyleSheets,
		Meta: []render.MetaTag{
			{Name: "generator", Content: "wutup"},
		},
	})
}

// Fragment renders only the last tbody of the table with id, or "" when
// the table has none.
func Fragment(doc *vdom.Document, id string, pretty bool) (string, error) {
	body := stream.Body(doc, id)
	if body == nil {
		return "", nil
	}
	return render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(body)
}
