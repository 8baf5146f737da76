package render

import (
	"io"

	"github.com/wutup-dev/wutup/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS styles.
	Styles []string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string
	Content string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if err := r.renderOpen(w, page); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	return r.renderClose(w)
}

func (r *Renderer) renderOpen(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.openTag(w, vdom.Html(vdom.Lang(lang))); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	return r.openTag(w, vdom.Body())
}

func (r *Renderer) renderClose(w io.Writer) error {
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}

// renderHead renders the document head section. Meta tags without a name
// are skipped.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(page.Title)),
		vdom.Fragment(vdom.Range(page.Meta, func(m MetaTag, _ int) *vdom.VNode {
			return vdom.If(m.Name != "", vdom.Meta(vdom.Name(m.Name), vdom.Content(m.Content)))
		})...),
		vdom.Fragment(vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
			return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
		})...),
		vdom.Fragment(vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
			return vdom.El("style", vdom.Raw(css))
		})...),
	)
	if err := r.renderNode(w, head, 0); err != nil {
		return err
	}
	if !r.config.Pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
