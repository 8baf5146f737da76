package vtest

import (
	"strings"
	"testing"

	"github.com/wutup-dev/wutup/pkg/render"
	"github.com/wutup-dev/wutup/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string, or "" when
// rendering fails.
//
// Example:
//
//	html := vtest.RenderToString(stream.Body(doc, "guest-table"))
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, row, "colspan", "2")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// Bodies returns the tbody sections directly under table.
func Bodies(table *vdom.VNode) []*vdom.VNode {
	return vdom.ChildElements(table, "tbody")
}

// Rows returns the tr elements directly under body.
func Rows(body *vdom.VNode) []*vdom.VNode {
	return vdom.ChildElements(body, "tr")
}

// Cells returns the td elements directly under row.
func Cells(row *vdom.VNode) []*vdom.VNode {
	return vdom.ChildElements(row, "td")
}

// CellTexts returns the text content of each cell of row.
func CellTexts(row *vdom.VNode) []string {
	cells := Cells(row)
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = cell.TextContent()
	}
	return out
}

// FindByTag returns the first descendant of node with tag, or nil.
func FindByTag(node *vdom.VNode, tag string) *vdom.VNode {
	found := vdom.FindAll(node, func(n *vdom.VNode) bool {
		return n.Kind == vdom.KindElement && n.Tag == tag
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
