// Package preview prints rendered table bodies as terminal tables.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wutup-dev/wutup/pkg/vdom"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	indexStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// Table renders every row of body (a tbody, table, or any subtree
// containing tr elements) as a bordered terminal table. It returns the
// empty string when there are no rows.
func Table(body *vdom.VNode) string {
	rows := Rows(body)
	if len(rows) == 0 {
		return ""
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}

	headers := make([]string, width+1)
	headers[0] = "#"
	for i := 1; i <= width; i++ {
		headers[i] = "col " + strconv.Itoa(i)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return cellStyle
			}
		})

	for i, r := range rows {
		line := make([]string, width+1)
		line[0] = strconv.Itoa(i)
		copy(line[1:], r)
		t.Row(line...)
	}
	return t.String()
}

// Rows flattens each tr under node into one string per td. Rows nested
// inside a cell (the Attend/Decline controls) belong to that cell.
func Rows(node *vdom.VNode) [][]string {
	var out [][]string
	var visit func(n *vdom.VNode)
	visit = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if n.Kind == vdom.KindElement && n.Tag == "tr" {
			cells := []string{}
			for _, td := range vdom.ChildElements(n, "td") {
				cells = append(cells, CellText(td))
			}
			out = append(out, cells)
			return
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	visit(node)
	return out
}

// CellText joins the visible text of n with single spaces. Images show as
// [img ALT].
func CellText(n *vdom.VNode) string {
	var parts []string
	vdom.Walk(n, func(c *vdom.VNode) bool {
		switch {
		case c.Kind == vdom.KindText:
			if s := strings.TrimSpace(c.Text); s != "" {
				parts = append(parts, s)
			}
		case c.Kind == vdom.KindElement && c.Tag == "img":
			alt, _ := c.Attr("alt")
			s, _ := alt.(string)
			parts = append(parts, "[img "+s+"]")
		}
		return true
	})
	return strings.Join(parts, " ")
}
