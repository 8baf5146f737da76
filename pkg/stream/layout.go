package stream

import (
	"github.com/wutup-dev/wutup/pkg/vdom"
)

// CellBuilder produces one cell of row i. A nil result omits the cell.
type CellBuilder func(i int, row Row) *vdom.VNode

// Layout is the ordered set of cells that make up a row.
type Layout []CellBuilder

// Row builds the tr for row i.
func (l Layout) Row(i int, row Row) *vdom.VNode {
	cells := make([]*vdom.VNode, 0, len(l))
	for _, build := range l {
		if cell := build(i, row); cell != nil {
			cells = append(cells, cell)
		}
	}
	return vdom.Tr(vdom.Key(i), cells)
}

// BuildBody builds one tbody holding a row per entry, in order.
func BuildBody(layout Layout, rows []Row) *vdom.VNode {
	return vdom.Tbody(vdom.Range(rows, func(row Row, i int) *vdom.VNode {
		return layout.Row(i, row)
	}))
}

// ActionCell returns the Attend/Decline control cell. The controls carry
// ids derived from containerID and no behaviour.
func ActionCell(containerID, buttonClass string) CellBuilder {
	return func(int, Row) *vdom.VNode {
		return vdom.Td(
			vdom.Tr(vdom.El("btn",
				vdom.ID(containerID+"-attendButton"),
				vdom.Class(buttonClass),
				"Attend",
			)),
			vdom.Tr(vdom.El("btn",
				vdom.ID(containerID+"-declineButton"),
				vdom.Class(buttonClass),
				"Decline",
			)),
		)
	}
}

// PictureCell returns a cell with a size x size image.
func PictureCell(size int) CellBuilder {
	return func(_ int, row Row) *vdom.VNode {
		return vdom.Td(vdom.Img(
			vdom.Src(row.ImageURL),
			vdom.Alt(row.ImageAlt),
			vdom.Height(size),
			vdom.Width(size),
		))
	}
}

// DetailsCell returns the two-column cell with the event link and
// description.
func DetailsCell() CellBuilder {
	return func(_ int, row Row) *vdom.VNode {
		return vdom.Td(vdom.Colspan(2),
			vdom.A(vdom.Href(row.Link), vdom.Text(row.Name)),
			vdom.P(vdom.Text(row.Description)),
		)
	}
}

// TimeCell returns the cell holding the row's time label.
func TimeCell() CellBuilder {
	return func(_ int, row Row) *vdom.VNode {
		return vdom.Td(vdom.Text(row.TimeLabel))
	}
}

// NameCell returns a plain cell holding the row's name.
func NameCell() CellBuilder {
	return func(_ int, row Row) *vdom.VNode {
		return vdom.Td(vdom.Text(row.Name))
	}
}

// EventLayout is the event stream row: controls (current stream only),
// picture, details, time.
func EventLayout(containerID string, o Options) Layout {
	layout := make(Layout, 0, 4)
	if containerID == o.CurrentStreamID {
		layout = append(layout, ActionCell(containerID, o.Placeholders.ButtonClass))
	}
	return append(layout,
		PictureCell(o.Placeholders.ImageSize),
		DetailsCell(),
		TimeCell(),
	)
}

// GuestLayout is the guest list row: picture, name.
func GuestLayout(o Options) Layout {
	return Layout{
		PictureCell(o.Placeholders.ImageSize),
		NameCell(),
	}
}
