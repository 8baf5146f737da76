// Package stream renders the event stream and guest list tables.
//
// Both tables are built the same way: a Layout (an ordered list of cell
// builders) is applied to each Row, the resulting rows are collected in one
// tbody, and the tbody is appended to a table found by id in a Document.
//
//	doc := vdom.NewDocument(vdom.Table(vdom.ID("guest-table")))
//	err := stream.RenderGuestList(doc, "guest-table", 3, []string{"Ana", "Bo", "Cy"})
//
// The event stream adds Attend/Decline controls to every row when it is
// rendered into the current event stream (CurrentEventStreamID). Row fields
// left empty fall back to Placeholders, so rendering from names alone
// yields the placeholder image, description, and time label.
package stream
