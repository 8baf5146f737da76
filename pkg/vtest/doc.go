// Package vtest provides helpers for testing rendered tables.
//
// Assertions render a VNode to HTML and check the output:
//
//	vtest.ExpectContains(t, body, "Picnic")
//	vtest.ExpectAttribute(t, body, "colspan", "2")
//
// Query helpers walk a table structurally:
//
//	for i, row := range vtest.Rows(vtest.Bodies(table)[0]) {
//	    texts := vtest.CellTexts(row)
//	    ...
//	}
package vtest
