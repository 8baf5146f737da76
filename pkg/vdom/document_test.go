package vdom

import "testing"

func testDocument() *Document {
	return NewDocument(Html(
		Body(
			Section(ID("events"),
				Table(ID("current-event-stream")),
			),
			Table(ID("guest-table"), Tbody(Tr(Td("Ana")))),
			El("div", ID("not-a-table")),
		),
	))
}

func TestDocumentElementByID(t *testing.T) {
	doc := testDocument()

	tests := []struct {
		id      string
		wantTag string
	}{
		{"current-event-stream", "table"},
		{"guest-table", "table"},
		{"not-a-table", "div"},
		{"events", "section"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			el := doc.ElementByID(tt.id)
			if el == nil {
				t.Fatalf("ElementByID(%q) = nil", tt.id)
			}
			if el.Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", el.Tag, tt.wantTag)
			}
		})
	}

	if doc.ElementByID("missing") != nil {
		t.Error("expected nil for missing id")
	}
	if doc.ElementByID("") != nil {
		t.Error("expected nil for empty id")
	}

	var nilDoc *Document
	if nilDoc.ElementByID("guest-table") != nil {
		t.Error("expected nil from nil document")
	}
}

func TestWalkStopsEarly(t *testing.T) {
	doc := testDocument()
	visited := 0
	Walk(doc.Root, func(n *VNode) bool {
		visited++
		return n.Tag != "section"
	})
	// html, body, section
	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
}

func TestChildElements(t *testing.T) {
	row := Tr(Td("a"), Text("gap"), El("th", "b"), Td("c"))
	if got := len(ChildElements(row, "td")); got != 2 {
		t.Errorf("td children = %d, want 2", got)
	}
	if got := len(ChildElements(row, "")); got != 3 {
		t.Errorf("element children = %d, want 3", got)
	}
	if ChildElements(nil, "td") != nil {
		t.Error("expected nil for nil node")
	}
}
