package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Tr()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "tr" {
			t.Errorf("Tag = %v, want tr", node.Tag)
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Img(Src("a.jpg"), Alt("Llamas"), Width(50), Height(50))
		if node.Props["src"] != "a.jpg" {
			t.Errorf("src = %v, want a.jpg", node.Props["src"])
		}
		if node.Props["width"] != 50 {
			t.Errorf("width = %v, want 50", node.Props["width"])
		}
	})

	t.Run("with attribute slice", func(t *testing.T) {
		node := Td([]Attr{Colspan(2), Class("details")})
		if node.Props["colspan"] != 2 {
			t.Errorf("colspan = %v, want 2", node.Props["colspan"])
		}
		if node.Props["class"] != "details" {
			t.Errorf("class = %v, want details", node.Props["class"])
		}
	})

	t.Run("with string shorthand", func(t *testing.T) {
		node := Td("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText || node.Children[0].Text != "Hello" {
			t.Errorf("child = %+v, want text Hello", node.Children[0])
		}
	})

	t.Run("nil and empty args ignored", func(t *testing.T) {
		var missing *VNode
		node := Tr(nil, missing, Attr{}, []*VNode{nil, Td()})
		if len(node.Children) != 1 {
			t.Errorf("Children len = %d, want 1", len(node.Children))
		}
		if len(node.Props) != 0 {
			t.Errorf("Props = %v, want empty", node.Props)
		}
	})

	t.Run("key attribute", func(t *testing.T) {
		node := Tr(Key(3))
		if node.Key != "3" {
			t.Errorf("Key = %q, want 3", node.Key)
		}
	})

	t.Run("custom tag", func(t *testing.T) {
		node := El("btn", ID("x-attendButton"), "Attend")
		if node.Tag != "btn" {
			t.Errorf("Tag = %q, want btn", node.Tag)
		}
		if node.ID() != "x-attendButton" {
			t.Errorf("ID = %q", node.ID())
		}
	})
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("img") {
		t.Error("img should be void")
	}
	if IsVoidElement("td") {
		t.Error("td should not be void")
	}
}

func TestHelpers(t *testing.T) {
	if If(false, Td()) != nil {
		t.Error("If(false) should be nil")
	}
	if If(true, Td()) == nil {
		t.Error("If(true) should return the node")
	}

	frag := Fragment(Td("a"), nil, Raw("<td>b</td>"))
	if frag.Kind != KindFragment || len(frag.Children) != 2 {
		t.Errorf("Fragment = %+v", frag)
	}

	names := []string{"Ana", "Bo"}
	cells := Range(names, func(name string, _ int) *VNode {
		if name == "Bo" {
			return nil
		}
		return Td(name)
	})
	if len(cells) != 1 {
		t.Errorf("Range len = %d, want 1", len(cells))
	}
}
