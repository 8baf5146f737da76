package vdom

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "source": true, "track": true,
	"wbr": true,
}

// IsVoidElement reports whether tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element with any tag, such as the "btn" controls of the
// current event stream.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

// createElement builds an element from a mix of Attr, []Attr, *VNode,
// []*VNode and string (a text child). Nil values and empty attributes are
// skipped.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			node.setAttr(v)
		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}
		case *VNode:
			node.AppendChild(v)
		case []*VNode:
			for _, child := range v {
				node.AppendChild(child)
			}
		case string:
			node.AppendChild(Text(v))
		}
	}
	return node
}

func (v *VNode) setAttr(a Attr) {
	if a.IsEmpty() {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	v.Props[a.Key] = a.Value
}

// Page shell.

func Html(args ...any) *VNode    { return createElement("html", args) }
func Head(args ...any) *VNode    { return createElement("head", args) }
func Body(args ...any) *VNode    { return createElement("body", args) }
func Title(args ...any) *VNode   { return createElement("title", args) }
func Meta(args ...any) *VNode    { return createElement("meta", args) }
func Link(args ...any) *VNode    { return createElement("link", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }

// Cell content.

func A(args ...any) *VNode   { return createElement("a", args) }
func P(args ...any) *VNode   { return createElement("p", args) }
func Img(args ...any) *VNode { return createElement("img", args) }

// Tables.

func Table(args ...any) *VNode { return createElement("table", args) }
func Tbody(args ...any) *VNode { return createElement("tbody", args) }
func Tr(args ...any) *VNode    { return createElement("tr", args) }
func Td(args ...any) *VNode    { return createElement("td", args) }
