package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <table>, <td>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "tr")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Key      string   // Row key
	Text     string   // For KindText and KindRaw
}

// Props holds element attributes.
type Props map[string]any

// ID returns the element's id attribute, or "" when unset.
func (v *VNode) ID() string {
	if v == nil || v.Props == nil {
		return ""
	}
	id, _ := v.Props["id"].(string)
	return id
}

// Attr returns the attribute value for key and whether it is set.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	value, ok := v.Props[key]
	return value, ok
}

// AppendChild adds child as the last child of v.
// Nil children are ignored.
func (v *VNode) AppendChild(child *VNode) {
	if v == nil || child == nil {
		return
	}
	v.Children = append(v.Children, child)
}

// RemoveChildren removes every direct child for which match returns true
// and reports how many were removed.
func (v *VNode) RemoveChildren(match func(*VNode) bool) int {
	if v == nil {
		return 0
	}
	kept := v.Children[:0]
	removed := 0
	for _, child := range v.Children {
		if match(child) {
			removed++
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(v.Children); i++ {
		v.Children[i] = nil
	}
	v.Children = kept
	return removed
}

// TextContent returns the concatenated text of v and its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindText:
		return v.Text
	case KindRaw:
		return ""
	}
	var out []byte
	for _, child := range v.Children {
		out = append(out, child.TextContent()...)
	}
	return string(out)
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
