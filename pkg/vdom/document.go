package vdom

// Document is an in-memory page tree.
//
// It stands in for the browser document: renderers look up their container
// by id and append to it. A Document is not safe for concurrent mutation;
// callers build one per page.
type Document struct {
	Root *VNode
}

// NewDocument creates a Document rooted at root.
func NewDocument(root *VNode) *Document {
	return &Document{Root: root}
}

// ElementByID returns the first element whose id attribute equals id,
// searching depth-first in document order. It returns nil when no element
// matches.
func (d *Document) ElementByID(id string) *VNode {
	if d == nil || id == "" {
		return nil
	}
	var found *VNode
	Walk(d.Root, func(n *VNode) bool {
		if n.Kind == KindElement && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Walk visits node and its descendants depth-first. Returning false from
// visit stops the walk.
func Walk(node *VNode, visit func(*VNode) bool) bool {
	if node == nil {
		return true
	}
	if !visit(node) {
		return false
	}
	for _, child := range node.Children {
		if !Walk(child, visit) {
			return false
		}
	}
	return true
}

// FindAll returns the descendants of node (including node) matching pred.
func FindAll(node *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(node, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ChildElements returns the direct element children of node with the given
// tag. An empty tag matches every element child.
func ChildElements(node *VNode, tag string) []*VNode {
	if node == nil {
		return nil
	}
	var out []*VNode
	for _, child := range node.Children {
		if child == nil || child.Kind != KindElement {
			continue
		}
		if tag == "" || child.Tag == tag {
			out = append(out, child)
		}
	}
	return out
}
