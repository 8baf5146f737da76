package vdom

import "fmt"

// Text creates an escaped text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Raw creates a node whose content is written without escaping. Only pass
// trusted markup, such as inline CSS from configuration.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups nodes without a wrapper element.
func Fragment(children ...*VNode) *VNode {
	node := &VNode{Kind: KindFragment, Children: make([]*VNode, 0, len(children))}
	for _, child := range children {
		node.AppendChild(child)
	}
	return node
}

// If returns node when cond holds and nil otherwise.
func If(cond bool, node *VNode) *VNode {
	if cond {
		return node
	}
	return nil
}

// Range maps items to nodes in order, dropping nil results.
func Range[T any](items []T, fn func(item T, i int) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			out = append(out, node)
		}
	}
	return out
}

// Key sets the row key. It is kept on the VNode and never rendered.
func Key(key any) Attr {
	return attr("key", fmt.Sprint(key))
}
