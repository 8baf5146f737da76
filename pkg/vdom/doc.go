// Package vdom provides the virtual DOM used to build event stream and
// guest list pages.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, and raw HTML. Props holds attributes. Attr is used to build
// Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Table(ID("guest-table"),
//	    Tbody(
//	        Tr(Td(Img(Src(url), Alt("Llamas"))), Td(Text("Ana"))),
//	    ),
//	)
//
// # Documents
//
// Document wraps a tree and resolves elements by id, the way a browser
// document does. Renderers receive a Document instead of reaching for a
// global page.
package vdom
