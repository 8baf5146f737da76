// Package render turns VNode trees into HTML.
//
// It handles element and attribute rendering with escaping, void elements,
// boolean attributes, and full HTML5 documents:
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
//	err = r.RenderPage(w, render.PageData{Title: "Events", Body: body})
//
// StreamingRenderer flushes after the head and the body when the writer
// is an http.Flusher.
//
// All text content and attribute values are escaped. Raw nodes are written
// as-is and must only carry trusted content.
package render
