package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id a Document looks containers up by.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute. Several classes are joined with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Colspan lets a details cell span the picture and time columns.
func Colspan(n int) Attr { return attr("colspan", n) }

// Img attributes.

func Src(url string) Attr  { return attr("src", url) }
func Alt(text string) Attr { return attr("alt", text) }
func Width(px int) Attr    { return attr("width", px) }
func Height(px int) Attr   { return attr("height", px) }

// Link attributes.

func Href(url string) Attr { return attr("href", url) }
func Rel(rel string) Attr  { return attr("rel", rel) }

// Page head attributes.

func Lang(lang string) Attr       { return attr("lang", lang) }
func Charset(charset string) Attr { return attr("charset", charset) }
func Name(name string) Attr       { return attr("name", name) }
func Content(content string) Attr { return attr("content", content) }
