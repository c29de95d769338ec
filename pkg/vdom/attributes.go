package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data creates a data-* attribute.
// Example: Data("state", "open") → data-state="open"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(value string) Attr { return attr("autocomplete", value) }

// Inputmode sets the inputmode attribute.
func Inputmode(mode string) Attr { return attr("inputmode", mode) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Rows sets the rows attribute.
func Rows(n int) Attr { return attr("rows", n) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Novalidate sets the novalidate attribute.
func Novalidate() Attr { return attr("novalidate", true) }

// Open sets the open attribute.
func Open() Attr { return attr("open", true) }

// Defer_ sets the defer attribute.
func Defer_() Attr { return attr("defer", true) }

// AttrIf returns a only when condition is true.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
