// Package render turns a vdom tree into HTML.
//
// Rendering is deterministic: attributes are written in sorted order, event
// handlers are never written, and interactive elements carry their
// hydration ID as data-hid together with one data-on-<event> marker per
// handler so the thin client knows which events to forward.
//
// Form controls are rendered with their live state: an input's value
// attribute, a textarea's value as its text content, and a select's value
// as the selected attribute of the matching option.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// RenderPage wraps a body tree in a complete HTML document.
package render
