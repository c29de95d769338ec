// Package vdom provides the server-side element tree of the contact page.
//
// The tree lives on the server for the whole lifetime of a session. Event
// handlers mutate it in place, the way browser code mutates the DOM, and
// the renderer turns it back into HTML after every event.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("form__group"),
//	    Label(For("email"), Text("Email")),
//	    Input(Type("email"), ID("email"), Name("email"), OnBlur(handler)),
//	)
//
// # DOM operations
//
// Nodes support the small set of DOM operations form code needs: class
// lists (AddClass, RemoveClass, HasClass), attributes (SetAttr, RemoveAttr),
// tree edits (AppendChild, RemoveChild) and lookups (FindByName, FindByHID,
// ParentOf, QueryClass).
//
// # Hydration
//
// AssignHIDs gives every interactive element (one with event handlers) a
// hydration ID. The renderer writes it as data-hid, and the client reports
// events against it.
package vdom
