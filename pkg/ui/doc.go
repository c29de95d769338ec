// Package ui contains the contact dialog component.
//
// ContactDialog owns a vdom tree with an open button, a modal dialog and
// the contact form. Its event handlers (Open, Close, Blur, Input, Submit)
// are attached to the tree, so a live session only has to look up the
// element an event targets and call its handler. All error display goes
// through a contact.FormValidator working on the tree itself: error
// markers are classes on the controls and error messages are
// span.form__error elements appended next to them.
//
//	d := ui.NewContactDialog(session)
//	d.Open()
//	d.Input(contact.FieldPhone, "89991234567") // value becomes +7 (999) 123-45-67
//	d.Submit()
package ui
