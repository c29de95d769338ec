// Package vtest provides testing helpers for the contact dialog.
//
// A Harness drives a ContactDialog the way the thin client would and
// records the toasts it emits, so behaviour tests read as a sequence of
// user actions followed by assertions.
//
// # Quick Start
//
//	func TestSubmit(t *testing.T) {
//	    h := vtest.New(t)
//	    h.Open()
//	    h.FillValid()
//	    h.Submit()
//	    h.ExpectToast(toast.TypeSuccess, ui.SuccessMessage)
//	    h.ExpectClosed()
//	}
//
// # Render Assertions
//
// Assert on rendered HTML output of any vdom tree:
//
//	vtest.ExpectContains(t, node, "form__error")
//	vtest.ExpectNotContains(t, node, "aria-invalid")
//	vtest.ExpectAttribute(t, node, "data-state", "open")
//
// # Events
//
// Dispatch sends a raw event to the element with the given id, exercising
// the same path a WebSocket session uses:
//
//	h.Dispatch("input", "phone", "9991234567")
package vtest
