package vdom

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// Handler returns the handler registered on node for event ("click",
// "input", ...), or nil.
func (v *VNode) Handler(event string) any {
	if v == nil || v.Props == nil {
		return nil
	}
	return v.Props["on"+event]
}

// OnCancel handles the cancel event of a dialog (Escape key).
func OnCancel(handler any) EventHandler { return event("cancel", handler) }
