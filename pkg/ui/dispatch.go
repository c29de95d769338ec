package ui

import (
	"errors"
	"fmt"

	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/vdom"
)

var (
	// ErrUnknownTarget is returned when no element carries the event's hid.
	ErrUnknownTarget = errors.New("ui: unknown event target")

	// ErrNoHandler is returned when the target has no handler for the event.
	ErrNoHandler = errors.New("ui: no handler for event")
)

// Dispatch delivers a client event to the element identified by hid.
// Handlers taking a string receive value; handlers taking nothing ignore it.
func (d *ContactDialog) Dispatch(event, hid, value string) error {
	node := vdom.FindByHID(d.root, hid)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, hid)
	}

	switch h := node.Handler(event).(type) {
	case func():
		h()
	case func(string):
		h(value)
	case nil:
		return fmt.Errorf("%w: %s on %s", ErrNoHandler, event, hid)
	default:
		return fmt.Errorf("ui: unsupported handler %T for %s", h, event)
	}
	return nil
}

// HID returns the hydration id of the element with the given id attribute.
func (d *ContactDialog) HID(id string) string {
	if n := vdom.FindByID(d.root, id); n != nil {
		return n.HID
	}
	return ""
}

// FieldOf returns the form field bound to the element with the given hid.
func (d *ContactDialog) FieldOf(hid string) (contact.Field, bool) {
	n := vdom.FindByHID(d.root, hid)
	if n == nil {
		return "", false
	}
	f, err := contact.ParseField(n.StringAttr("name"))
	if err != nil {
		return "", false
	}
	return f, true
}
