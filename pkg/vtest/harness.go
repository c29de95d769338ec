package vtest

import (
	"testing"

	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/toast"
	"github.com/vango-dev/contactform/pkg/ui"
	"github.com/vango-dev/contactform/pkg/vdom"
)

// ValidValues is a complete form that passes every rule.
var ValidValues = map[contact.Field]string{
	contact.FieldName:    "Иван Петров",
	contact.FieldEmail:   "ivan@example.com",
	contact.FieldPhone:   "9991234567",
	contact.FieldTopic:   "support",
	contact.FieldMessage: "Здравствуйте, хочу уточнить детали заказа",
}

// Recorder is a toast.Emitter that keeps every emitted event.
type Recorder struct {
	Events []Emitted
}

// Emitted is one recorded client event.
type Emitted struct {
	Name string
	Data any
}

// Emit records the event.
func (r *Recorder) Emit(name string, data any) {
	r.Events = append(r.Events, Emitted{Name: name, Data: data})
}

// Toasts returns the recorded toasts in emission order.
func (r *Recorder) Toasts() []toast.Toast {
	var out []toast.Toast
	for _, e := range r.Events {
		if t, ok := e.Data.(toast.Toast); ok && e.Name == toast.EventName {
			out = append(out, t)
		}
	}
	return out
}

// Harness drives a ContactDialog in a test.
type Harness struct {
	t        testing.TB
	Dialog   *ui.ContactDialog
	Recorder *Recorder
}

// New creates a harness around a fresh dialog built with opts.
func New(t testing.TB, opts ...ui.DialogOption) *Harness {
	t.Helper()
	rec := &Recorder{}
	return &Harness{
		t:        t,
		Dialog:   ui.NewContactDialog(rec, opts...),
		Recorder: rec,
	}
}

// Open opens the dialog.
func (h *Harness) Open() { h.Dialog.Open() }

// Close closes the dialog.
func (h *Harness) Close() { h.Dialog.Close() }

// Type enters value into field.
func (h *Harness) Type(field contact.Field, value string) { h.Dialog.Input(field, value) }

// Blur moves focus away from field.
func (h *Harness) Blur(field contact.Field) { h.Dialog.Blur(field) }

// Submit submits the form.
func (h *Harness) Submit() { h.Dialog.Submit() }

// Fill types every value in values, in form order.
func (h *Harness) Fill(values map[contact.Field]string) {
	for _, f := range contact.Fields {
		if v, ok := values[f]; ok {
			h.Type(f, v)
		}
	}
}

// FillValid fills the form with ValidValues.
func (h *Harness) FillValid() { h.Fill(ValidValues) }

// Dispatch sends event to the element with the given id attribute and
// fails the test if the dialog rejects it.
func (h *Harness) Dispatch(event, id, value string) {
	h.t.Helper()
	hid := h.Dialog.HID(id)
	if hid == "" {
		h.t.Fatalf("no element with id %q", id)
	}
	if err := h.Dialog.Dispatch(event, hid, value); err != nil {
		h.t.Fatalf("dispatch %s on %s: %v", event, id, err)
	}
}

// ErrorText returns the message shown for field, or "" when it has none.
func (h *Harness) ErrorText(field contact.Field) string {
	return h.Dialog.Validator().State().Get(field)
}

// ExpectError asserts that field shows msg. An empty msg accepts any
// message.
func (h *Harness) ExpectError(field contact.Field, msg string) {
	h.t.Helper()
	if !h.Dialog.Validator().HasError(field) {
		h.t.Errorf("expected %s to show an error", field)
		return
	}
	if got := h.ErrorText(field); msg != "" && got != msg {
		h.t.Errorf("%s error = %q, want %q", field, got, msg)
	}
}

// ExpectNoError asserts that field shows no error.
func (h *Harness) ExpectNoError(field contact.Field) {
	h.t.Helper()
	if h.Dialog.Validator().HasError(field) {
		h.t.Errorf("expected %s to be clean, got %q", field, h.ErrorText(field))
	}
}

// ExpectClean asserts that no field shows an error and that the rendered
// dialog has no error elements.
func (h *Harness) ExpectClean() {
	h.t.Helper()
	for _, f := range contact.Fields {
		h.ExpectNoError(f)
	}
	if n := len(vdom.QueryClass(h.Dialog.Render(), contact.ErrorClass)); n != 0 {
		h.t.Errorf("rendered dialog has %d error elements", n)
	}
}

// ExpectValue asserts the stored value of field.
func (h *Harness) ExpectValue(field contact.Field, want string) {
	h.t.Helper()
	if got := h.Dialog.Value(field); got != want {
		h.t.Errorf("%s value = %q, want %q", field, got, want)
	}
}

// ExpectFocused asserts that the last event moved focus to field.
func (h *Harness) ExpectFocused(field contact.Field) {
	h.t.Helper()
	got, ok := h.Dialog.TakeFocus()
	if !ok {
		h.t.Errorf("expected focus on %s, no focus requested", field)
		return
	}
	if got != field {
		h.t.Errorf("focus = %s, want %s", got, field)
	}
}

// ExpectOpen asserts that the dialog is shown.
func (h *Harness) ExpectOpen() {
	h.t.Helper()
	if !h.Dialog.IsOpen() {
		h.t.Error("expected dialog to be open")
	}
}

// ExpectClosed asserts that the dialog is hidden.
func (h *Harness) ExpectClosed() {
	h.t.Helper()
	if h.Dialog.IsOpen() {
		h.t.Error("expected dialog to be closed")
	}
}

// ExpectToast asserts that the last toast has the given level and message.
func (h *Harness) ExpectToast(level toast.Type, msg string) {
	h.t.Helper()
	toasts := h.Recorder.Toasts()
	if len(toasts) == 0 {
		h.t.Errorf("expected %s toast %q, none emitted", level, msg)
		return
	}
	last := toasts[len(toasts)-1]
	if last.Level != level || last.Message != msg {
		h.t.Errorf("toast = %s %q, want %s %q", last.Level, last.Message, level, msg)
	}
}

// ExpectNoToast asserts that nothing was acknowledged.
func (h *Harness) ExpectNoToast() {
	h.t.Helper()
	if n := len(h.Recorder.Toasts()); n != 0 {
		h.t.Errorf("expected no toast, got %d", n)
	}
}
