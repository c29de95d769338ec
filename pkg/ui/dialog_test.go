package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/render"
	"github.com/vango-dev/contactform/pkg/toast"
	"github.com/vango-dev/contactform/pkg/vdom"
)

type recorder struct {
	toasts []toast.Toast
}

func (r *recorder) Emit(name string, data any) {
	if name != toast.EventName {
		return
	}
	r.toasts = append(r.toasts, data.(toast.Toast))
}

func fill(d *ContactDialog) {
	d.Input(contact.FieldName, "Иван")
	d.Input(contact.FieldEmail, "ivan@example.com")
	d.Input(contact.FieldPhone, "9991234567")
	d.Input(contact.FieldTopic, "support")
	d.Input(contact.FieldMessage, "Здравствуйте, есть вопрос")
}

func errorSpans(d *ContactDialog) []*vdom.VNode {
	return vdom.QueryClass(d.Render(), contact.ErrorClass)
}

func control(d *ContactDialog, f contact.Field) *vdom.VNode {
	return vdom.FindByName(d.Render(), f.String())
}

func TestSubmitValidForm(t *testing.T) {
	rec := &recorder{}
	d := NewContactDialog(rec)
	d.Open()
	fill(d)
	d.Submit()

	if len(rec.toasts) != 1 {
		t.Fatalf("toasts = %d, want 1", len(rec.toasts))
	}
	if got := rec.toasts[0]; got.Level != toast.TypeSuccess || got.Message != SuccessMessage {
		t.Errorf("toast = %+v", got)
	}
	if d.IsOpen() {
		t.Error("dialog still open after successful submit")
	}
	for _, f := range contact.Fields {
		if v := d.Value(f); v != "" {
			t.Errorf("%s = %q after reset, want empty", f, v)
		}
	}
	if n := len(errorSpans(d)); n != 0 {
		t.Errorf("error elements = %d, want 0", n)
	}
}

func TestSubmitInvalidPhone(t *testing.T) {
	rec := &recorder{}
	d := NewContactDialog(rec)
	d.Open()
	fill(d)
	d.Input(contact.FieldPhone, "999")
	d.Submit()

	if len(rec.toasts) != 0 {
		t.Fatalf("toast emitted for invalid form")
	}
	if !d.IsOpen() {
		t.Fatal("dialog closed after invalid submit")
	}
	spans := errorSpans(d)
	if len(spans) != 1 {
		t.Fatalf("error elements = %d, want 1", len(spans))
	}
	if got := spans[0].TextContent(); got != contact.MsgPhonePattern {
		t.Errorf("error text = %q, want %q", got, contact.MsgPhonePattern)
	}
	if !control(d, contact.FieldPhone).HasClass("form__input--error") {
		t.Error("phone input not marked")
	}
	if f, ok := d.TakeFocus(); !ok || f != contact.FieldPhone {
		t.Errorf("focus = %q, %v; want phone", f, ok)
	}
}

func TestSubmitFocusesFirstErrored(t *testing.T) {
	d := NewContactDialog(nil)
	d.Open()
	d.Input(contact.FieldName, "Иван")
	d.Submit()

	if f, _ := d.TakeFocus(); f != contact.FieldEmail {
		t.Errorf("focus = %q, want email", f)
	}
	if n := len(errorSpans(d)); n != 4 {
		t.Errorf("error elements = %d, want 4", n)
	}
	if _, ok := d.TakeFocus(); ok {
		t.Error("focus reported twice")
	}
}

func TestOpenClearsErrors(t *testing.T) {
	d := NewContactDialog(nil)
	d.Open()
	d.Submit()
	if len(errorSpans(d)) == 0 {
		t.Fatal("expected errors after empty submit")
	}
	d.Close()
	d.Open()
	if n := len(errorSpans(d)); n != 0 {
		t.Errorf("error elements = %d after reopen, want 0", n)
	}
	for _, f := range contact.Fields {
		if d.Validator().HasError(f) {
			t.Errorf("%s still marked", f)
		}
	}
}

func TestCloseKeepsValues(t *testing.T) {
	d := NewContactDialog(nil)
	d.Open()
	d.Input(contact.FieldName, "И")
	d.Blur(contact.FieldName)
	d.Close()

	if d.IsOpen() {
		t.Fatal("dialog open after Close")
	}
	if got := d.Value(contact.FieldName); got != "И" {
		t.Errorf("name = %q, want kept", got)
	}
	if n := len(errorSpans(d)); n != 0 {
		t.Errorf("error elements = %d, want 0", n)
	}
}

func TestBlurValidates(t *testing.T) {
	d := NewContactDialog(nil)
	d.Open()
	d.Blur(contact.FieldName)

	spans := errorSpans(d)
	if len(spans) != 1 || spans[0].TextContent() != contact.MsgNameRequired {
		t.Fatalf("after blur: %d spans", len(spans))
	}

	d.Input(contact.FieldName, "Иван")
	if n := len(errorSpans(d)); n != 0 {
		t.Errorf("error not cleared by valid input, %d spans", n)
	}
}

func TestInputDoesNotValidateCleanField(t *testing.T) {
	d := NewContactDialog(nil)
	d.Open()
	d.Input(contact.FieldEmail, "not-an-email")
	if d.Validator().HasError(contact.FieldEmail) {
		t.Error("clean field validated on input")
	}

	d.Blur(contact.FieldEmail)
	d.Input(contact.FieldEmail, "still-bad")
	spans := errorSpans(d)
	if len(spans) != 1 || spans[0].TextContent() != contact.MsgEmailPattern {
		t.Errorf("errored field: %d spans", len(spans))
	}
}

func TestInputFormatsPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"89991234567", "+7 (999) 123-45-67"},
		{"79991234567", "+7 (999) 123-45-67"},
		{"999", "+7 (999)"},
		{"", "+7"},
	}
	for _, tt := range tests {
		d := NewContactDialog(nil)
		d.Input(contact.FieldPhone, tt.in)
		if got := d.Value(contact.FieldPhone); got != tt.want {
			t.Errorf("Input(phone, %q) stored %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKindMarkers(t *testing.T) {
	d := NewContactDialog(nil)
	d.Open()
	d.Submit()

	want := map[contact.Field]string{
		contact.FieldName:    "form__input--error",
		contact.FieldTopic:   "form__select--error",
		contact.FieldMessage: "form__textarea--error",
	}
	for f, cls := range want {
		if !control(d, f).HasClass(cls) {
			t.Errorf("%s: missing %s", f, cls)
		}
	}

	d.Close()
	for f, cls := range want {
		if control(d, f).HasClass(cls) {
			t.Errorf("%s: %s left after close", f, cls)
		}
	}
}

func TestErrorSlotPlacement(t *testing.T) {
	d := NewContactDialog(nil)
	d.Blur(contact.FieldMessage)
	d.Blur(contact.FieldMessage)

	ctl := control(d, contact.FieldMessage)
	group := vdom.ParentOf(d.Render(), ctl)
	var slots int
	for i, c := range group.Children {
		if c.HasClass(contact.ErrorClass) {
			slots++
			if group.Children[i-1] != ctl {
				t.Error("error element does not follow the control")
			}
		}
	}
	if slots != 1 {
		t.Errorf("slots = %d, want 1", slots)
	}
}

func TestDispatch(t *testing.T) {
	d := NewContactDialog(nil)

	if err := d.Dispatch("click", d.HID(OpenButtonID), ""); err != nil {
		t.Fatalf("open: %v", err)
	}
	if !d.IsOpen() {
		t.Fatal("click on open button did not open the dialog")
	}

	phone := control(d, contact.FieldPhone)
	if err := d.Dispatch("input", phone.HID, "9991234567"); err != nil {
		t.Fatalf("input: %v", err)
	}
	if got := d.Value(contact.FieldPhone); got != "+7 (999) 123-45-67" {
		t.Errorf("phone = %q", got)
	}

	if err := d.Dispatch("click", "h999", ""); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("unknown hid: err = %v", err)
	}
	if err := d.Dispatch("submit", phone.HID, ""); !errors.Is(err, ErrNoHandler) {
		t.Errorf("missing handler: err = %v", err)
	}

	if err := d.Dispatch("cancel", d.HID(DialogID), ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if d.IsOpen() {
		t.Error("cancel did not close the dialog")
	}
}

func TestRenderedDialog(t *testing.T) {
	d := NewContactDialog(nil, DialogTitle("Напишите нам"))
	d.Open()
	d.Input(contact.FieldTopic, "sales")
	d.Blur(contact.FieldName)

	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(d.Render())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		`<dialog`,
		` open`,
		`data-state="open"`,
		`Напишите нам`,
		`<span class="form__error" role="alert">` + contact.MsgNameRequired + `</span>`,
		`<option value="sales" selected>`,
		`data-on-input="true"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered html missing %q", want)
		}
	}
}

func TestSubmitObserver(t *testing.T) {
	var outcomes []bool
	d := NewContactDialog(nil, DialogOnSubmit(func(valid bool) { outcomes = append(outcomes, valid) }))
	d.Submit()
	fill(d)
	d.Submit()
	if len(outcomes) != 2 || outcomes[0] || !outcomes[1] {
		t.Errorf("outcomes = %v, want [false true]", outcomes)
	}
}

func TestFieldOf(t *testing.T) {
	d := NewContactDialog(nil)
	if f, ok := d.FieldOf(control(d, contact.FieldTopic).HID); !ok || f != contact.FieldTopic {
		t.Errorf("FieldOf(topic hid) = %q, %v", f, ok)
	}
	if _, ok := d.FieldOf(d.HID(OpenButtonID)); ok {
		t.Error("open button reported as a field")
	}
}

func TestDialogTopics(t *testing.T) {
	d := NewContactDialog(nil, DialogTopics([]Topic{{Value: "a", Label: "Первая"}, {Value: "b", Label: "Вторая"}}))
	sel := control(d, contact.FieldTopic)

	var values []string
	for _, o := range sel.Children {
		values = append(values, o.StringAttr("value"))
	}
	if strings.Join(values, ",") != ",a,b" {
		t.Errorf("option values = %q, want placeholder then a, b", values)
	}

	if sel.Handler("blur") == nil || sel.Handler("input") == nil {
		t.Error("topic select is not bound to blur and input")
	}
	if err := d.Dispatch("input", sel.HID, "b"); err != nil {
		t.Fatalf("input: %v", err)
	}
	if got := d.Value(contact.FieldTopic); got != "b" {
		t.Errorf("topic = %q, want b", got)
	}
}
