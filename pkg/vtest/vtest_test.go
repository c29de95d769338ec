package vtest_test

import (
	"strings"
	"testing"

	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/toast"
	"github.com/vango-dev/contactform/pkg/ui"
	"github.com/vango-dev/contactform/pkg/vdom"
	"github.com/vango-dev/contactform/pkg/vtest"
)

func TestSubmitValidForm(t *testing.T) {
	h := vtest.New(t)
	h.Dispatch("click", ui.OpenButtonID, "")
	h.ExpectOpen()

	h.FillValid()
	h.Dispatch("submit", ui.FormID, "")

	h.ExpectToast(toast.TypeSuccess, ui.SuccessMessage)
	h.ExpectClosed()
	h.ExpectClean()
	for _, f := range contact.Fields {
		h.ExpectValue(f, "")
	}
}

func TestSubmitEmptyForm(t *testing.T) {
	h := vtest.New(t)
	h.Open()
	h.Submit()

	h.ExpectError(contact.FieldName, contact.MsgNameRequired)
	h.ExpectError(contact.FieldEmail, contact.MsgEmailRequired)
	h.ExpectError(contact.FieldPhone, contact.MsgPhoneRequired)
	h.ExpectError(contact.FieldTopic, contact.MsgTopicRequired)
	h.ExpectError(contact.FieldMessage, contact.MsgMessageRequired)
	h.ExpectFocused(contact.FieldName)
	h.ExpectOpen()
	h.ExpectNoToast()
}

func TestWhitespaceIsEmpty(t *testing.T) {
	h := vtest.New(t)
	h.Type(contact.FieldName, "   ")
	h.Blur(contact.FieldName)
	h.ExpectError(contact.FieldName, contact.MsgNameRequired)
}

func TestErrorClearsWhileTyping(t *testing.T) {
	h := vtest.New(t)
	h.Type(contact.FieldEmail, "ivan@")
	h.Dispatch("blur", string(contact.FieldEmail), "")
	h.ExpectError(contact.FieldEmail, contact.MsgEmailPattern)

	h.Dispatch("input", string(contact.FieldEmail), "ivan@example.com")
	h.ExpectNoError(contact.FieldEmail)
}

func TestPhoneTyping(t *testing.T) {
	h := vtest.New(t)
	steps := []struct {
		typed string
		want  string
	}{
		{"9", "+7 (9"},
		{"+7 (99", "+7 (99"},
		{"+7 (9991", "+7 (999) 1"},
		{"+7 (999) 12345", "+7 (999) 123-45"},
		{"+7 (999) 123-45-678", "+7 (999) 123-45-67"},
	}
	for _, s := range steps {
		h.Dispatch("input", string(contact.FieldPhone), s.typed)
		h.ExpectValue(contact.FieldPhone, s.want)
	}
	h.Blur(contact.FieldPhone)
	h.ExpectNoError(contact.FieldPhone)
}

func TestCancelClearsErrors(t *testing.T) {
	h := vtest.New(t)
	h.Open()
	h.Submit()
	h.Dispatch("cancel", ui.DialogID, "")

	h.ExpectClosed()
	h.ExpectClean()
	vtest.ExpectNotContains(t, h.Dialog.Render(), contact.ErrorClass)
	vtest.ExpectAttribute(t, h.Dialog.Render(), "data-state", "closed")
}

func TestReopenStartsClean(t *testing.T) {
	h := vtest.New(t)
	h.Open()
	h.Type(contact.FieldName, "Иван")
	h.Submit()
	h.Dispatch("click", ui.CloseButtonID, "")
	h.Open()

	h.ExpectClean()
	h.ExpectValue(contact.FieldName, "Иван")
}

func TestRenderedErrors(t *testing.T) {
	h := vtest.New(t)
	h.Fill(map[contact.Field]string{
		contact.FieldName:    "И",
		contact.FieldMessage: strings.Repeat("ы", contact.MessageMaxLength+1),
	})
	h.Submit()

	root := h.Dialog.Render()
	vtest.ExpectContains(t, root, contact.MsgNameMinLength)
	vtest.ExpectContains(t, root, contact.MsgMessageMax)
	vtest.ExpectContains(t, root, contact.InputErrorClass)
	vtest.ExpectContains(t, root, contact.TextareaErrorClass)
	vtest.ExpectContains(t, root, contact.SelectErrorClass)
	vtest.ExpectElement(t, root, "dialog")

	if n := len(vdom.QueryClass(root, contact.ErrorClass)); n != len(contact.Fields) {
		t.Errorf("error elements = %d, want %d", n, len(contact.Fields))
	}
}

func TestRecorderToasts(t *testing.T) {
	rec := &vtest.Recorder{}
	rec.Emit("other", "ignored")
	toast.Info(rec, "hello")

	got := rec.Toasts()
	if len(got) != 1 || got[0].Message != "hello" || got[0].Level != toast.TypeInfo {
		t.Errorf("Toasts() = %+v", got)
	}
	if len(rec.Events) != 2 {
		t.Errorf("Events = %d, want 2", len(rec.Events))
	}
}

func TestRenderToString(t *testing.T) {
	html := vtest.RenderToString(vdom.Div(vdom.Class("box"), "hi"))
	if html != `<div class="box">hi</div>` {
		t.Errorf("RenderToString = %q", html)
	}
}
