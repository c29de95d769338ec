package contact

import (
	"strings"
	"testing"
)

func validValues(reg *MemoryRegistry) {
	reg.Set(FieldName, "Иван Петров")
	reg.Set(FieldEmail, "ivan@example.com")
	reg.Set(FieldPhone, "+7 (999) 123-45-67")
	reg.Set(FieldTopic, "support")
	reg.Set(FieldMessage, "Прошу перезвонить мне завтра")
}

func TestValidateFormAllValid(t *testing.T) {
	reg := NewMemoryRegistry()
	validValues(reg)
	v := New(reg)

	if !v.ValidateForm() {
		t.Fatalf("expected valid form, got %v", v.State().Errors)
	}
	if n := reg.ErrorSlots(); n != 0 {
		t.Errorf("expected no error elements, got %d", n)
	}
}

func TestValidateFormPhoneInvalid(t *testing.T) {
	reg := NewMemoryRegistry()
	validValues(reg)
	reg.Set(FieldPhone, "+7 (999) 12")
	v := New(reg)

	if v.ValidateForm() {
		t.Fatal("expected invalid form")
	}
	if n := reg.ErrorSlots(); n != 1 {
		t.Fatalf("expected exactly one error element, got %d", n)
	}
	state := v.State()
	if !state.Has(FieldPhone) || len(state.Errors) != 1 {
		t.Fatalf("expected only phone to be invalid, got %v", state.Errors)
	}
	if state.Get(FieldPhone) != MsgPhonePattern {
		t.Errorf("phone message = %q", state.Get(FieldPhone))
	}
	if got := reg.Markers(FieldPhone); len(got) != 1 || got[0] != InputErrorClass {
		t.Errorf("phone markers = %v", got)
	}
}

func TestValidateFormDoesNotShortCircuit(t *testing.T) {
	reg := NewMemoryRegistry()
	var seen []Field
	v := New(reg, WithObserver(func(res Result) { seen = append(seen, res.Field) }))

	if v.ValidateForm() {
		t.Fatal("empty form should be invalid")
	}
	if len(seen) != len(Fields) {
		t.Fatalf("expected every field to be validated, saw %v", seen)
	}
	if n := reg.ErrorSlots(); n != len(Fields) {
		t.Errorf("expected %d error elements, got %d", len(Fields), n)
	}
	if f, ok := v.FirstErrored(); !ok || f != FieldName {
		t.Errorf("FirstErrored() = %q, %v", f, ok)
	}
}

func TestShowFieldErrorIdempotent(t *testing.T) {
	reg := NewMemoryRegistry()
	v := New(reg)

	v.ShowFieldError(FieldTopic, "first")
	v.ShowFieldError(FieldTopic, "second")

	if n := reg.ErrorSlots(); n != 1 {
		t.Fatalf("expected one error element, got %d", n)
	}
	if got := v.State().Get(FieldTopic); got != "second" {
		t.Errorf("message = %q, want %q", got, "second")
	}
	if got := reg.Markers(FieldTopic); len(got) != 1 || got[0] != SelectErrorClass {
		t.Errorf("topic markers = %v", got)
	}
}

func TestClearFieldErrorTwice(t *testing.T) {
	reg := NewMemoryRegistry()
	v := New(reg)

	v.ShowFieldError(FieldMessage, MsgMessageMin)
	v.ClearFieldError(FieldMessage)
	v.ClearFieldError(FieldMessage)

	if v.HasError(FieldMessage) {
		t.Error("message should not be marked invalid")
	}
	if n := reg.ErrorSlots(); n != 0 {
		t.Errorf("expected no error elements, got %d", n)
	}
	if got := reg.Markers(FieldMessage); len(got) != 0 {
		t.Errorf("unexpected markers: %v", got)
	}
}

func TestClearValidationErrors(t *testing.T) {
	reg := NewMemoryRegistry()
	v := New(reg)
	v.ValidateForm()

	v.ClearValidationErrors()

	if n := reg.ErrorSlots(); n != 0 {
		t.Errorf("expected no error elements, got %d", n)
	}
	for _, f := range Fields {
		if v.HasError(f) {
			t.Errorf("%s still marked invalid", f)
		}
	}
	if !v.State().Valid() {
		t.Errorf("state should be clean, got %v", v.State().Errors)
	}
}

func TestValidateFieldClearsPreviousError(t *testing.T) {
	reg := NewMemoryRegistry()
	v := New(reg)

	reg.Set(FieldName, "A")
	if v.ValidateField(FieldName) {
		t.Fatal("single letter name should be invalid")
	}
	if got := v.State().Get(FieldName); got != MsgNameMinLength {
		t.Fatalf("message = %q", got)
	}

	reg.Set(FieldName, "A1")
	v.ValidateField(FieldName)
	if got := v.State().Get(FieldName); got != MsgNamePattern {
		t.Fatalf("message = %q, want pattern message", got)
	}

	reg.Set(FieldName, "Ab")
	if !v.ValidateField(FieldName) {
		t.Fatal("expected valid name")
	}
	if v.HasError(FieldName) || reg.ErrorSlots() != 0 {
		t.Error("error should be removed after a successful validation")
	}
}

func TestValidateFieldUsesTrimmedValue(t *testing.T) {
	reg := NewMemoryRegistry()
	v := New(reg)

	reg.Set(FieldMessage, "   "+strings.Repeat("x", 10)+"   ")
	if !v.ValidateField(FieldMessage) {
		t.Fatal("expected trimmed message to be valid")
	}
	if got := reg.Values()[FieldMessage]; !strings.HasPrefix(got, "   ") {
		t.Errorf("stored value should not be rewritten, got %q", got)
	}
}

func TestValidateUnregisteredField(t *testing.T) {
	reg := NewMemoryRegistry()
	v := New(reg)

	if !v.ValidateField(Field("company")) {
		t.Error("unregistered field should validate")
	}
	v.ShowFieldError(Field("company"), "x")
	v.ClearFieldError(Field("company"))
	if reg.ErrorSlots() != 0 {
		t.Error("unregistered field must not create error elements")
	}
}

func TestObserverReceivesResults(t *testing.T) {
	reg := NewMemoryRegistry()
	var got []Result
	v := New(reg, WithObserver(func(res Result) { got = append(got, res) }))

	reg.Set(FieldEmail, "a@b")
	v.ValidateField(FieldEmail)

	if len(got) != 1 {
		t.Fatalf("expected one result, got %d", len(got))
	}
	if got[0].Field != FieldEmail || got[0].Rule != RulePattern || got[0].Valid {
		t.Errorf("unexpected result: %+v", got[0])
	}
}

func TestReset(t *testing.T) {
	reg := NewMemoryRegistry()
	validValues(reg)
	v := New(reg)
	v.ShowFieldError(FieldName, "x")

	v.Reset()

	for f, value := range reg.Values() {
		if value != "" {
			t.Errorf("%s = %q after reset", f, value)
		}
	}
	if reg.ErrorSlots() != 0 {
		t.Error("reset should clear errors")
	}
}

func TestMemoryRegistryFocus(t *testing.T) {
	reg := NewMemoryRegistry()
	if _, ok := reg.Focused(); ok {
		t.Fatal("nothing should be focused initially")
	}
	ctl, _ := reg.Control(FieldEmail)
	ctl.Focus()
	if f, ok := reg.Focused(); !ok || f != FieldEmail {
		t.Errorf("Focused() = %q, %v", f, ok)
	}
}
