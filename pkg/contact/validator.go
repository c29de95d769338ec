package contact

// FormValidator keeps the error display of a form in sync with its values.
//
// It is not safe for concurrent use; callers drive it from a single event
// loop, one event at a time.
type FormValidator struct {
	reg     Registry
	observe func(Result)
}

// Option configures a FormValidator.
type Option func(*FormValidator)

// WithObserver registers fn to be called with the outcome of every field
// validation.
func WithObserver(fn func(Result)) Option {
	return func(v *FormValidator) {
		v.observe = fn
	}
}

// New creates a FormValidator over reg.
func New(reg Registry, opts ...Option) *FormValidator {
	v := &FormValidator{reg: reg}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Registry returns the registry the validator works on.
func (v *FormValidator) Registry() Registry {
	return v.reg
}

// ClearValidationErrors removes every error element and every error marker.
func (v *FormValidator) ClearValidationErrors() {
	for _, f := range v.reg.Fields() {
		v.ClearFieldError(f)
	}
}

// ShowFieldError marks field as invalid and shows msg in its error element.
// Calling it again replaces the message; there is never more than one
// error element per field.
func (v *FormValidator) ShowFieldError(field Field, msg string) {
	ctl, ok := v.reg.Control(field)
	if !ok {
		return
	}
	ctl.SetErrorMarker(true)
	ctl.EnsureErrorSlot().SetText(msg)
}

// ClearFieldError removes the error marker and error element of field.
// It is a no-op for a field without an error.
func (v *FormValidator) ClearFieldError(field Field) {
	ctl, ok := v.reg.Control(field)
	if !ok {
		return
	}
	ctl.SetErrorMarker(false)
	ctl.RemoveErrorSlot()
}

// ValidateField re-validates field from its current value.
// The previous error is cleared first; on failure the new one is shown.
func (v *FormValidator) ValidateField(field Field) bool {
	ctl, ok := v.reg.Control(field)
	if !ok {
		return true
	}

	v.ClearFieldError(field)

	res := Check(field, ctl.Value())
	if v.observe != nil {
		v.observe(res)
	}
	if !res.Valid {
		v.ShowFieldError(field, res.Message)
		return false
	}
	return true
}

// ValidateForm validates every form field, without stopping at the first
// failure, and reports whether all of them are valid.
func (v *FormValidator) ValidateForm() bool {
	valid := true
	for _, f := range Fields {
		if !v.ValidateField(f) {
			valid = false
		}
	}
	return valid
}

// HasError reports whether field is currently marked invalid.
func (v *FormValidator) HasError(field Field) bool {
	ctl, ok := v.reg.Control(field)
	return ok && ctl.HasErrorMarker()
}

// FirstErrored returns the first field in document order that is marked
// invalid.
func (v *FormValidator) FirstErrored() (Field, bool) {
	for _, f := range v.reg.Fields() {
		if v.HasError(f) {
			return f, true
		}
	}
	return "", false
}

// State returns the displayed errors of the form.
func (v *FormValidator) State() FormState {
	state := NewFormState()
	for _, f := range v.reg.Fields() {
		ctl, ok := v.reg.Control(f)
		if !ok || !ctl.HasErrorMarker() {
			continue
		}
		msg := ""
		if slot := ctl.ErrorSlot(); slot != nil {
			msg = slot.Text()
		}
		state.Errors[f] = msg
	}
	return state
}

// Reset empties every field and clears all errors.
func (v *FormValidator) Reset() {
	for _, f := range v.reg.Fields() {
		if ctl, ok := v.reg.Control(f); ok {
			ctl.SetValue("")
		}
	}
	v.ClearValidationErrors()
}
