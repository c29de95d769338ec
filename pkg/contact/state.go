package contact

// FormState is the aggregate validity of the form.
// Errors holds the current message of every invalid field.
type FormState struct {
	Errors map[Field]string
}

// NewFormState returns a state with no errors.
func NewFormState() FormState {
	return FormState{Errors: make(map[Field]string)}
}

// Valid reports whether every field is valid.
func (s FormState) Valid() bool {
	return len(s.Errors) == 0
}

// Has reports whether field is invalid.
func (s FormState) Has(field Field) bool {
	_, ok := s.Errors[field]
	return ok
}

// Get returns the error message of field, or "".
func (s FormState) Get(field Field) string {
	return s.Errors[field]
}

// FirstInvalid returns the first invalid field in document order.
func (s FormState) FirstInvalid() (Field, bool) {
	for _, f := range Fields {
		if s.Has(f) {
			return f, true
		}
	}
	return "", false
}
