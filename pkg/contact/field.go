package contact

import "errors"

// Field identifies one of the contact form inputs.
type Field string

// Form fields.
const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldTopic   Field = "topic"
	FieldMessage Field = "message"
)

// Fields lists every form field in document order.
// Whole-form validation and focus selection follow this order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldTopic, FieldMessage}

// ErrUnknownField is returned when a name does not match any form field.
var ErrUnknownField = errors.New("contact: unknown field")

// ParseField converts a form field name into a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// String returns the field name.
func (f Field) String() string {
	return string(f)
}

// Kind is the kind of control a field is rendered as.
// Error markers differ per kind.
type Kind uint8

const (
	KindInput    Kind = iota // <input>
	KindSelect               // <select>
	KindTextarea             // <textarea>
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindSelect:
		return "select"
	case KindTextarea:
		return "textarea"
	default:
		return "unknown"
	}
}

// CSS classes used for error display.
const (
	ErrorClass         = "form__error"
	InputErrorClass    = "form__input--error"
	SelectErrorClass   = "form__select--error"
	TextareaErrorClass = "form__textarea--error"
)

// MarkerClasses lists every error marker class, regardless of kind.
var MarkerClasses = []string{InputErrorClass, SelectErrorClass, TextareaErrorClass}

// MarkerClass returns the error marker class for a control kind.
func (k Kind) MarkerClass() string {
	switch k {
	case KindSelect:
		return SelectErrorClass
	case KindTextarea:
		return TextareaErrorClass
	default:
		return InputErrorClass
	}
}

// DefaultKind returns the control kind the contact form uses for a field.
func DefaultKind(f Field) Kind {
	switch f {
	case FieldTopic:
		return KindSelect
	case FieldMessage:
		return KindTextarea
	default:
		return KindInput
	}
}
