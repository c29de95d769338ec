package contact

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// space is the whitespace class used by the patterns. Unlike \s it also
// matches Unicode space separators, so a no-break space counts as whitespace.
const space = `\t\n\v\f\r\p{Zs}\x{FEFF}\x{2028}\x{2029}`

// Validation patterns.
var (
	// NamePattern accepts Cyrillic and Latin letters, whitespace and hyphens.
	NamePattern = regexp.MustCompile(`^[а-яА-ЯёЁa-zA-Z` + space + `-]+$`)

	// EmailPattern is a sanity check: something@something.something with no
	// whitespace and a single @.
	EmailPattern = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)

	// PhonePattern matches the fully formatted output of FormatPhone.
	PhonePattern = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)
)

// Length limits, in characters.
const (
	NameMinLength    = 2
	MessageMinLength = 10
	MessageMaxLength = 1000
)

// Error messages shown next to invalid fields.
const (
	MsgNameRequired    = "Имя обязательно для заполнения"
	MsgNameMinLength   = "Имя должно содержать минимум 2 символа"
	MsgNamePattern     = "Имя может содержать только буквы, пробелы и дефисы"
	MsgEmailRequired   = "Email обязателен для заполнения"
	MsgEmailPattern    = "Введите корректный email адрес"
	MsgPhoneRequired   = "Телефон обязателен для заполнения"
	MsgPhonePattern    = "Введите телефон в формате +7 (900) 000-00-00"
	MsgTopicRequired   = "Выберите тему обращения"
	MsgMessageRequired = "Сообщение обязательно для заполнения"
	MsgMessageMin      = "Сообщение должно содержать минимум 10 символов"
	MsgMessageMax      = "Сообщение не должно превышать 1000 символов"
)

// Rule names the kind of check that rejected a value.
type Rule string

const (
	RuleNone      Rule = ""
	RuleRequired  Rule = "required"
	RuleMinLength Rule = "min_length"
	RuleMaxLength Rule = "max_length"
	RulePattern   Rule = "pattern"
)

// Validator checks an already trimmed value.
type Validator interface {
	// Validate returns nil if the value is valid, or a ValidationError.
	Validate(value string) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value string) error

func (f ValidatorFunc) Validate(value string) error {
	return f(value)
}

// ValidationError describes the rule a value failed.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// Required rejects empty values.
func Required(msg string) Validator {
	return ValidatorFunc(func(value string) error {
		if value == "" {
			return ValidationError{Rule: RuleRequired, Message: msg}
		}
		return nil
	})
}

// MinLength rejects values shorter than n characters.
// Characters are code points of the NFC form, so a letter outside the BMP
// counts once.
func MinLength(n int, msg string) Validator {
	return ValidatorFunc(func(value string) error {
		if utf8.RuneCountInString(value) < n {
			return ValidationError{Rule: RuleMinLength, Message: msg}
		}
		return nil
	})
}

// MaxLength rejects values longer than n characters, counted in code
// points of the NFC form like MinLength.
func MaxLength(n int, msg string) Validator {
	return ValidatorFunc(func(value string) error {
		if utf8.RuneCountInString(value) > n {
			return ValidationError{Rule: RuleMaxLength, Message: msg}
		}
		return nil
	})
}

// Pattern rejects values that do not match re.
func Pattern(re *regexp.Regexp, msg string) Validator {
	return ValidatorFunc(func(value string) error {
		if !re.MatchString(value) {
			return ValidationError{Rule: RulePattern, Message: msg}
		}
		return nil
	})
}

// rules is the per-field rule table. Order matters: the first failure wins.
var rules = map[Field][]Validator{
	FieldName: {
		Required(MsgNameRequired),
		MinLength(NameMinLength, MsgNameMinLength),
		Pattern(NamePattern, MsgNamePattern),
	},
	FieldEmail: {
		Required(MsgEmailRequired),
		Pattern(EmailPattern, MsgEmailPattern),
	},
	FieldPhone: {
		Required(MsgPhoneRequired),
		Pattern(PhonePattern, MsgPhonePattern),
	},
	FieldTopic: {
		Required(MsgTopicRequired),
	},
	FieldMessage: {
		Required(MsgMessageRequired),
		MinLength(MessageMinLength, MsgMessageMin),
		MaxLength(MessageMaxLength, MsgMessageMax),
	},
}

// Result is the outcome of checking one field.
// An invalid Result carries exactly one message.
type Result struct {
	Field   Field
	Valid   bool
	Rule    Rule
	Message string
}

// Check trims value and applies the rules of field in order.
// Unknown fields have no rules and are always valid.
//
// The value is checked in NFC form, so a letter typed as a base letter plus
// a combining mark ("е" + U+0308) counts as the single letter "ё".
func Check(field Field, value string) Result {
	value = norm.NFC.String(strings.TrimFunc(value, isSpace))
	for _, v := range rules[field] {
		if err := v.Validate(value); err != nil {
			res := Result{Field: field, Rule: RulePattern, Message: err.Error()}
			if ve, ok := err.(ValidationError); ok {
				res.Rule = ve.Rule
			}
			return res
		}
	}
	return Result{Field: field, Valid: true}
}

// isSpace reports whether r is trimmed from values: Unicode white space
// plus U+FEFF, without U+0085.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// CheckAll checks every form field against values.
// Missing entries are treated as empty.
func CheckAll(values map[Field]string) FormState {
	state := NewFormState()
	for _, f := range Fields {
		if res := Check(f, values[f]); !res.Valid {
			state.Errors[f] = res.Message
		}
	}
	return state
}
