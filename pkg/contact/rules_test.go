package contact

import (
	"strings"
	"testing"
)

func TestCheckRequired(t *testing.T) {
	want := map[Field]string{
		FieldName:    MsgNameRequired,
		FieldEmail:   MsgEmailRequired,
		FieldPhone:   MsgPhoneRequired,
		FieldTopic:   MsgTopicRequired,
		FieldMessage: MsgMessageRequired,
	}

	for _, f := range Fields {
		for _, value := range []string{"", "   ", "\t\n"} {
			res := Check(f, value)
			if res.Valid {
				t.Fatalf("Check(%s, %q) should fail", f, value)
			}
			if res.Rule != RuleRequired {
				t.Errorf("Check(%s, %q).Rule = %q, want %q", f, value, res.Rule, RuleRequired)
			}
			if res.Message != want[f] {
				t.Errorf("Check(%s, %q).Message = %q, want %q", f, value, res.Message, want[f])
			}
		}
	}
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		value string
		rule  Rule
		msg   string
	}{
		{"Ян", RuleNone, ""},
		{"Анна-Мария", RuleNone, ""},
		{"John Smith", RuleNone, ""},
		{"Пётр Ёжиков", RuleNone, ""},
		{"Пе\u0308тр", RuleNone, ""},
		{"  Ivan  ", RuleNone, ""},
		{"Анна\u00a0Мария", RuleNone, ""},
		{"\ufeffИван\u3000", RuleNone, ""},
		{"\u00a0Я\u2003", RuleMinLength, MsgNameMinLength},
		{"Ivan\u0085", RulePattern, MsgNamePattern},
		{"A", RuleMinLength, MsgNameMinLength},
		{" Я ", RuleMinLength, MsgNameMinLength},
		{"Ivan2", RulePattern, MsgNamePattern},
		{"Ivan_Petrov", RulePattern, MsgNamePattern},
		{"O'Brien", RulePattern, MsgNamePattern},
		{"Anna!", RulePattern, MsgNamePattern},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			res := Check(FieldName, tt.value)
			if tt.rule == RuleNone {
				if !res.Valid {
					t.Fatalf("expected %q to be valid, got %q", tt.value, res.Message)
				}
				return
			}
			if res.Valid {
				t.Fatalf("expected %q to be invalid", tt.value)
			}
			if res.Rule != tt.rule || res.Message != tt.msg {
				t.Errorf("got (%s, %q), want (%s, %q)", res.Rule, res.Message, tt.rule, tt.msg)
			}
		})
	}
}

func TestCheckEmail(t *testing.T) {
	valid := []string{"a@b.c", "user@example.com", "first.last@sub.domain.ru", " a@b.c ", "\u00a0a@b.c\ufeff"}
	invalid := []string{"a@b", "a.b@", "a b@c.d", "@b.c", "a@@b.c", "a@b.", "plain", "a\u00a0b@c.d", "a@b\u2003c.d", "a@b.c\u2028d"}

	for _, v := range valid {
		if res := Check(FieldEmail, v); !res.Valid {
			t.Errorf("expected %q to be valid, got %q", v, res.Message)
		}
	}
	for _, v := range invalid {
		res := Check(FieldEmail, v)
		if res.Valid {
			t.Errorf("expected %q to be invalid", v)
			continue
		}
		if res.Message != MsgEmailPattern {
			t.Errorf("Check(email, %q).Message = %q, want %q", v, res.Message, MsgEmailPattern)
		}
	}
}

func TestCheckPhone(t *testing.T) {
	valid := []string{"+7 (999) 123-45-67", "+7 (900) 000-00-00"}
	invalid := []string{"+7 (999) 123-45-6", "89991234567", "+7 999 123-45-67", "+8 (999) 123-45-67", "+7 (999)"}

	for _, v := range valid {
		if res := Check(FieldPhone, v); !res.Valid {
			t.Errorf("expected %q to be valid, got %q", v, res.Message)
		}
	}
	for _, v := range invalid {
		res := Check(FieldPhone, v)
		if res.Valid {
			t.Errorf("expected %q to be invalid", v)
			continue
		}
		if res.Message != MsgPhonePattern {
			t.Errorf("Check(phone, %q).Message = %q, want %q", v, res.Message, MsgPhonePattern)
		}
	}
}

func TestCheckTopic(t *testing.T) {
	if res := Check(FieldTopic, "support"); !res.Valid {
		t.Errorf("expected any non-empty topic to be valid, got %q", res.Message)
	}
}

func TestCheckMessageLength(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
		msg   string
	}{
		{"9 chars", strings.Repeat("a", 9), false, MsgMessageMin},
		{"10 chars", strings.Repeat("a", 10), true, ""},
		{"10 cyrillic chars", strings.Repeat("я", 10), true, ""},
		{"9 chars padded", "  " + strings.Repeat("a", 9) + "  ", false, MsgMessageMin},
		{"1000 chars", strings.Repeat("a", 1000), true, ""},
		{"1000 cyrillic chars", strings.Repeat("ж", 1000), true, ""},
		{"1001 chars", strings.Repeat("a", 1001), false, MsgMessageMax},
		{"10 astral chars", strings.Repeat("😀", 10), true, ""},
		{"1000 astral chars", strings.Repeat("😀", 1000), true, ""},
		{"9 chars decomposed", strings.Repeat("е\u0308", 9) + " ", false, MsgMessageMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Check(FieldMessage, tt.value)
			if res.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (%q)", res.Valid, tt.valid, res.Message)
			}
			if res.Message != tt.msg {
				t.Errorf("Message = %q, want %q", res.Message, tt.msg)
			}
		})
	}
}

func TestCheckUnknownField(t *testing.T) {
	if res := Check(Field("company"), ""); !res.Valid {
		t.Errorf("unknown field should have no rules, got %q", res.Message)
	}
}

func TestCheckAll(t *testing.T) {
	values := map[Field]string{
		FieldName:    "Иван",
		FieldEmail:   "ivan@example.com",
		FieldPhone:   "+7 (999) 123-45-67",
		FieldTopic:   "support",
		FieldMessage: "Здравствуйте, нужна помощь",
	}
	if state := CheckAll(values); !state.Valid() {
		t.Fatalf("expected valid state, got %v", state.Errors)
	}

	values[FieldPhone] = "123"
	state := CheckAll(values)
	if state.Valid() {
		t.Fatal("expected invalid state")
	}
	if len(state.Errors) != 1 || state.Get(FieldPhone) != MsgPhonePattern {
		t.Errorf("unexpected errors: %v", state.Errors)
	}
	if f, ok := state.FirstInvalid(); !ok || f != FieldPhone {
		t.Errorf("FirstInvalid() = %q, %v", f, ok)
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseField("Name"); err != ErrUnknownField {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestKindMarkerClass(t *testing.T) {
	tests := map[Field]string{
		FieldName:    InputErrorClass,
		FieldEmail:   InputErrorClass,
		FieldPhone:   InputErrorClass,
		FieldTopic:   SelectErrorClass,
		FieldMessage: TextareaErrorClass,
	}
	for f, want := range tests {
		if got := DefaultKind(f).MarkerClass(); got != want {
			t.Errorf("DefaultKind(%s).MarkerClass() = %q, want %q", f, got, want)
		}
	}
}
