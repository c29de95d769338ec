// Package contact implements the validation and formatting rules of the
// contact dialog.
//
// # Overview
//
// The package has two layers. The pure layer checks a single value:
//
//	res := contact.Check(contact.FieldEmail, "a@b")
//	if !res.Valid {
//	    fmt.Println(res.Message) // Введите корректный email адрес
//	}
//
// and formats phone input as the user types:
//
//	contact.FormatPhone("89991234567") // +7 (999) 123-45-67
//	contact.FormatPhone("79991234567") // +7 (999) 123-45-67
//
// The stateful layer is FormValidator. It works against a Registry, an
// explicit mapping from field to the controls of whatever is showing the
// form (a vdom tree, a test double, a CLI). It keeps each field's error
// marker and error slot in sync with the latest validation result:
//
//	v := contact.New(reg)
//	if !v.ValidateForm() {
//	    field, _ := v.FirstErrored()
//	    focus(field)
//	}
//
// # Rules
//
// Rules are checked in a fixed order per field and the first failure wins:
//
//	name     required, min length 2, NamePattern
//	email    required, EmailPattern
//	phone    required, PhonePattern
//	topic    required
//	message  required, min length 10, max length 1000
//
// Values are trimmed before checking. Lengths count characters, not bytes.
package contact
