package contact

import "strings"

// PhonePrefix is the country code every formatted phone starts with.
const PhonePrefix = "+7"

// PhoneDigits is the number of digits after the country code.
const PhoneDigits = 10

// FormatPhone renders raw phone input as "+7 (DDD) DDD-DD-DD".
//
// All non-digits are dropped. A single leading 7 is treated as the country
// code and removed. A leading 8 is only treated as the domestic trunk prefix
// when it opens a complete eleven digit number ("89991234567"); in partial
// input it is an ordinary digit. At most ten digits are used and punctuation
// only appears once the digits after it exist, so partial input yields a
// partial mask:
//
//	""           -> "+7"
//	"99"         -> "+7 (99"
//	"999"        -> "+7 (999)"
//	"9991"       -> "+7 (999) 1"
//	"9991234567" -> "+7 (999) 123-45-67"
//
// The result depends only on the digits of input, so it is safe to apply on
// every keystroke.
func FormatPhone(input string) string {
	digits := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	switch {
	case len(digits) > 0 && digits[0] == '7':
		digits = digits[1:]
	case len(digits) == PhoneDigits+1 && digits[0] == '8':
		digits = digits[1:]
	}
	if len(digits) > PhoneDigits {
		digits = digits[:PhoneDigits]
	}

	var b strings.Builder
	b.Grow(len("+7 (999) 123-45-67"))
	b.WriteString(PhonePrefix)

	n := len(digits)
	if n == 0 {
		return b.String()
	}
	b.WriteString(" (")
	b.Write(digits[:min(n, 3)])
	if n < 3 {
		return b.String()
	}
	b.WriteByte(')')
	if n > 3 {
		b.WriteByte(' ')
		b.Write(digits[3:min(n, 6)])
	}
	if n > 6 {
		b.WriteByte('-')
		b.Write(digits[6:min(n, 8)])
	}
	if n > 8 {
		b.WriteByte('-')
		b.Write(digits[8:n])
	}
	return b.String()
}
