package render

import "strings"

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	return escape(s, false)
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes whitespace
// characters that could break attribute parsing.
func escapeAttr(s string) string {
	return escape(s, true)
}

func escape(s string, attr bool) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			if attr {
				buf.WriteString("&#10;")
			} else {
				buf.WriteRune(r)
			}
		case '\r':
			if attr {
				buf.WriteString("&#13;")
			} else {
				buf.WriteRune(r)
			}
		case '\t':
			if attr {
				buf.WriteString("&#9;")
			} else {
				buf.WriteRune(r)
			}
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
