package errors

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	codeColor  = color.New(color.FgWhite, color.Bold)
	hintColor  = color.New(color.FgCyan)
	dimColor   = color.New(color.FgHiBlack)
	linkColor  = color.New(color.FgBlue)
)

// DisableColors disables ANSI color output.
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables ANSI color output.
func EnableColors() {
	color.NoColor = false
}

// Format returns the error formatted for terminal display.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(errorColor.Sprint("ERROR "))
	if e.Code != "" {
		b.WriteString(codeColor.Sprint(e.Code + ": "))
	}
	b.WriteString(e.Message)
	b.WriteString("\n\n")

	detail := e.Detail
	if detail == "" && e.Wrapped != nil {
		detail = e.Wrapped.Error()
	}
	if detail != "" {
		for _, line := range wrapText(detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(hintColor.Sprint("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	if e.Example != "" {
		b.WriteString("  ")
		b.WriteString(hintColor.Sprint("Example:"))
		b.WriteString("\n")
		for _, line := range strings.Split(e.Example, "\n") {
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.DocURL != "" {
		b.WriteString("  ")
		b.WriteString(dimColor.Sprint("Learn more: "))
		b.WriteString(linkColor.Sprint(e.DocURL))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatCompact returns a single-line error format.
func (e *Error) FormatCompact() string {
	return e.Error()
}

type jsonError struct {
	Code       string   `json:"code,omitempty"`
	Category   Category `json:"category"`
	Message    string   `json:"message"`
	Detail     string   `json:"detail,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
	DocURL     string   `json:"docUrl,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *Error) FormatJSON() string {
	data, _ := json.Marshal(jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	})
	return string(data)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
