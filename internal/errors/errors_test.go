package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"config error", "E101", "Invalid config file", CategoryConfig},
		{"runtime error", "E210", "Could not start server", CategoryRuntime},
		{"cli error", "E301", "Form is invalid", CategoryCLI},
		{"unknown error code", "E999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := New("E101").WithDetail("unexpected end of JSON input")
	if got := err.Error(); got != "E101: Invalid config file: unexpected end of JSON input" {
		t.Errorf("Error() = %q", got)
	}
	if got := Newf(CategoryCLI, "bad %s", "flag").Error(); got != "bad flag" {
		t.Errorf("Newf Error() = %q", got)
	}
}

func TestWrapAndHasCode(t *testing.T) {
	err := New("E100").Wrap(fs.ErrNotExist)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped error not found by errors.Is")
	}

	outer := fmt.Errorf("loading: %w", err)
	if !HasCode(outer, "E100") {
		t.Error("HasCode missed wrapped code")
	}
	if HasCode(outer, "E101") {
		t.Error("HasCode matched wrong code")
	}
	if FromError(outer, "E300") != err {
		t.Error("FromError did not return the existing error")
	}
	if got := FromError(fs.ErrPermission, "E104"); got.Code != "E104" || !stderrors.Is(got, fs.ErrPermission) {
		t.Errorf("FromError = %+v", got)
	}
	if FromError(nil, "E100") != nil {
		t.Error("FromError(nil) != nil")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := New("E302").WithDetail("field \"age\" is not part of the form").Format()
	for _, want := range []string{"ERROR E302: Unknown field", "field \"age\"", "Example:", "contactform check"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() emitted colors while disabled")
	}
}

func TestFormatJSON(t *testing.T) {
	var got map[string]string
	if err := json.Unmarshal([]byte(New("E100").FormatJSON()), &got); err != nil {
		t.Fatal(err)
	}
	if got["code"] != "E100" || got["category"] != "config" || got["suggestion"] == "" {
		t.Errorf("FormatJSON = %v", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %q, want %q", lines, want)
	}
	if wrapText("   ", 10) != nil {
		t.Error("blank text should wrap to nothing")
	}
}
