package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
	Example    string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E100-E199)
	// ============================================

	"E100": {
		Category:   CategoryConfig,
		Message:    "Config file not found",
		Suggestion: "Create contactform.json or pass --config with the right path",
	},
	"E101": {
		Category:   CategoryConfig,
		Message:    "Invalid config file",
		Suggestion: "Check that contactform.json is valid JSON",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Invalid environment override",
		Suggestion: "Check the CONTACTFORM_* environment variables",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
	},
	"E104": {
		Category:   CategoryConfig,
		Message:    "Could not read env file",
		Suggestion: "Check the path passed with --env-file",
	},

	// ============================================
	// Server Errors (E200-E299)
	// ============================================

	"E210": {
		Category:   CategoryRuntime,
		Message:    "Could not start server",
		Suggestion: "Check that the address is free or choose another with --addr",
	},
	"E211": {
		Category:   CategoryRuntime,
		Message:    "Server shutdown failed",
		Suggestion: "Raise server.shutdownTimeout if sessions need longer to drain",
	},

	// ============================================
	// CLI Errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
	},
	"E301": {
		Category:   CategoryCLI,
		Message:    "Form is invalid",
		Suggestion: "Fix the fields reported above",
	},
	"E302": {
		Category: CategoryCLI,
		Message:  "Unknown field",
		Example:  "contactform check --name Иван --email ivan@example.com",
	},
}

// Lookup returns the template for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
