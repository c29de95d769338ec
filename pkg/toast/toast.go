package toast

// EventName is the event name dispatched for toasts.
// Client-side code should listen for this event.
const EventName = "contact:toast"

// Type represents the toast notification type.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Emitter dispatches a named custom event to the client.
type Emitter interface {
	Emit(name string, data any)
}

// Toast is the event detail delivered to the client.
type Toast struct {
	Level   Type   `json:"level"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// Show displays a toast notification to the user.
func Show(e Emitter, level Type, message string) {
	e.Emit(EventName, Toast{Level: level, Message: message})
}

// Success shows a success toast.
//
//	toast.Success(e, "Changes saved!")
func Success(e Emitter, message string) {
	Show(e, TypeSuccess, message)
}

// Error shows an error toast.
func Error(e Emitter, message string) {
	Show(e, TypeError, message)
}

// Warning shows a warning toast.
func Warning(e Emitter, message string) {
	Show(e, TypeWarning, message)
}

// Info shows an info toast.
func Info(e Emitter, message string) {
	Show(e, TypeInfo, message)
}

// WithTitle shows a toast with a title and message.
func WithTitle(e Emitter, level Type, title, message string) {
	e.Emit(EventName, Toast{Level: level, Title: title, Message: message})
}
