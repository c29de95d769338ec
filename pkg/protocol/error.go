package protocol

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the type of error.
type ErrorCode uint16

const (
	ErrUnknown         ErrorCode = 0x0000 // Unknown error
	ErrInvalidFrame    ErrorCode = 0x0001 // Malformed frame
	ErrInvalidEvent    ErrorCode = 0x0002 // Malformed event
	ErrHandlerNotFound ErrorCode = 0x0003 // No handler for HID
	ErrHandlerPanic    ErrorCode = 0x0004 // Handler panicked
	ErrRateLimited     ErrorCode = 0x0006 // Too many requests
	ErrServerError     ErrorCode = 0x0100 // Internal server error
)

var codeNames = map[ErrorCode]string{
	ErrUnknown:         "unknown",
	ErrInvalidFrame:    "invalid_frame",
	ErrInvalidEvent:    "invalid_event",
	ErrHandlerNotFound: "handler_not_found",
	ErrHandlerPanic:    "handler_panic",
	ErrRateLimited:     "rate_limited",
	ErrServerError:     "server_error",
}

// String returns the wire name of the error code.
func (ec ErrorCode) String() string {
	if s, ok := codeNames[ec]; ok {
		return s
	}
	return "unknown"
}

// MarshalText encodes the code by name.
func (ec ErrorCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

// UnmarshalText decodes a code name. Unrecognised names become ErrUnknown.
func (ec *ErrorCode) UnmarshalText(text []byte) error {
	for code, name := range codeNames {
		if name == string(text) {
			*ec = code
			return nil
		}
	}
	*ec = ErrUnknown
	return nil
}

// ErrorMessage is sent when a client frame could not be handled.
type ErrorMessage struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Fatal   bool      `json:"fatal,omitempty"`
}

// Error implements error.
func (em *ErrorMessage) Error() string {
	return fmt.Sprintf("%s: %s", em.Code, em.Message)
}

// NewError creates an ErrorMessage.
func NewError(code ErrorCode, message string) *ErrorMessage {
	return &ErrorMessage{Code: code, Message: message}
}

// ErrorFor maps a decoding error to the code reported to the client.
func ErrorFor(err error) *ErrorMessage {
	switch {
	case errors.Is(err, ErrUnknownEvent), errors.Is(err, ErrMissingHID),
		errors.Is(err, ErrValueTooLong), errors.Is(err, ErrInvalidUTF8):
		return NewError(ErrInvalidEvent, err.Error())
	case errors.Is(err, ErrFrameTooLarge):
		return &ErrorMessage{Code: ErrInvalidFrame, Message: err.Error(), Fatal: true}
	default:
		return NewError(ErrInvalidFrame, err.Error())
	}
}
