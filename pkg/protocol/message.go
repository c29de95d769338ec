package protocol

import "encoding/json"

// MessageType discriminates server messages.
type MessageType string

const (
	MessageUpdate MessageType = "update"
	MessageError  MessageType = "error"
)

// ClientEvent is a named custom event the client re-dispatches on
// document, such as a toast.
type ClientEvent struct {
	Name string `json:"name"`
	Data any    `json:"data,omitempty"`
}

// Message is a server to client frame.
type Message struct {
	Type MessageType `json:"type"`

	// Seq echoes the event that caused the update. Zero for the initial
	// render and for unsolicited messages.
	Seq uint64 `json:"seq,omitempty"`

	HTML   string        `json:"html,omitempty"`
	Open   bool          `json:"open"`
	Focus  string        `json:"focus,omitempty"`
	Events []ClientEvent `json:"events,omitempty"`

	Error *ErrorMessage `json:"error,omitempty"`
}

// NewUpdate creates an update message carrying the rendered component.
func NewUpdate(seq uint64, html string, open bool) *Message {
	return &Message{Type: MessageUpdate, Seq: seq, HTML: html, Open: open}
}

// NewErrorMessage wraps em in a message.
func NewErrorMessage(seq uint64, em *ErrorMessage) *Message {
	return &Message{Type: MessageError, Seq: seq, Error: em}
}

// Encode marshals m.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// DecodeMessage parses a server frame.
func DecodeMessage(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
