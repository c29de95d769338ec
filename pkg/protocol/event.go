package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// EventType identifies the type of client event.
type EventType string

// Event types the client forwards.
const (
	EventClick  EventType = "click"
	EventInput  EventType = "input"
	EventChange EventType = "change"
	EventSubmit EventType = "submit"
	EventFocus  EventType = "focus"
	EventBlur   EventType = "blur"
	EventCancel EventType = "cancel"
)

var knownEvents = map[EventType]bool{
	EventClick:  true,
	EventInput:  true,
	EventChange: true,
	EventSubmit: true,
	EventFocus:  true,
	EventBlur:   true,
	EventCancel: true,
}

// Valid reports whether et is a known event type.
func (et EventType) Valid() bool {
	return knownEvents[et]
}

// String returns the event name.
func (et EventType) String() string {
	return string(et)
}

// Decoding errors.
var (
	ErrEmptyFrame   = errors.New("protocol: empty frame")
	ErrUnknownEvent = errors.New("protocol: unknown event type")
	ErrMissingHID   = errors.New("protocol: missing hid")
	ErrValueTooLong = errors.New("protocol: value too long")
	ErrInvalidUTF8  = errors.New("protocol: value is not valid UTF-8")
)

// Event is a DOM event reported by the client.
type Event struct {
	Seq   uint64    `json:"seq"`
	Type  EventType `json:"type"`
	HID   string    `json:"hid"`
	Value string    `json:"value,omitempty"`
}

// DecodeEvent parses and checks a client frame.
func DecodeEvent(data []byte, limits Limits) (*Event, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyFrame
	}
	if limits.MaxFrameSize > 0 && len(data) > limits.MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(data))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var ev Event
	if err := dec.Decode(&ev); err != nil {
		return nil, fmt.Errorf("protocol: decode event: %w", err)
	}
	if dec.More() {
		return nil, errors.New("protocol: trailing data after event")
	}

	if !ev.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	if ev.HID == "" {
		return nil, ErrMissingHID
	}
	if !utf8.ValidString(ev.Value) {
		return nil, ErrInvalidUTF8
	}
	if limits.MaxValueLength > 0 && utf8.RuneCountInString(ev.Value) > limits.MaxValueLength {
		return nil, fmt.Errorf("%w: %d characters", ErrValueTooLong, utf8.RuneCountInString(ev.Value))
	}
	return &ev, nil
}

// EncodeEvent encodes an event frame. The client does this in JavaScript;
// Go callers are tests and tools.
func EncodeEvent(ev *Event) ([]byte, error) {
	return json.Marshal(ev)
}
