package contact

// Registry maps form fields to the controls that display them.
// FormValidator never looks anything up by itself; everything it touches
// goes through a Registry.
type Registry interface {
	// Fields returns the registered fields in document order.
	Fields() []Field

	// Control returns the control for field, or false if it is not registered.
	Control(field Field) (Control, bool)
}

// Control is the capability set of a single form control.
type Control interface {
	// Kind returns the kind of control, which selects its error marker.
	Kind() Kind

	// Value returns the current raw value.
	Value() string

	// SetValue replaces the current value.
	SetValue(value string)

	// HasErrorMarker reports whether any error marker is set.
	HasErrorMarker() bool

	// SetErrorMarker adds the marker for the control's kind when on is true.
	// When on is false every error marker is removed.
	SetErrorMarker(on bool)

	// ErrorSlot returns the error element next to the control, or nil.
	ErrorSlot() ErrorSlot

	// EnsureErrorSlot returns the error element next to the control,
	// creating it if needed.
	EnsureErrorSlot() ErrorSlot

	// RemoveErrorSlot removes the error element, if any.
	RemoveErrorSlot()

	// Focus moves input focus to the control.
	Focus()
}

// ErrorSlot is the element holding a field's error message.
type ErrorSlot interface {
	Text() string
	SetText(text string)
}

// MemoryRegistry is a Registry with no document behind it.
// It backs the CLI and tests.
type MemoryRegistry struct {
	fields   []Field
	controls map[Field]*memoryControl
	focused  Field
}

// NewMemoryRegistry registers every form field with its default kind.
func NewMemoryRegistry() *MemoryRegistry {
	r := &MemoryRegistry{
		fields:   make([]Field, 0, len(Fields)),
		controls: make(map[Field]*memoryControl, len(Fields)),
	}
	for _, f := range Fields {
		r.Register(f, DefaultKind(f))
	}
	return r
}

// Register adds or replaces the control for field.
func (r *MemoryRegistry) Register(field Field, kind Kind) {
	if _, ok := r.controls[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.controls[field] = &memoryControl{registry: r, field: field, kind: kind, markers: make(map[string]bool)}
}

// Fields implements Registry.
func (r *MemoryRegistry) Fields() []Field {
	return r.fields
}

// Control implements Registry.
func (r *MemoryRegistry) Control(field Field) (Control, bool) {
	c, ok := r.controls[field]
	if !ok {
		return nil, false
	}
	return c, true
}

// Set is a shortcut for setting a field value.
func (r *MemoryRegistry) Set(field Field, value string) {
	if c, ok := r.controls[field]; ok {
		c.value = value
	}
}

// Values returns a copy of all field values.
func (r *MemoryRegistry) Values() map[Field]string {
	out := make(map[Field]string, len(r.controls))
	for f, c := range r.controls {
		out[f] = c.value
	}
	return out
}

// Focused returns the field that received focus last.
func (r *MemoryRegistry) Focused() (Field, bool) {
	return r.focused, r.focused != ""
}

// ErrorSlots counts the error elements currently present.
func (r *MemoryRegistry) ErrorSlots() int {
	n := 0
	for _, c := range r.controls {
		if c.slot != nil {
			n++
		}
	}
	return n
}

// Markers returns the error marker classes set on field.
func (r *MemoryRegistry) Markers(field Field) []string {
	c, ok := r.controls[field]
	if !ok {
		return nil
	}
	var out []string
	for _, cls := range MarkerClasses {
		if c.markers[cls] {
			out = append(out, cls)
		}
	}
	return out
}

type memoryControl struct {
	registry *MemoryRegistry
	field    Field
	kind     Kind
	value    string
	markers  map[string]bool
	slot     *memorySlot
}

func (c *memoryControl) Kind() Kind            { return c.kind }
func (c *memoryControl) Value() string         { return c.value }
func (c *memoryControl) SetValue(value string) { c.value = value }

func (c *memoryControl) HasErrorMarker() bool {
	return len(c.markers) > 0
}

func (c *memoryControl) SetErrorMarker(on bool) {
	if on {
		c.markers[c.kind.MarkerClass()] = true
		return
	}
	clear(c.markers)
}

func (c *memoryControl) ErrorSlot() ErrorSlot {
	if c.slot == nil {
		return nil
	}
	return c.slot
}

func (c *memoryControl) EnsureErrorSlot() ErrorSlot {
	if c.slot == nil {
		c.slot = &memorySlot{}
	}
	return c.slot
}

func (c *memoryControl) RemoveErrorSlot() { c.slot = nil }

func (c *memoryControl) Focus() { c.registry.focused = c.field }

type memorySlot struct{ text string }

func (s *memorySlot) Text() string        { return s.text }
func (s *memorySlot) SetText(text string) { s.text = text }
