package ui

import (
	"github.com/vango-dev/contactform/pkg/contact"
	"github.com/vango-dev/contactform/pkg/vdom"
)

// treeRegistry implements contact.Registry on a vdom tree. Error elements
// are children of the control's parent, placed after the control.
type treeRegistry struct {
	root     *vdom.VNode
	fields   []contact.Field
	controls map[contact.Field]*treeControl
	focused  contact.Field
}

func newTreeRegistry(root *vdom.VNode) *treeRegistry {
	return &treeRegistry{
		root:     root,
		controls: make(map[contact.Field]*treeControl),
	}
}

// bind registers the element named after field. Missing elements are skipped.
func (r *treeRegistry) bind(field contact.Field) {
	node := vdom.FindByName(r.root, field.String())
	if node == nil {
		return
	}
	if _, ok := r.controls[field]; !ok {
		r.fields = append(r.fields, field)
	}
	r.controls[field] = &treeControl{registry: r, field: field, node: node}
}

func (r *treeRegistry) Fields() []contact.Field {
	return r.fields
}

func (r *treeRegistry) Control(field contact.Field) (contact.Control, bool) {
	c, ok := r.controls[field]
	if !ok {
		return nil, false
	}
	return c, true
}

// takeFocus returns the field focused since the last call.
func (r *treeRegistry) takeFocus() (contact.Field, bool) {
	f := r.focused
	r.focused = ""
	return f, f != ""
}

type treeControl struct {
	registry *treeRegistry
	field    contact.Field
	node     *vdom.VNode
}

func (c *treeControl) Kind() contact.Kind {
	switch c.node.Tag {
	case "select":
		return contact.KindSelect
	case "textarea":
		return contact.KindTextarea
	default:
		return contact.KindInput
	}
}

func (c *treeControl) Value() string {
	return c.node.StringAttr("value")
}

func (c *treeControl) SetValue(value string) {
	c.node.SetAttr("value", value)
}

func (c *treeControl) HasErrorMarker() bool {
	for _, cls := range contact.MarkerClasses {
		if c.node.HasClass(cls) {
			return true
		}
	}
	return false
}

func (c *treeControl) SetErrorMarker(on bool) {
	if on {
		c.node.AddClass(c.Kind().MarkerClass())
		c.node.SetAttr("aria-invalid", "true")
		return
	}
	c.node.RemoveClass(contact.MarkerClasses...)
	c.node.RemoveAttr("aria-invalid")
}

func (c *treeControl) parent() *vdom.VNode {
	return vdom.ParentOf(c.registry.root, c.node)
}

func (c *treeControl) slotNode() *vdom.VNode {
	p := c.parent()
	if p == nil {
		return nil
	}
	return vdom.QueryFirstClass(p, contact.ErrorClass)
}

func (c *treeControl) ErrorSlot() contact.ErrorSlot {
	n := c.slotNode()
	if n == nil {
		return nil
	}
	return treeSlot{n}
}

func (c *treeControl) EnsureErrorSlot() contact.ErrorSlot {
	if n := c.slotNode(); n != nil {
		return treeSlot{n}
	}
	n := vdom.Span(vdom.Class(contact.ErrorClass), vdom.Role("alert"))
	if p := c.parent(); p != nil {
		p.AppendChild(n)
	}
	return treeSlot{n}
}

func (c *treeControl) RemoveErrorSlot() {
	if n := c.slotNode(); n != nil {
		c.parent().RemoveChild(n)
	}
}

func (c *treeControl) Focus() {
	c.registry.focused = c.field
}

type treeSlot struct {
	node *vdom.VNode
}

func (s treeSlot) Text() string        { return s.node.TextContent() }
func (s treeSlot) SetText(text string) { s.node.SetTextContent(text) }
