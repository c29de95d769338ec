package vdom

import (
	"fmt"
	"slices"
	"strings"
)

// Attr returns the attribute value stored under key.
func (v *VNode) Attr(key string) (any, bool) {
	if v == nil || v.Props == nil {
		return nil, false
	}
	val, ok := v.Props[key]
	return val, ok
}

// StringAttr returns the attribute under key formatted as a string.
// Missing attributes yield "".
func (v *VNode) StringAttr(key string) string {
	val, ok := v.Attr(key)
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

// SetAttr sets an attribute.
func (v *VNode) SetAttr(key string, value any) {
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[key] = value
}

// RemoveAttr deletes an attribute.
func (v *VNode) RemoveAttr(key string) {
	delete(v.Props, key)
}

// Classes returns the class list of the node.
func (v *VNode) Classes() []string {
	return strings.Fields(v.StringAttr("class"))
}

// HasClass reports whether class is in the class list.
func (v *VNode) HasClass(class string) bool {
	return slices.Contains(v.Classes(), class)
}

// AddClass appends classes that are not already present.
func (v *VNode) AddClass(classes ...string) {
	list := v.Classes()
	changed := false
	for _, c := range classes {
		if c == "" || slices.Contains(list, c) {
			continue
		}
		list = append(list, c)
		changed = true
	}
	if changed {
		v.SetAttr("class", strings.Join(list, " "))
	}
}

// RemoveClass removes classes from the class list. The class attribute is
// dropped once it is empty.
func (v *VNode) RemoveClass(classes ...string) {
	list := v.Classes()
	kept := list[:0]
	for _, c := range list {
		if !slices.Contains(classes, c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		v.RemoveAttr("class")
		return
	}
	v.SetAttr("class", strings.Join(kept, " "))
}

// AppendChild adds child as the last child of v.
func (v *VNode) AppendChild(child *VNode) {
	if child == nil {
		return
	}
	v.Children = append(v.Children, child)
}

// RemoveChild removes child from v and reports whether it was found.
func (v *VNode) RemoveChild(child *VNode) bool {
	for i, c := range v.Children {
		if c == child {
			v.Children = append(v.Children[:i], v.Children[i+1:]...)
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the subtree.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	var b strings.Builder
	for _, c := range v.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetTextContent replaces all children with a single text node.
func (v *VNode) SetTextContent(text string) {
	v.Children = []*VNode{Text(text)}
}

// Walk calls fn for node and every descendant, depth first.
// Returning false from fn skips the node's children.
func Walk(node *VNode, fn func(n *VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, c := range node.Children {
		Walk(c, fn)
	}
}

// Find returns the first node in document order that satisfies match.
func Find(root *VNode, match func(n *VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByName returns the first element whose name attribute equals name.
func FindByName(root *VNode, name string) *VNode {
	return Find(root, func(n *VNode) bool {
		return n.Kind == KindElement && n.StringAttr("name") == name
	})
}

// FindByID returns the element with the given id attribute.
func FindByID(root *VNode, id string) *VNode {
	return Find(root, func(n *VNode) bool {
		return n.Kind == KindElement && n.StringAttr("id") == id
	})
}

// FindByHID returns the element with the given hydration ID.
func FindByHID(root *VNode, hid string) *VNode {
	if hid == "" {
		return nil
	}
	return Find(root, func(n *VNode) bool {
		return n.HID == hid
	})
}

// ParentOf returns the parent of target within root, or nil.
func ParentOf(root, target *VNode) *VNode {
	return Find(root, func(n *VNode) bool {
		for _, c := range n.Children {
			if c == target {
				return true
			}
		}
		return false
	})
}

// QueryClass returns every element under root (root included) carrying class.
func QueryClass(root *VNode, class string) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindElement && n.HasClass(class) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// QueryFirstClass returns the first element under root carrying class.
func QueryFirstClass(root *VNode, class string) *VNode {
	return Find(root, func(n *VNode) bool {
		return n.Kind == KindElement && n.HasClass(class)
	})
}
