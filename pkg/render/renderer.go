package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/contactform/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and may be shared.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0, "")
}

// renderNode dispatches rendering based on node kind.
// selected is the value of the closest enclosing <select>.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int, selected string) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth, selected)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node.Children, depth, selected)
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render(), depth, selected)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderChildren(w io.Writer, children []*vdom.VNode, depth int, selected string) error {
	for _, child := range children {
		if err := r.renderNode(w, child, depth, selected); err != nil {
			return err
		}
	}
	return nil
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int, selected string) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("render: element without tag")
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if tag == "option" && selected != "" && node.StringAttr("value") == selected {
		if _, err := io.WriteString(w, " selected"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		r.newline(w)
		return nil
	}

	switch tag {
	case "textarea":
		// The live value is the content; static children are only the
		// initial value.
		if v, ok := node.Attr("value"); ok {
			if _, err := io.WriteString(w, escapeHTML(attrToString(v))); err != nil {
				return err
			}
		} else if err := r.renderChildren(w, node.Children, depth+1, ""); err != nil {
			return err
		}
	case "select":
		if err := r.renderBlock(w, node, depth, node.StringAttr("value")); err != nil {
			return err
		}
	default:
		if err := r.renderBlock(w, node, depth, selected); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

func (r *Renderer) renderBlock(w io.Writer, node *vdom.VNode, depth int, selected string) error {
	block := r.config.Pretty && hasElementChildren(node) && !isInlineElement(node.Tag)
	if block {
		io.WriteString(w, "\n")
	}
	if err := r.renderChildren(w, node.Children, depth+1, selected); err != nil {
		return err
	}
	if block {
		r.writeIndent(w, depth)
	}
	return nil
}

func hasElementChildren(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind != vdom.KindText {
			return true
		}
	}
	return false
}

// renderAttributes renders all attributes for an element.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]

		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			events = append(events, strings.ToLower(key[2:]))
			continue
		}
		if strings.HasPrefix(key, "_") {
			continue
		}
		// Rendered as content / selected option instead.
		if key == "value" && (node.Tag == "textarea" || node.Tag == "select") {
			continue
		}

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := fmt.Fprintf(w, " %s", key); err != nil {
						return err
					}
				}
				continue
			}
		}

		// value="" must still be written so the client sees a reset field.
		s := attrToString(value)
		if s == "" && key != "value" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
			return err
		}
	}

	if node.HID != "" {
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, escapeAttr(node.HID)); err != nil {
			return err
		}
		for _, ev := range events {
			if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// isEventHandler returns true if the value looks like an event handler.
func isEventHandler(value any) bool {
	switch value.(type) {
	case nil:
		return false
	case func(), func(string), vdom.EventHandler:
		return true
	default:
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
