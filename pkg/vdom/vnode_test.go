package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, false},
		{"text node", &VNode{Kind: KindText, Text: "hello"}, false},
		{"element without handlers", &VNode{Kind: KindElement, Tag: "div", Props: Props{"class": "test"}}, false},
		{"element with onclick", &VNode{Kind: KindElement, Tag: "button", Props: Props{"onclick": func() {}}}, true},
		{"element with onblur", &VNode{Kind: KindElement, Tag: "input", Props: Props{"onblur": func() {}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsInteractive(); got != tt.want {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateElementArgs(t *testing.T) {
	handler := func() {}
	node := Div(
		nil,
		Class("a", "b"),
		[]Attr{ID("x"), {}},
		AttrIf(false, Disabled()),
		"text",
		Span(),
		[]*VNode{H2(), nil},
		OnClick(handler),
	)

	if node.Tag != "div" || node.Kind != KindElement {
		t.Fatalf("unexpected node %+v", node)
	}
	if node.StringAttr("class") != "a b" || node.StringAttr("id") != "x" {
		t.Errorf("unexpected props: %v", node.Props)
	}
	if _, ok := node.Props["disabled"]; ok {
		t.Error("AttrIf(false) should not set an attribute")
	}
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "text" {
		t.Errorf("string argument should become a text node")
	}
	if node.Handler("click") == nil {
		t.Error("click handler not registered")
	}
}

func TestVoidElements(t *testing.T) {
	if !IsVoidElement("input") || IsVoidElement("textarea") {
		t.Error("unexpected void element classification")
	}
}

type spanComponent struct{}

func (spanComponent) Render() *VNode { return Span() }

func TestFragment(t *testing.T) {
	f := Fragment(nil, Div(), "x", []*VNode{Span(), nil}, spanComponent{})
	if f.Kind != KindFragment || len(f.Children) != 4 {
		t.Fatalf("unexpected fragment: kind=%v children=%d", f.Kind, len(f.Children))
	}
	if f.Children[3].Kind != KindComponent {
		t.Error("component argument should become a component node")
	}
}
