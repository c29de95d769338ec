package render

// inlineElements are kept on one line in pretty mode.
var inlineElements = map[string]bool{
	"a":      true,
	"b":      true,
	"button": true,
	"code":   true,
	"em":     true,
	"label":  true,
	"option": true,
	"span":   true,
	"strong": true,
	"title":  true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are written without a value when true and omitted when false.
var booleanAttrs = map[string]bool{
	"async":      true,
	"autofocus":  true,
	"checked":    true,
	"defer":      true,
	"disabled":   true,
	"hidden":     true,
	"multiple":   true,
	"novalidate": true,
	"open":       true,
	"readonly":   true,
	"required":   true,
	"selected":   true,
}

// isBooleanAttr returns true if the attribute is a boolean attribute.
func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
