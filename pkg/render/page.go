package render

import (
	"io"

	"github.com/vango-dev/contactform/pkg/vdom"
)

// DefaultClientScript is the path the thin client is served from.
const DefaultClientScript = "/_contact/client.js"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "ru" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// ClientScript is the path to the thin client JavaScript.
	// Defaults to DefaultClientScript.
	ClientScript string

	// SocketPath is the WebSocket endpoint the client connects to.
	SocketPath string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return r.RenderToWriter(w, Document(page))
}

// Document builds the html element of a page: the head with metadata and
// styles, then the body followed by the thin client script.
func Document(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "ru"
	}
	clientPath := page.ClientScript
	if clientPath == "" {
		clientPath = DefaultClientScript
	}

	return vdom.Html(vdom.Lang(lang),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
			vdom.If(page.Title != "", vdom.Title(page.Title)),
			vdom.Range(page.StyleSheets, func(href string, _ int) *vdom.VNode {
				return vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href))
			}),
			vdom.Range(page.Styles, func(css string, _ int) *vdom.VNode {
				return vdom.Style(vdom.Raw(css))
			}),
		),
		vdom.Body(
			page.Body,
			vdom.Script(
				vdom.Src(clientPath),
				vdom.AttrIf(page.SocketPath != "", vdom.Data("socket", page.SocketPath)),
				vdom.Defer_(),
			),
		),
	)
}
