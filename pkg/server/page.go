package server

import (
	"bytes"
	"net/http"

	"github.com/vango-dev/contactform/pkg/render"
	"github.com/vango-dev/contactform/pkg/ui"
	"github.com/vango-dev/contactform/pkg/vdom"
)

// servePage renders the page with a fresh, closed dialog. The live
// session replaces it with its own dialog once the socket connects.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	dialog := ui.NewContactDialog(nil, s.dialogOpts...)
	body := vdom.Main(vdom.Class("page"),
		vdom.H1(vdom.Class("page__title"), s.config.PageTitle),
		dialog,
	)

	var buf bytes.Buffer
	err := render.NewRenderer(render.RendererConfig{}).RenderPage(&buf, render.PageData{
		Body:         body,
		Title:        s.config.PageTitle,
		StyleSheets:  s.config.StyleSheets,
		ClientScript: ClientPath,
		SocketPath:   SocketPath,
	})
	if err != nil {
		s.logger.Error("page render failed", "error", err, "path", r.URL.Path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
