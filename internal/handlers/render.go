package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"askboard/internal/flash"
	"askboard/internal/session"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Views renders the HTML page templates. Every render receives the
// request identity and any queued flash messages alongside the page data.
type Views struct {
	tpl *template.Template
	log *zap.SugaredLogger
}

// NewViews parses all page templates from dir.
func NewViews(dir string, log *zap.SugaredLogger) (*Views, error) {
	tpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Views{tpl: tpl, log: log}, nil
}

// Render executes the named page template with HTTP 200. Flash messages
// queued for this request are popped into the view data, so they appear
// exactly once.
func (v *Views) Render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["Identity"] = session.FromContext(r.Context())
	data["Flashes"] = flash.Pop(w, r)

	var buf bytes.Buffer
	if err := v.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		v.log.Errorw("template render failed", "template", name, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// redirectFlash queues a flash message and redirects.
func redirectFlash(w http.ResponseWriter, r *http.Request, url, severity, text string) {
	flash.Add(w, r, severity, text)
	http.Redirect(w, r, url, http.StatusFound)
}

// guard applies the session gate. On denial it flashes the reason,
// redirects to the landing page, and reports false — the handler must not
// touch the datastore in that case.
func guard(w http.ResponseWriter, r *http.Request) (session.Identity, bool) {
	id := session.FromContext(r.Context())
	if d := session.Authorize(id); !d.OK {
		redirectFlash(w, r, "/", flash.SeverityWarning, d.Reason)
		return id, false
	}
	return id, true
}

// idParam parses a numeric chi URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
