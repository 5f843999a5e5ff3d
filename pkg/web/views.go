// Package web serves server-rendered pages from embedded Go templates and
// static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a page with its template file and title.
type ViewDef struct {
	Template string
	Title    string
}

// ViewData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// DefaultFuncs are available in every template.
var DefaultFuncs = template.FuncMap{
	// percent formats a probability in [0, 1] as a percentage with one decimal.
	"percent": func(p float64) string {
		return fmt.Sprintf("%.1f", p*100)
	},
}

// NewTemplateSet parses the layout templates once and clones them for each
// view so views can redefine the same block names. Parsing happens at startup
// and any template error is returned immediately.
func NewTemplateSet(fsys embed.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(DefaultFuncs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(fsys, viewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the URL prefix the templates are rendered under.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// PageHandler returns a handler that renders view with status 200. data, when
// non-nil, supplies ViewData.Data per request.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef, data func(*http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d any
		if data != nil {
			d = data(r)
		}
		ts.Respond(w, http.StatusOK, layout, view, d)
	}
}

// ErrorHandler returns a handler that renders view with the given status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts.Respond(w, status, layout, view, nil)
	}
}

// Respond renders view with status. A render failure before anything is
// written falls back to a plain-text error.
func (ts *TemplateSet) Respond(w http.ResponseWriter, status int, layout string, view ViewDef, data any) {
	t, ok := ts.views[view.Template]
	if !ok {
		http.Error(w, "template not found: "+view.Template, http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	vd := ViewData{Title: view.Title, BasePath: ts.basePath, Data: data}
	if err := t.ExecuteTemplate(&buf, layout, vd); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
